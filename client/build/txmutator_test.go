package build

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helioledger/go-helio/client/types"
	"github.com/helioledger/go-helio/crypto"
	"github.com/helioledger/go-helio/hlopb"
)

func testKeys(t *testing.T, n int) []string {
	var keys []string
	for i := 0; i < n; i++ {
		pub, _, err := crypto.GetAccountKeypair()
		assert.Nil(t, err)
		keys = append(keys, pub)
	}
	return keys
}

func TestAccountIDMutator(t *testing.T) {
	keys := testKeys(t, 1)
	tx := &hlopb.Tx{}

	m := &AccountID{AccountID: keys[0]}
	assert.Nil(t, m.Mutate(tx))
	assert.Equal(t, keys[0], tx.AccountID)

	m = &AccountID{AccountID: ""}
	assert.NotNil(t, m.Mutate(tx))

	m = &AccountID{AccountID: "not-a-key"}
	assert.NotNil(t, m.Mutate(tx))

	assert.Equal(t, ErrNilTx, m.Mutate(nil))
}

func TestSeqNumMutator(t *testing.T) {
	tx := &hlopb.Tx{}

	m := &SeqNum{SeqNum: 3}
	assert.Nil(t, m.Mutate(tx))
	assert.Equal(t, uint64(3), tx.SeqNum)

	m = &SeqNum{SeqNum: 0}
	assert.NotNil(t, m.Mutate(tx))
}

func TestNoteMutator(t *testing.T) {
	tx := &hlopb.Tx{}

	m := &Note{Note: "rent for september"}
	assert.Nil(t, m.Mutate(tx))
	assert.Equal(t, "rent for september", tx.Note)

	m = &Note{Note: strings.Repeat("x", 129)}
	assert.NotNil(t, m.Mutate(tx))
}

func TestFeeMutator(t *testing.T) {
	keys := testKeys(t, 1)
	tx := &hlopb.Tx{}

	ca := &CreateAccount{AccountID: keys[0], Balance: 100}
	assert.Nil(t, ca.Mutate(tx))
	assert.Nil(t, ca.Mutate(tx))

	m := &Fee{BaseFee: 1000}
	assert.Nil(t, m.Mutate(tx))
	assert.Equal(t, int64(2000), tx.Fee)

	m = &Fee{BaseFee: 0}
	assert.NotNil(t, m.Mutate(tx))
}

func TestCreateAccountMutator(t *testing.T) {
	keys := testKeys(t, 1)
	tx := &hlopb.Tx{}

	m := &CreateAccount{AccountID: keys[0], Balance: 100}
	assert.Nil(t, m.Mutate(tx))
	assert.Equal(t, 1, len(tx.OpList))
	assert.Equal(t, hlopb.OpType_CREATE_ACCOUNT, tx.OpList[0].OpType)
	assert.Equal(t, keys[0], tx.OpList[0].CreateAccount.AccountID)
	assert.Equal(t, int64(100), tx.OpList[0].CreateAccount.Balance)

	m = &CreateAccount{AccountID: keys[0], Balance: 0}
	assert.NotNil(t, m.Mutate(tx))
}

func TestPaymentMutator(t *testing.T) {
	keys := testKeys(t, 2)
	asset := &types.Asset{AssetType: types.CUSTOM, AssetName: "USD", Issuer: keys[1]}
	tx := &hlopb.Tx{}

	m := &Payment{AccountID: keys[0], Asset: asset, Amount: 50}
	assert.Nil(t, m.Mutate(tx))
	assert.Equal(t, hlopb.OpType_PAYMENT, tx.OpList[0].OpType)
	assert.Equal(t, int64(50), tx.OpList[0].Payment.Amount)

	m = &Payment{AccountID: keys[0], Asset: asset, Amount: 0}
	assert.NotNil(t, m.Mutate(tx))

	m = &Payment{AccountID: keys[0], Asset: &types.Asset{AssetType: types.CUSTOM, AssetName: "TOOLONG", Issuer: keys[1]}, Amount: 50}
	assert.NotNil(t, m.Mutate(tx))
}

func TestTrustMutator(t *testing.T) {
	keys := testKeys(t, 2)
	asset := &types.Asset{AssetType: types.CUSTOM, AssetName: "USD", Issuer: keys[1]}
	tx := &hlopb.Tx{}

	m := &Trust{Asset: asset, Limit: 100, SourceAccountID: keys[0]}
	assert.Nil(t, m.Mutate(tx))
	assert.Equal(t, hlopb.OpType_TRUST, tx.OpList[0].OpType)
	assert.Equal(t, keys[0], tx.OpList[0].Trust.SourceAccountID)

	// Limit zero releases the trustline.
	m = &Trust{Asset: asset, Limit: 0}
	assert.Nil(t, m.Mutate(tx))

	m = &Trust{Asset: asset, Limit: -1}
	assert.NotNil(t, m.Mutate(tx))

	m = &Trust{Asset: asset, Limit: 100, SourceAccountID: "bad"}
	assert.NotNil(t, m.Mutate(tx))
}

func TestSetSignerMutator(t *testing.T) {
	keys := testKeys(t, 2)
	tx := &hlopb.Tx{}

	m := &SetSigner{MasterWeight: 0, SignerID: keys[0], SignerWeight: 1, SourceAccountID: keys[1]}
	assert.Nil(t, m.Mutate(tx))
	assert.Equal(t, hlopb.OpType_SIGNER, tx.OpList[0].OpType)
	assert.Equal(t, int32(0), tx.OpList[0].Signer.MasterWeight)
	assert.Equal(t, int32(1), tx.OpList[0].Signer.SignerWeight)

	// Master weight minus one keeps the master key untouched.
	m = &SetSigner{MasterWeight: -1, SignerID: keys[0], SignerWeight: 0}
	assert.Nil(t, m.Mutate(tx))

	// An op changing nothing is rejected.
	m = &SetSigner{MasterWeight: -1}
	assert.NotNil(t, m.Mutate(tx))

	m = &SetSigner{MasterWeight: -2, SignerID: keys[0], SignerWeight: 1}
	assert.NotNil(t, m.Mutate(tx))
}

func TestMergeMutator(t *testing.T) {
	keys := testKeys(t, 1)
	tx := &hlopb.Tx{}

	m := &Merge{AccountID: keys[0]}
	assert.Nil(t, m.Mutate(tx))
	assert.Equal(t, hlopb.OpType_MERGE, tx.OpList[0].OpType)

	m = &Merge{AccountID: "bad"}
	assert.NotNil(t, m.Mutate(tx))
}
