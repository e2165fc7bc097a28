package build

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helioledger/go-helio/client/types"
	"github.com/helioledger/go-helio/crypto"
)

func TestTxBuildAndSign(t *testing.T) {
	sender, err := crypto.NewKeyPair()
	assert.Nil(t, err)
	escrow, err := crypto.NewKeyPair()
	assert.Nil(t, err)
	issuer, err := crypto.NewKeyPair()
	assert.Nil(t, err)

	asset := &types.Asset{AssetType: types.CUSTOM, AssetName: "USD", Issuer: issuer.AccountID}

	tx := NewTx(1000)
	err = tx.Add(
		&AccountID{AccountID: sender.AccountID},
		&NetworkID{NetworkID: "testnet"},
		&SeqNum{SeqNum: 1},
		&CreateAccount{AccountID: escrow.AccountID, Balance: 5000},
		&Payment{AccountID: escrow.AccountID, Asset: asset, Amount: 10},
	)
	assert.Nil(t, err)

	assert.Equal(t, 2, tx.OpCount())
	// Fee always covers every op in the batch.
	assert.Equal(t, int64(2000), tx.Tx.Fee)

	data, signatures, err := tx.Sign(sender.Seed, escrow.Seed)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(signatures))
	assert.Equal(t, sender.AccountID, signatures[0].SignerID)
	assert.Equal(t, escrow.AccountID, signatures[1].SignerID)
	for _, sig := range signatures {
		assert.True(t, crypto.Verify(sig.SignerID, sig.Signature, data))
	}

	txKey, err := tx.TxKey()
	assert.Nil(t, err)
	assert.True(t, crypto.IsValidKey(txKey))
}

func TestTxBuildIncomplete(t *testing.T) {
	sender, err := crypto.NewKeyPair()
	assert.Nil(t, err)

	// No operations.
	tx := NewTx(1000)
	err = tx.Add(
		&AccountID{AccountID: sender.AccountID},
		&NetworkID{NetworkID: "testnet"},
		&SeqNum{SeqNum: 1},
	)
	assert.NotNil(t, err)

	// No sequence number.
	tx = NewTx(1000)
	err = tx.Add(
		&AccountID{AccountID: sender.AccountID},
		&NetworkID{NetworkID: "testnet"},
		&CreateAccount{AccountID: sender.AccountID, Balance: 100},
	)
	assert.NotNil(t, err)
}

func TestTxSignBadSeed(t *testing.T) {
	sender, err := crypto.NewKeyPair()
	assert.Nil(t, err)

	tx := NewTx(1000)
	err = tx.Add(
		&AccountID{AccountID: sender.AccountID},
		&NetworkID{NetworkID: "testnet"},
		&SeqNum{SeqNum: 1},
		&CreateAccount{AccountID: sender.AccountID, Balance: 100},
	)
	assert.Nil(t, err)

	// An account ID is not a seed.
	_, _, err = tx.Sign(sender.AccountID)
	assert.NotNil(t, err)
}
