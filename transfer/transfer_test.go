package transfer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/helioledger/go-helio/client/build"
	"github.com/helioledger/go-helio/client/types"
	"github.com/helioledger/go-helio/crypto"
	"github.com/helioledger/go-helio/db/memdb"
	"github.com/helioledger/go-helio/hlopb"
	"github.com/helioledger/go-helio/ledger"
)

// recordingGateway wraps the in-process ledger, records every
// submitted tx payload and optionally injects submission errors.
type recordingGateway struct {
	*ledger.Ledger

	submitted [][]byte
	// Errors returned by the next submissions before delegating
	// to the ledger again, consumed front to back.
	injected []error
}

func (g *recordingGateway) SubmitTx(txKey string, data []byte, signatures []*hlopb.Signature) error {
	if len(g.injected) > 0 {
		err := g.injected[0]
		g.injected = g.injected[1:]
		if err != nil {
			return err
		}
	}
	g.submitted = append(g.submitted, data)
	return g.Ledger.SubmitTx(txKey, data, signatures)
}

// lastTx decodes the op list of the last submitted tx.
func (g *recordingGateway) lastTx(t *testing.T) *hlopb.Tx {
	assert.True(t, len(g.submitted) > 0)
	tx, err := hlopb.DecodeTx(g.submitted[len(g.submitted)-1])
	assert.Nil(t, err)
	return tx
}

const (
	testBaseFee     = 10
	testBaseReserve = 100
)

// setupTransferTest boots a sandbox ledger where the genesis
// account issues the USD asset and a funded sender holds 100 USD.
func setupTransferTest(t *testing.T) (*recordingGateway, *crypto.KeyPair, *crypto.KeyPair, *types.Asset) {
	params := &ledger.Params{
		NetworkID:   "testnet",
		BaseFee:     testBaseFee,
		BaseReserve: testBaseReserve,
	}
	l := ledger.NewLedger(params, memdb.New())

	issuer, err := crypto.NewKeyPair()
	assert.Nil(t, err)
	assert.Nil(t, l.CreateGenesisAccount(issuer.AccountID, 100000000))

	gw := &recordingGateway{Ledger: l}
	asset := &types.Asset{AssetType: types.CUSTOM, AssetName: "USD", Issuer: issuer.AccountID}

	sender, err := crypto.NewKeyPair()
	assert.Nil(t, err)
	assert.Nil(t, CreateAndFund(gw, issuer, sender.AccountID, 100000))
	mintAsset(t, gw, issuer, sender, asset, 100)

	return gw, issuer, sender, asset
}

// mintAsset establishes a trustline of the holder and mints the
// amount from the issuer.
func mintAsset(t *testing.T, gw Gateway, issuer, holder *crypto.KeyPair, asset *types.Asset, amount int64) {
	info, err := gw.GetLedgerInfo()
	assert.Nil(t, err)

	acc, err := gw.GetAccount(holder.AccountID)
	assert.Nil(t, err)
	tx := build.NewTx(info.BaseFee)
	err = tx.Add(
		&build.AccountID{AccountID: holder.AccountID},
		&build.NetworkID{NetworkID: info.NetworkID},
		&build.SeqNum{SeqNum: acc.SeqNum + 1},
		&build.Trust{Asset: asset, Limit: 100000},
	)
	assert.Nil(t, err)
	data, signatures, err := tx.Sign(holder.Seed)
	assert.Nil(t, err)
	txKey, err := tx.TxKey()
	assert.Nil(t, err)
	assert.Nil(t, gw.SubmitTx(txKey, data, signatures))

	acc, err = gw.GetAccount(issuer.AccountID)
	assert.Nil(t, err)
	tx = build.NewTx(info.BaseFee)
	err = tx.Add(
		&build.AccountID{AccountID: issuer.AccountID},
		&build.NetworkID{NetworkID: info.NetworkID},
		&build.SeqNum{SeqNum: acc.SeqNum + 1},
		&build.Payment{AccountID: holder.AccountID, Asset: asset, Amount: amount},
	)
	assert.Nil(t, err)
	data, signatures, err = tx.Sign(issuer.Seed)
	assert.Nil(t, err)
	txKey, err = tx.TxKey()
	assert.Nil(t, err)
	assert.Nil(t, gw.SubmitTx(txKey, data, signatures))
}

func assetBalance(t *testing.T, gw Gateway, accountID string, asset *types.Asset) int64 {
	acc, err := gw.GetAccount(accountID)
	assert.Nil(t, err)
	b, ok := acc.BalanceOf(asset)
	if !ok {
		return 0
	}
	return b.Amount
}

func nativeBalance(t *testing.T, gw Gateway, accountID string) int64 {
	acc, err := gw.GetAccount(accountID)
	assert.Nil(t, err)
	return acc.Balances[0].Amount
}

func TestTransferEndToEnd(t *testing.T) {
	gw, _, sender, asset := setupTransferTest(t)
	receiver, err := crypto.NewKeyPair()
	assert.Nil(t, err)

	// Phase one, the sender stages 10 USD for the receiver.
	escrowID, err := NewSender(gw).Send(sender, receiver.AccountID, asset, 10)
	assert.Nil(t, err)
	assert.Equal(t, int64(90), assetBalance(t, gw, sender.AccountID, asset))

	// The escrow holds the full amount, its master key carries no
	// weight and the receiver is its only signer.
	escrowAcc, err := gw.GetAccount(escrowID)
	assert.Nil(t, err)
	assert.Equal(t, int32(0), escrowAcc.MasterWeight)
	assert.Equal(t, 1, len(escrowAcc.Signers))
	assert.Equal(t, receiver.AccountID, escrowAcc.Signers[0].SignerID)
	assert.Equal(t, int32(1), escrowAcc.Signers[0].Weight)
	assert.Equal(t, int64(10), assetBalance(t, gw, escrowID, asset))

	// The funding tx is one atomic batch of four ops.
	assert.Equal(t, 4, len(gw.lastTx(t).OpList))

	// Phase two, the receiver has no account yet and claims.
	amount, err := NewReceiver(gw).Receive(receiver, escrowID, asset)
	assert.Nil(t, err)
	assert.Equal(t, int64(10), amount)
	assert.Equal(t, int64(10), assetBalance(t, gw, receiver.AccountID, asset))

	// The claim created the account and the trustline on the fly.
	assert.Equal(t, 6, len(gw.lastTx(t).OpList))

	// The escrow is dissolved.
	_, err = gw.GetAccount(escrowID)
	assert.Equal(t, types.ErrAccountNotFound, err)
}

func TestReceiveWithTrustline(t *testing.T) {
	gw, issuer, sender, asset := setupTransferTest(t)
	receiver, err := crypto.NewKeyPair()
	assert.Nil(t, err)

	// The receiver already has an account and a trustline.
	assert.Nil(t, CreateAndFund(gw, issuer, receiver.AccountID, 1000))
	mintAsset(t, gw, issuer, receiver, asset, 5)

	escrowID, err := NewSender(gw).Send(sender, receiver.AccountID, asset, 10)
	assert.Nil(t, err)

	amount, err := NewReceiver(gw).Receive(receiver, escrowID, asset)
	assert.Nil(t, err)
	assert.Equal(t, int64(10), amount)
	assert.Equal(t, int64(15), assetBalance(t, gw, receiver.AccountID, asset))

	// With the trustline in place the claim needs only the four
	// base ops.
	assert.Equal(t, 4, len(gw.lastTx(t).OpList))
}

func TestReceiveWithoutTrustline(t *testing.T) {
	gw, issuer, sender, asset := setupTransferTest(t)
	receiver, err := crypto.NewKeyPair()
	assert.Nil(t, err)

	// The receiver has an account but no trustline yet.
	assert.Nil(t, CreateAndFund(gw, issuer, receiver.AccountID, 1000))

	escrowID, err := NewSender(gw).Send(sender, receiver.AccountID, asset, 10)
	assert.Nil(t, err)

	amount, err := NewReceiver(gw).Receive(receiver, escrowID, asset)
	assert.Nil(t, err)
	assert.Equal(t, int64(10), amount)
	assert.Equal(t, int64(10), assetBalance(t, gw, receiver.AccountID, asset))

	// The missing trustline adds exactly one op to the claim.
	assert.Equal(t, 5, len(gw.lastTx(t).OpList))
}

func TestReceiveTwice(t *testing.T) {
	gw, _, sender, asset := setupTransferTest(t)
	receiver, err := crypto.NewKeyPair()
	assert.Nil(t, err)

	escrowID, err := NewSender(gw).Send(sender, receiver.AccountID, asset, 10)
	assert.Nil(t, err)

	_, err = NewReceiver(gw).Receive(receiver, escrowID, asset)
	assert.Nil(t, err)

	// The escrow is gone, a second claim of the same escrow
	// surfaces the not found error and changes nothing.
	before := assetBalance(t, gw, receiver.AccountID, asset)
	_, err = NewReceiver(gw).Receive(receiver, escrowID, asset)
	assert.Equal(t, types.ErrAccountNotFound, err)
	assert.Equal(t, before, assetBalance(t, gw, receiver.AccountID, asset))
}

func TestTransferBalanceConservation(t *testing.T) {
	gw, issuer, sender, asset := setupTransferTest(t)
	receiver, err := crypto.NewKeyPair()
	assert.Nil(t, err)
	assert.Nil(t, CreateAndFund(gw, issuer, receiver.AccountID, 1000))
	mintAsset(t, gw, issuer, receiver, asset, 5)

	info, err := gw.GetLedgerInfo()
	assert.Nil(t, err)
	senderNative := nativeBalance(t, gw, sender.AccountID)
	receiverNative := nativeBalance(t, gw, receiver.AccountID)
	totalAsset := assetBalance(t, gw, sender.AccountID, asset) + assetBalance(t, gw, receiver.AccountID, asset)

	escrowID, err := NewSender(gw).Send(sender, receiver.AccountID, asset, 10)
	assert.Nil(t, err)
	_, err = NewReceiver(gw).Receive(receiver, escrowID, asset)
	assert.Nil(t, err)

	// The asset amount moved one to one.
	assert.Equal(t, totalAsset, assetBalance(t, gw, sender.AccountID, asset)+assetBalance(t, gw, receiver.AccountID, asset))

	// The sender paid the escrow funding and the fee of the four
	// op funding tx.
	fundingCost := escrowStartingBalance(info) + 4*info.BaseFee
	assert.Equal(t, senderNative-fundingCost, nativeBalance(t, gw, sender.AccountID))

	// The receiver regained the full escrow balance net of the
	// claim tx fee, four ops with the trustline in place.
	claimFee := 4 * info.BaseFee
	assert.Equal(t, receiverNative+escrowStartingBalance(info)-claimFee, nativeBalance(t, gw, receiver.AccountID))
}

func TestSendRetriesTransientErrors(t *testing.T) {
	gw, _, sender, asset := setupTransferTest(t)
	receiver, err := crypto.NewKeyPair()
	assert.Nil(t, err)

	// An address collision and a sequence conflict are both
	// transient, the third attempt goes through.
	gw.injected = []error{types.ErrAccountExists, types.ErrBadSequence}

	s := NewSenderWithPolicy(gw, &RetryPolicy{MaxAttempts: 3, Interval: time.Millisecond})
	escrowID, err := s.Send(sender, receiver.AccountID, asset, 10)
	assert.Nil(t, err)
	assert.Equal(t, int64(10), assetBalance(t, gw, escrowID, asset))
}

func TestSendStopsOnPermanentError(t *testing.T) {
	gw, _, sender, asset := setupTransferTest(t)
	receiver, err := crypto.NewKeyPair()
	assert.Nil(t, err)

	gw.injected = []error{types.ErrInsufficientReserve}

	s := NewSenderWithPolicy(gw, &RetryPolicy{MaxAttempts: 3, Interval: time.Millisecond})
	_, err = s.Send(sender, receiver.AccountID, asset, 10)
	assert.Equal(t, types.ErrInsufficientReserve, err)
	// No further attempts were made.
	assert.Equal(t, 0, len(gw.injected))
}

func TestSendRetryExhaustion(t *testing.T) {
	gw, _, sender, asset := setupTransferTest(t)
	receiver, err := crypto.NewKeyPair()
	assert.Nil(t, err)

	gw.injected = []error{types.ErrBadSequence, types.ErrBadSequence}

	s := NewSenderWithPolicy(gw, &RetryPolicy{MaxAttempts: 2, Interval: time.Millisecond})
	_, err = s.Send(sender, receiver.AccountID, asset, 10)
	assert.Equal(t, types.ErrBadSequence, err)
}

func TestSendValidation(t *testing.T) {
	gw, _, sender, asset := setupTransferTest(t)
	receiver, err := crypto.NewKeyPair()
	assert.Nil(t, err)

	s := NewSender(gw)
	_, err = s.Send(sender, "not-a-key", asset, 10)
	assert.NotNil(t, err)
	_, err = s.Send(sender, receiver.AccountID, asset, 0)
	assert.NotNil(t, err)
	_, err = s.Send(sender, receiver.AccountID, types.NativeAsset(), 10)
	assert.NotNil(t, err)
	_, err = s.Send(nil, receiver.AccountID, asset, 10)
	assert.NotNil(t, err)
}

func TestCreateAndFund(t *testing.T) {
	gw, issuer, _, _ := setupTransferTest(t)
	kp, err := crypto.NewKeyPair()
	assert.Nil(t, err)

	assert.Nil(t, CreateAndFund(gw, issuer, kp.AccountID, 5000))
	assert.Equal(t, int64(5000), nativeBalance(t, gw, kp.AccountID))

	// Funding the same address again surfaces the collision.
	assert.Equal(t, types.ErrAccountExists, CreateAndFund(gw, issuer, kp.AccountID, 5000))
}
