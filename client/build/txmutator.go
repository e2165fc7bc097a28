package build

import (
	"errors"

	"github.com/helioledger/go-helio/client/types"
	"github.com/helioledger/go-helio/crypto"
	"github.com/helioledger/go-helio/hlopb"
)

var (
	ErrNilTx = errors.New("tx is nil")
)

// TxMutator defines the method which all the transaction
// mutators should implement.
type TxMutator interface {
	Mutate(tx *hlopb.Tx) error
}

func validateAsset(a *types.Asset) error {
	if a == nil {
		return errors.New("asset is nil")
	}
	switch a.AssetType {
	case types.NATIVE:
		return nil
	case types.CUSTOM:
		if len(a.AssetName) == 0 || len(a.AssetName) > 4 {
			return errors.New("invalid asset name")
		}
		if !crypto.IsValidAccountKey(a.Issuer) {
			return errors.New("invalid asset issuer account key")
		}
		return nil
	}
	return errors.New("invalid asset type")
}

// AccountID sets the source account of the tx.
type AccountID struct {
	AccountID string
}

func (a *AccountID) validate() error {
	if a.AccountID == "" {
		return errors.New("empty account id")
	}
	if !crypto.IsValidAccountKey(a.AccountID) {
		return errors.New("invalid account key")
	}
	return nil
}

// Mutate changes the corresponding AccountID field of the Tx.
func (a *AccountID) Mutate(tx *hlopb.Tx) error {
	if tx == nil {
		return ErrNilTx
	}
	if err := a.validate(); err != nil {
		return err
	}
	tx.AccountID = a.AccountID
	return nil
}

// NetworkID binds the tx to a network so that its signatures
// cannot be replayed on another network.
type NetworkID struct {
	NetworkID string
}

func (n *NetworkID) Mutate(tx *hlopb.Tx) error {
	if tx == nil {
		return ErrNilTx
	}
	if n.NetworkID == "" {
		return errors.New("empty network id")
	}
	tx.NetworkID = n.NetworkID
	return nil
}

// SeqNum sets the sequence number the tx consumes, which has to
// be the source account's current sequence number plus one.
type SeqNum struct {
	SeqNum uint64
}

func (s *SeqNum) Mutate(tx *hlopb.Tx) error {
	if tx == nil {
		return ErrNilTx
	}
	if s.SeqNum == 0 {
		return errors.New("seqnum is zero")
	}
	tx.SeqNum = s.SeqNum
	return nil
}

// Note sets the Note field of the tx.
type Note struct {
	Note string
}

func (n *Note) validate() error {
	if len(n.Note) > 128 {
		return errors.New("note is too long")
	}
	return nil
}

// Mutate changes the corresponding Note field of the Tx.
func (n *Note) Mutate(tx *hlopb.Tx) error {
	if tx == nil {
		return ErrNilTx
	}
	if err := n.validate(); err != nil {
		return err
	}
	tx.Note = n.Note
	return nil
}

// Fee computes the total fees for the Tx.
type Fee struct {
	BaseFee int64
}

func (f *Fee) validate() error {
	if f.BaseFee <= 0 {
		return errors.New("base fee is not positive")
	}
	return nil
}

// Mutate changes the corresponding Fee field of the Tx.
func (f *Fee) Mutate(tx *hlopb.Tx) error {
	if tx == nil {
		return ErrNilTx
	}
	if err := f.validate(); err != nil {
		return err
	}
	tx.Fee = f.BaseFee * int64(len(tx.OpList))
	return nil
}

// CreateAccount adds a CreateAccount op to the OpList of the tx.
type CreateAccount struct {
	AccountID string
	Balance   int64
}

func (ca *CreateAccount) validate() error {
	if len(ca.AccountID) == 0 {
		return errors.New("empty account id")
	}
	if !crypto.IsValidAccountKey(ca.AccountID) {
		return errors.New("invalid account key")
	}
	if ca.Balance <= 0 {
		return errors.New("starting balance is not positive")
	}
	return nil
}

// Mutate appends a CreateAccount op to the OpList.
func (ca *CreateAccount) Mutate(tx *hlopb.Tx) error {
	if tx == nil {
		return ErrNilTx
	}
	if err := ca.validate(); err != nil {
		return err
	}

	tx.OpList = append(tx.OpList, &hlopb.Op{
		OpType: hlopb.OpType_CREATE_ACCOUNT,
		CreateAccount: &hlopb.CreateAccountOp{
			AccountID: ca.AccountID,
			Balance:   ca.Balance,
		},
	})
	return nil
}

// Payment adds a Payment op to the OpList of the tx.
type Payment struct {
	AccountID string
	Asset     *types.Asset
	Amount    int64
}

func (p *Payment) validate() error {
	if p.Amount <= 0 {
		return errors.New("payment amount is not positive")
	}
	if !crypto.IsValidAccountKey(p.AccountID) {
		return errors.New("invalid account key")
	}
	return validateAsset(p.Asset)
}

// Mutate appends a Payment op to the OpList of the Tx.
func (p *Payment) Mutate(tx *hlopb.Tx) error {
	if tx == nil {
		return ErrNilTx
	}
	if err := p.validate(); err != nil {
		return err
	}

	tx.OpList = append(tx.OpList, &hlopb.Op{
		OpType: hlopb.OpType_PAYMENT,
		Payment: &hlopb.PaymentOp{
			AccountID: p.AccountID,
			Asset:     p.Asset.ToPb(),
			Amount:    p.Amount,
		},
	})
	return nil
}

// Trust adds a Trust op to the OpList of the tx. Limit zero
// deletes the trustline. A non-empty SourceAccountID makes the
// op act for that account instead of the tx source.
type Trust struct {
	Asset           *types.Asset
	Limit           int64
	SourceAccountID string
}

func (t *Trust) validate() error {
	if t.Limit < 0 {
		return errors.New("negative trust limit")
	}
	if t.SourceAccountID != "" && !crypto.IsValidAccountKey(t.SourceAccountID) {
		return errors.New("invalid source account key")
	}
	return validateAsset(t.Asset)
}

// Mutate appends a Trust op to the OpList of the Tx.
func (t *Trust) Mutate(tx *hlopb.Tx) error {
	if tx == nil {
		return ErrNilTx
	}
	if err := t.validate(); err != nil {
		return err
	}

	tx.OpList = append(tx.OpList, &hlopb.Op{
		OpType: hlopb.OpType_TRUST,
		Trust: &hlopb.TrustOp{
			Asset:           t.Asset.ToPb(),
			Limit:           t.Limit,
			SourceAccountID: t.SourceAccountID,
		},
	})
	return nil
}

// SetSigner adds a Signer op to the OpList of the tx. A master
// weight of minus one leaves the master key untouched. With a
// non-empty SignerID the signer entry is added or updated, a
// signer weight of zero removes it. A non-empty SourceAccountID
// makes the op act for that account instead of the tx source.
type SetSigner struct {
	MasterWeight    int32
	SignerID        string
	SignerWeight    int32
	SourceAccountID string
}

func (s *SetSigner) validate() error {
	if s.MasterWeight < -1 {
		return errors.New("invalid master weight")
	}
	if s.SignerWeight < 0 {
		return errors.New("negative signer weight")
	}
	if s.SignerID == "" && s.MasterWeight < 0 {
		return errors.New("signer op changes nothing")
	}
	if s.SignerID != "" && !crypto.IsValidAccountKey(s.SignerID) {
		return errors.New("invalid signer account key")
	}
	if s.SourceAccountID != "" && !crypto.IsValidAccountKey(s.SourceAccountID) {
		return errors.New("invalid source account key")
	}
	return nil
}

// Mutate appends a Signer op to the OpList of the Tx.
func (s *SetSigner) Mutate(tx *hlopb.Tx) error {
	if tx == nil {
		return ErrNilTx
	}
	if err := s.validate(); err != nil {
		return err
	}

	tx.OpList = append(tx.OpList, &hlopb.Op{
		OpType: hlopb.OpType_SIGNER,
		Signer: &hlopb.SignerOp{
			MasterWeight:    s.MasterWeight,
			SignerID:        s.SignerID,
			SignerWeight:    s.SignerWeight,
			SourceAccountID: s.SourceAccountID,
		},
	})
	return nil
}

// Merge adds a Merge op to the OpList of the tx which folds the
// remaining balance of the tx source into the destination and
// removes the source account from the ledger.
type Merge struct {
	AccountID string
}

func (m *Merge) validate() error {
	if !crypto.IsValidAccountKey(m.AccountID) {
		return errors.New("invalid account key")
	}
	return nil
}

// Mutate appends a Merge op to the OpList of the Tx.
func (m *Merge) Mutate(tx *hlopb.Tx) error {
	if tx == nil {
		return ErrNilTx
	}
	if err := m.validate(); err != nil {
		return err
	}

	tx.OpList = append(tx.OpList, &hlopb.Op{
		OpType: hlopb.OpType_MERGE,
		Merge: &hlopb.MergeOp{
			AccountID: m.AccountID,
		},
	})
	return nil
}
