package op

import (
	"fmt"

	"github.com/helioledger/go-helio/account"
	"github.com/helioledger/go-helio/crypto"
	"github.com/helioledger/go-helio/db"
)

// SetSigner updates the signing options of the op source
// account. A master weight of minus one leaves the master key
// untouched. A non-empty signer ID adds or updates the signer
// entry, weight zero removes it.
type SetSigner struct {
	AM           *account.Manager
	SrcAccountID string
	MasterWeight int32
	SignerID     string
	SignerWeight int32
	BaseReserve  int64
}

func (s *SetSigner) Apply(dt db.Tx) error {
	if s.SrcAccountID == "" {
		return ErrInvalidAccountID
	}
	if s.MasterWeight < -1 {
		return fmt.Errorf("invalid master weight %d", s.MasterWeight)
	}
	if s.SignerWeight < 0 {
		return fmt.Errorf("invalid signer weight %d", s.SignerWeight)
	}
	if s.SignerID != "" && !crypto.IsValidAccountKey(s.SignerID) {
		return fmt.Errorf("invalid signer key")
	}

	srcAccount, err := s.AM.GetAccount(dt, s.SrcAccountID)
	if err != nil {
		return fmt.Errorf("get source account failed: %v", err)
	}

	if s.MasterWeight >= 0 {
		srcAccount.MasterWeight = s.MasterWeight
	}

	if s.SignerID != "" {
		delta := s.AM.SetSigner(srcAccount, s.SignerID, s.SignerWeight)
		srcAccount.EntryCount += delta
		// A new signer entry takes one more reserve entry.
		if delta > 0 && srcAccount.Balance < (1+int64(srcAccount.EntryCount))*s.BaseReserve {
			return ErrInsufficientReserve
		}
	}

	// Clearing the last signer of an account with master weight
	// zero is allowed, an account about to be merged revokes all
	// authority over itself first.
	if err := s.AM.SaveAccount(dt, srcAccount); err != nil {
		return err
	}

	return nil
}
