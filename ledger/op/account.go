package op

import (
	"fmt"

	"github.com/helioledger/go-helio/account"
	"github.com/helioledger/go-helio/crypto"
	"github.com/helioledger/go-helio/db"
)

// CreateAccount materializes a new account on the ledger with a
// starting native balance funded by the op source.
type CreateAccount struct {
	AM           *account.Manager
	SrcAccountID string
	DstAccountID string
	Balance      int64
	BaseReserve  int64
}

func (ca *CreateAccount) Apply(dt db.Tx) error {
	if ca.SrcAccountID == "" || ca.DstAccountID == "" {
		return ErrInvalidAccountID
	}
	if !crypto.IsValidAccountKey(ca.DstAccountID) {
		return ErrInvalidAccountID
	}
	if ca.Balance < ca.BaseReserve {
		return ErrInsufficientReserve
	}

	// The destination address must be unclaimed. For freshly
	// generated addresses a hit here means the address was
	// claimed concurrently.
	_, err := ca.AM.GetAccount(dt, ca.DstAccountID)
	if err == nil {
		return ErrAccountExists
	}
	if err != account.ErrAccountNotExist {
		return fmt.Errorf("get destination account failed: %v", err)
	}

	srcAccount, err := ca.AM.GetAccount(dt, ca.SrcAccountID)
	if err != nil {
		return fmt.Errorf("get source account failed: %v", err)
	}
	if err := ca.AM.SubBalance(srcAccount, ca.Balance); err != nil {
		return err
	}
	// The source must keep its own reserve after funding.
	if srcAccount.Balance < (1+int64(srcAccount.EntryCount))*ca.BaseReserve {
		return ErrInsufficientReserve
	}
	if err := ca.AM.SaveAccount(dt, srcAccount); err != nil {
		return err
	}

	if err := ca.AM.CreateAccount(dt, ca.DstAccountID, ca.Balance); err != nil {
		return fmt.Errorf("create account failed: %v", err)
	}

	return nil
}

// Merge folds the remaining native balance of the op source into
// the destination account and removes the source account from
// the ledger. The source must not hold any trustlines.
type Merge struct {
	AM           *account.Manager
	SrcAccountID string
	DstAccountID string
}

func (m *Merge) Apply(dt db.Tx) error {
	if m.SrcAccountID == "" || m.DstAccountID == "" {
		return ErrInvalidAccountID
	}
	if m.SrcAccountID == m.DstAccountID {
		return fmt.Errorf("cannot merge account into itself")
	}

	srcAccount, err := m.AM.GetAccount(dt, m.SrcAccountID)
	if err != nil {
		return fmt.Errorf("get source account failed: %v", err)
	}

	trusts, err := m.AM.GetAccountTrusts(dt, m.SrcAccountID)
	if err != nil {
		return fmt.Errorf("get source trusts failed: %v", err)
	}
	if len(trusts) > 0 {
		return fmt.Errorf("account still holds %d trustlines", len(trusts))
	}

	dstAccount, err := m.AM.GetAccount(dt, m.DstAccountID)
	if err != nil {
		return fmt.Errorf("get destination account failed: %v", err)
	}

	if err := m.AM.AddBalance(dstAccount, srcAccount.Balance); err != nil {
		return err
	}
	if err := m.AM.SaveAccount(dt, dstAccount); err != nil {
		return err
	}
	if err := m.AM.DeleteAccount(dt, m.SrcAccountID); err != nil {
		return err
	}

	return nil
}
