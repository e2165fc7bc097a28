package op

import (
	"fmt"

	"github.com/helioledger/go-helio/account"
	"github.com/helioledger/go-helio/db"
	"github.com/helioledger/go-helio/hlopb"
)

// Trust manages create, update and delete of the trustline of
// the op source to an issued asset. Limit zero deletes the
// trustline and releases its reserve.
type Trust struct {
	AM           *account.Manager
	SrcAccountID string
	Asset        *hlopb.Asset
	Limit        int64
	BaseReserve  int64
}

func (t *Trust) Apply(dt db.Tx) error {
	if err := ValidateAsset(t.Asset); err != nil {
		return fmt.Errorf("validate trust asset failed: %v", err)
	}
	if t.Asset.AssetType == hlopb.AssetType_NATIVE {
		return fmt.Errorf("native asset needs no trustline")
	}
	if t.SrcAccountID == "" {
		return ErrInvalidAccountID
	}
	if t.Limit < 0 {
		return fmt.Errorf("negative trust limit")
	}
	if t.SrcAccountID == t.Asset.Issuer {
		// Self-trust of the issuer is implicit.
		return nil
	}

	// The issuer account must exist.
	if _, err := t.AM.GetAccount(dt, t.Asset.Issuer); err != nil {
		return fmt.Errorf("get asset issuer failed: %v", err)
	}

	srcAccount, err := t.AM.GetAccount(dt, t.SrcAccountID)
	if err != nil {
		return fmt.Errorf("get source account failed: %v", err)
	}

	trust, err := t.AM.GetTrust(dt, t.SrcAccountID, t.Asset)
	if err == account.ErrTrustNotExist {
		if t.Limit == 0 {
			return fmt.Errorf("trust to delete not exist")
		}
		// A new trustline takes one more reserve entry.
		if srcAccount.Balance < (1+int64(srcAccount.EntryCount)+1)*t.BaseReserve {
			return ErrInsufficientReserve
		}
		if err := t.AM.CreateTrust(dt, t.SrcAccountID, t.Asset, t.Limit); err != nil {
			return fmt.Errorf("create trust failed: %v", err)
		}
		srcAccount.EntryCount++
		return t.AM.SaveAccount(dt, srcAccount)
	}
	if err != nil {
		return fmt.Errorf("get trust failed: %v", err)
	}

	if t.Limit == 0 {
		if trust.Balance != 0 {
			return fmt.Errorf("trust balance is not zero")
		}
		if err := t.AM.DeleteTrust(dt, t.SrcAccountID, t.Asset); err != nil {
			return fmt.Errorf("delete trust failed: %v", err)
		}
		srcAccount.EntryCount--
		return t.AM.SaveAccount(dt, srcAccount)
	}

	if t.Limit < trust.Balance {
		return fmt.Errorf("trust limit below trust balance")
	}
	trust.Limit = t.Limit
	return t.AM.SaveTrust(dt, trust)
}
