package op

import (
	"fmt"

	"github.com/helioledger/go-helio/account"
	"github.com/helioledger/go-helio/db"
	"github.com/helioledger/go-helio/hlopb"
)

// Payment is a peer to peer payment in the specified asset.
type Payment struct {
	AM           *account.Manager
	SrcAccountID string
	DstAccountID string
	Asset        *hlopb.Asset
	Amount       int64
	BaseReserve  int64
}

func (p *Payment) Apply(dt db.Tx) error {
	if err := ValidateAsset(p.Asset); err != nil {
		return fmt.Errorf("validate payment asset failed: %v", err)
	}
	if p.Amount <= 0 {
		return ErrInvalidPaymentAmount
	}
	if p.SrcAccountID == "" || p.DstAccountID == "" {
		return ErrInvalidAccountID
	}

	if p.Asset.AssetType == hlopb.AssetType_NATIVE {
		return p.applyNative(dt)
	}
	return p.applyCustom(dt)
}

func (p *Payment) applyNative(dt db.Tx) error {
	srcAccount, err := p.AM.GetAccount(dt, p.SrcAccountID)
	if err != nil {
		return fmt.Errorf("get source account failed: %v", err)
	}
	if err := p.AM.SubBalance(srcAccount, p.Amount); err != nil {
		return err
	}
	// The payment must not dip into the reserve of the source.
	if srcAccount.Balance < (1+int64(srcAccount.EntryCount))*p.BaseReserve {
		return ErrInsufficientReserve
	}
	if err := p.AM.SaveAccount(dt, srcAccount); err != nil {
		return err
	}

	dstAccount, err := p.AM.GetAccount(dt, p.DstAccountID)
	if err != nil {
		return fmt.Errorf("get destination account failed: %v", err)
	}
	if err := p.AM.AddBalance(dstAccount, p.Amount); err != nil {
		return err
	}
	if err := p.AM.SaveAccount(dt, dstAccount); err != nil {
		return err
	}

	return nil
}

func (p *Payment) applyCustom(dt db.Tx) error {
	// The issuer account must exist.
	if _, err := p.AM.GetAccount(dt, p.Asset.Issuer); err != nil {
		return fmt.Errorf("get asset issuer failed: %v", err)
	}

	// Deduct from the source side. Payments out of the issuer
	// account mint the asset, so there is no trust to update.
	if p.SrcAccountID != p.Asset.Issuer {
		trust, err := p.AM.GetTrust(dt, p.SrcAccountID, p.Asset)
		if err != nil {
			return fmt.Errorf("get source trust failed: %v", err)
		}
		if trust.Authorized == 0 {
			return ErrPaymentNotAuthorized
		}
		if err := p.AM.SubTrustBalance(trust, p.Amount); err != nil {
			return err
		}
		if err := p.AM.SaveTrust(dt, trust); err != nil {
			return err
		}
	}

	// Add to the destination side. Payments back to the issuer
	// burn the asset.
	if p.DstAccountID != p.Asset.Issuer {
		if _, err := p.AM.GetAccount(dt, p.DstAccountID); err != nil {
			return fmt.Errorf("get destination account failed: %v", err)
		}
		trust, err := p.AM.GetTrust(dt, p.DstAccountID, p.Asset)
		if err != nil {
			if err == account.ErrTrustNotExist {
				return fmt.Errorf("destination has no trustline for %s", p.Asset.AssetName)
			}
			return fmt.Errorf("get destination trust failed: %v", err)
		}
		if trust.Authorized == 0 {
			return ErrPaymentNotAuthorized
		}
		if err := p.AM.AddTrustBalance(trust, p.Amount); err != nil {
			return err
		}
		if err := p.AM.SaveTrust(dt, trust); err != nil {
			return err
		}
	}

	return nil
}
