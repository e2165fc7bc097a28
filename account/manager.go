package account

import (
	"errors"
	"fmt"
	"math"

	pb "github.com/golang/protobuf/proto"

	"github.com/helioledger/go-helio/db"
	"github.com/helioledger/go-helio/hlopb"
)

var (
	ErrAccountNotExist  = errors.New("account not exist")
	ErrTrustNotExist    = errors.New("trust not exist")
	ErrBalanceOverflow  = errors.New("account balance overflow")
	ErrBalanceUnderflow = errors.New("account balance underflow")
	ErrTrustOverLimit   = errors.New("trust balance over limit")
)

// Manager manages the accounts, trustlines and signers stored
// in the underlying database.
type Manager struct {
	database      db.Database
	accountBucket string
	trustBucket   string
}

func NewManager(d db.Database) *Manager {
	am := &Manager{
		database:      d,
		accountBucket: "ACCOUNT",
		trustBucket:   "TRUST",
	}
	if err := am.database.NewBucket(am.accountBucket); err != nil {
		panic(fmt.Errorf("create db bucket %s failed: %v", am.accountBucket, err))
	}
	if err := am.database.NewBucket(am.trustBucket); err != nil {
		panic(fmt.Errorf("create db bucket %s failed: %v", am.trustBucket, err))
	}
	return am
}

// CreateAccount creates a new account with an initial native
// balance. The master key starts with weight one.
func (am *Manager) CreateAccount(putter db.Putter, accountID string, balance int64) error {
	acc := &hlopb.Account{
		AccountID:    accountID,
		Balance:      balance,
		MasterWeight: 1,
	}
	return am.SaveAccount(putter, acc)
}

// GetAccount loads the account with the account ID.
func (am *Manager) GetAccount(getter db.Getter, accountID string) (*hlopb.Account, error) {
	b, err := getter.Get(am.accountBucket, []byte(accountID))
	if err != nil {
		return nil, fmt.Errorf("get account %s failed: %v", accountID, err)
	}
	if b == nil {
		return nil, ErrAccountNotExist
	}
	acc, err := hlopb.DecodeAccount(b)
	if err != nil {
		return nil, fmt.Errorf("decode account %s failed: %v", accountID, err)
	}
	return acc, nil
}

// SaveAccount writes the account to the database.
func (am *Manager) SaveAccount(putter db.Putter, acc *hlopb.Account) error {
	accb, err := hlopb.Encode(acc)
	if err != nil {
		return fmt.Errorf("encode account failed: %v", err)
	}
	if err := putter.Put(am.accountBucket, []byte(acc.AccountID), accb); err != nil {
		return fmt.Errorf("save account in db failed: %v", err)
	}
	return nil
}

// DeleteAccount removes the account from the database, used by
// the account merge operation.
func (am *Manager) DeleteAccount(putter db.Putter, accountID string) error {
	if err := putter.Delete(am.accountBucket, []byte(accountID)); err != nil {
		return fmt.Errorf("delete account in db failed: %v", err)
	}
	return nil
}

// AddBalance adds the balance to the account and checks for
// balance overflow.
func (am *Manager) AddBalance(acc *hlopb.Account, balance int64) error {
	if acc.Balance > math.MaxInt64-balance {
		return ErrBalanceOverflow
	}
	acc.Balance += balance
	return nil
}

// SubBalance subtracts the balance from the account and checks
// for balance underflow.
func (am *Manager) SubBalance(acc *hlopb.Account, balance int64) error {
	if acc.Balance < balance {
		return ErrBalanceUnderflow
	}
	acc.Balance -= balance
	return nil
}

func (am *Manager) trustKey(accountID string, asset *hlopb.Asset) ([]byte, error) {
	assetb, err := hlopb.Encode(asset)
	if err != nil {
		return nil, fmt.Errorf("encode asset failed: %v", err)
	}
	key := []byte(accountID)
	key = append(key, assetb...)
	return key, nil
}

// CreateTrust creates a new trustline of the account to the
// issued asset.
func (am *Manager) CreateTrust(putter db.Putter, accountID string, asset *hlopb.Asset, limit int64) error {
	// Self-trust of the issuer is implicit.
	if accountID == asset.Issuer {
		return nil
	}

	trust := &hlopb.Trust{
		AccountID:  accountID,
		Asset:      asset,
		Balance:    0,
		Limit:      limit,
		Authorized: 1,
	}
	return am.SaveTrust(putter, trust)
}

// GetTrust loads the trustline of the account to the asset. The
// issuer of the asset holds an implicit unbounded trustline to
// its own asset.
func (am *Manager) GetTrust(getter db.Getter, accountID string, asset *hlopb.Asset) (*hlopb.Trust, error) {
	if accountID == asset.Issuer {
		trust := &hlopb.Trust{
			AccountID:  accountID,
			Asset:      asset,
			Balance:    math.MaxInt64,
			Limit:      math.MaxInt64,
			Authorized: 1,
		}
		return trust, nil
	}

	key, err := am.trustKey(accountID, asset)
	if err != nil {
		return nil, err
	}

	b, err := getter.Get(am.trustBucket, key)
	if err != nil {
		return nil, fmt.Errorf("get trust from db failed: %v", err)
	}
	if b == nil {
		return nil, ErrTrustNotExist
	}

	trust, err := hlopb.DecodeTrust(b)
	if err != nil {
		return nil, fmt.Errorf("decode trust failed: %v", err)
	}
	return trust, nil
}

// GetAccountTrusts loads all the trustlines of the account.
func (am *Manager) GetAccountTrusts(getter db.Getter, accountID string) ([]*hlopb.Trust, error) {
	bs, err := getter.GetAll(am.trustBucket, []byte(accountID))
	if err != nil {
		return nil, fmt.Errorf("get account trusts from db failed: %v", err)
	}

	var trusts []*hlopb.Trust
	for _, b := range bs {
		trust, err := hlopb.DecodeTrust(b)
		if err != nil {
			return nil, fmt.Errorf("decode trust failed: %v", err)
		}
		trusts = append(trusts, trust)
	}
	return trusts, nil
}

// SaveTrust writes the trustline to the database.
func (am *Manager) SaveTrust(putter db.Putter, trust *hlopb.Trust) error {
	key, err := am.trustKey(trust.AccountID, trust.Asset)
	if err != nil {
		return err
	}

	trustb, err := hlopb.Encode(trust)
	if err != nil {
		return fmt.Errorf("encode trust failed: %v", err)
	}
	if err := putter.Put(am.trustBucket, key, trustb); err != nil {
		return fmt.Errorf("save trust in db failed: %v", err)
	}
	return nil
}

// DeleteTrust removes the trustline from the database.
func (am *Manager) DeleteTrust(putter db.Putter, accountID string, asset *hlopb.Asset) error {
	key, err := am.trustKey(accountID, asset)
	if err != nil {
		return err
	}
	if err := putter.Delete(am.trustBucket, key); err != nil {
		return fmt.Errorf("delete trust in db failed: %v", err)
	}
	return nil
}

// AddTrustBalance adds the balance to the trustline and checks
// the trust limit.
func (am *Manager) AddTrustBalance(trust *hlopb.Trust, balance int64) error {
	if trust.Balance > math.MaxInt64-balance {
		return ErrBalanceOverflow
	}
	if trust.Balance+balance > trust.Limit {
		return ErrTrustOverLimit
	}
	trust.Balance += balance
	return nil
}

// SubTrustBalance subtracts the balance from the trustline and
// checks for balance underflow.
func (am *Manager) SubTrustBalance(trust *hlopb.Trust, balance int64) error {
	if trust.Balance < balance {
		return ErrBalanceUnderflow
	}
	trust.Balance -= balance
	return nil
}

// SetSigner adds, updates or removes a signer entry on the
// account. Weight zero removes the signer. The returned delta
// is the change of the account entry count.
func (am *Manager) SetSigner(acc *hlopb.Account, signerID string, weight int32) int32 {
	for i, s := range acc.Signers {
		if s.SignerID != signerID {
			continue
		}
		if weight == 0 {
			acc.Signers = append(acc.Signers[:i], acc.Signers[i+1:]...)
			return -1
		}
		acc.Signers[i].Weight = weight
		return 0
	}
	if weight == 0 {
		return 0
	}
	acc.Signers = append(acc.Signers, &hlopb.Signer{SignerID: signerID, Weight: weight})
	return 1
}

// SignerWeight resolves the signing weight of the key on the
// account, the master key carries the master weight.
func (am *Manager) SignerWeight(acc *hlopb.Account, signerID string) int32 {
	if signerID == acc.AccountID {
		return acc.MasterWeight
	}
	for _, s := range acc.Signers {
		if s.SignerID == signerID {
			return s.Weight
		}
	}
	return 0
}

// Clone returns a deep copy of the account.
func (am *Manager) Clone(acc *hlopb.Account) *hlopb.Account {
	return pb.Clone(acc).(*hlopb.Account)
}
