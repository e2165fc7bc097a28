// Copyright 2019 The go-helio Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ledger implements an in-process ledger which applies
// submitted transactions with the same all-or-nothing semantics
// as a network node. It serves as the sandbox backend of the rpc
// server and as the ledger stand-in for protocol tests.
package ledger

import (
	"fmt"
	"sync"

	mapset "github.com/deckarep/golang-set"
	lru "github.com/hashicorp/golang-lru"

	"github.com/helioledger/go-helio/account"
	"github.com/helioledger/go-helio/client/types"
	"github.com/helioledger/go-helio/crypto"
	"github.com/helioledger/go-helio/db"
	"github.com/helioledger/go-helio/hlopb"
	"github.com/helioledger/go-helio/ledger/op"
	"github.com/helioledger/go-helio/log"
)

// Ledger validates and applies transactions against the
// underlying database. Each transaction closes synchronously:
// SubmitTx returns only after the tx is fully applied or fully
// discarded.
type Ledger struct {
	params   *Params
	database db.Database
	am       *account.Manager

	// LRU cache of the status of closed txs.
	states *lru.Cache

	// Transactions close one at a time.
	mu sync.Mutex
}

// NewLedger creates a ledger on top of the database.
func NewLedger(params *Params, database db.Database) *Ledger {
	states, err := lru.New(10000)
	if err != nil {
		log.Fatalf("create tx states LRU cache failed: %v", err)
	}
	return &Ledger{
		params:   params,
		database: database,
		am:       account.NewManager(database),
		states:   states,
	}
}

// CreateGenesisAccount materializes an account out of thin air,
// used for bootstrapping the sandbox.
func (l *Ledger) CreateGenesisAccount(accountID string, balance int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !crypto.IsValidAccountKey(accountID) {
		return fmt.Errorf("invalid account key")
	}
	if _, err := l.am.GetAccount(l.database, accountID); err == nil {
		return types.ErrAccountExists
	}
	return l.am.CreateAccount(l.database, accountID, balance)
}

// GetLedgerInfo returns the current network parameters.
func (l *Ledger) GetLedgerInfo() (*types.LedgerInfo, error) {
	return &types.LedgerInfo{
		NetworkID:   l.params.NetworkID,
		BaseFee:     l.params.BaseFee,
		BaseReserve: l.params.BaseReserve,
	}, nil
}

// GetAccount returns the client side view of the account with
// its full balance list.
func (l *Ledger) GetAccount(accountID string) (*types.Account, error) {
	acc, err := l.am.GetAccount(l.database, accountID)
	if err == account.ErrAccountNotExist {
		return nil, types.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}

	trusts, err := l.am.GetAccountTrusts(l.database, accountID)
	if err != nil {
		return nil, err
	}

	result := &types.Account{
		AccountID:    acc.AccountID,
		SeqNum:       acc.SeqNum,
		EntryCount:   acc.EntryCount,
		MasterWeight: acc.MasterWeight,
	}
	for _, s := range acc.Signers {
		result.Signers = append(result.Signers, &types.Signer{
			SignerID: s.SignerID,
			Weight:   s.Weight,
		})
	}
	result.Balances = append(result.Balances, &types.Balance{
		Asset:  types.NativeAsset(),
		Amount: acc.Balance,
	})
	for _, t := range trusts {
		result.Balances = append(result.Balances, &types.Balance{
			Asset:  types.AssetFromPb(t.Asset),
			Amount: t.Balance,
			Limit:  t.Limit,
		})
	}
	return result, nil
}

// QueryTx returns the status of the tx with the tx key.
func (l *Ledger) QueryTx(txKey string) (*types.TxStatus, error) {
	if status, ok := l.states.Get(txKey); ok {
		return status.(*types.TxStatus), nil
	}
	return &types.TxStatus{StatusCode: types.NotExist}, nil
}

// SubmitTx closes the tx synchronously. Either every operation
// of the tx is applied or the ledger is left unchanged.
func (l *Ledger) SubmitTx(txKey string, data []byte, signatures []*hlopb.Signature) error {
	err := l.closeTx(data, signatures)

	status := &types.TxStatus{StatusCode: types.Confirmed}
	if err != nil {
		status.StatusCode = types.Failed
		status.ErrorMessage = err.Error()
	}
	l.states.Add(txKey, status)

	if err != nil {
		log.Debugw("tx rejected", "txkey", txKey, "error", err)
		return err
	}
	log.Debugw("tx confirmed", "txkey", txKey)
	return nil
}

func (l *Ledger) closeTx(data []byte, signatures []*hlopb.Signature) error {
	tx, err := hlopb.DecodeTx(data)
	if err != nil {
		return fmt.Errorf("decode tx failed: %v", err)
	}

	if tx.NetworkID != l.params.NetworkID {
		return fmt.Errorf("tx meant for network %s", tx.NetworkID)
	}
	if len(tx.OpList) == 0 {
		return fmt.Errorf("empty op list")
	}
	if tx.Fee < l.params.BaseFee*int64(len(tx.OpList)) {
		return types.ErrInsufficientFee
	}

	// Verify the signatures over the raw tx bytes and reject
	// duplicated signers.
	if len(signatures) == 0 {
		return types.ErrBadSignature
	}
	signers := mapset.NewSet()
	for _, sig := range signatures {
		if !crypto.Verify(sig.SignerID, sig.Signature, data) {
			return types.ErrBadSignature
		}
		if !signers.Add(sig.SignerID) {
			return types.ErrBadSignature
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	srcAccount, err := l.am.GetAccount(l.database, tx.AccountID)
	if err == account.ErrAccountNotExist {
		return types.ErrAccountNotFound
	}
	if err != nil {
		return err
	}

	// Each tx has to consume the next sequence number of its
	// source account exactly once.
	if tx.SeqNum != srcAccount.SeqNum+1 {
		return types.ErrBadSequence
	}

	// The tx source itself must be authorized by the signatures.
	if l.signedWeight(srcAccount, signers) == 0 {
		return types.ErrBadSignature
	}

	dt, err := l.database.Begin()
	if err != nil {
		return fmt.Errorf("begin db tx failed: %v", err)
	}

	if err := l.applyTx(dt, tx, signers); err != nil {
		dt.Rollback()
		return err
	}
	if err := dt.Commit(); err != nil {
		return fmt.Errorf("commit db tx failed: %v", err)
	}
	return nil
}

// applyTx charges the fee, bumps the sequence number and applies
// the op list in order within the database transaction.
func (l *Ledger) applyTx(dt db.Tx, tx *hlopb.Tx, signers mapset.Set) error {
	srcAccount, err := l.am.GetAccount(dt, tx.AccountID)
	if err != nil {
		return err
	}
	if err := l.am.SubBalance(srcAccount, tx.Fee); err != nil {
		return types.ErrInsufficientReserve
	}
	srcAccount.SeqNum = tx.SeqNum
	if err := l.am.SaveAccount(dt, srcAccount); err != nil {
		return err
	}

	// Authorization is resolved per account the first time an op
	// acts for it and then kept for the rest of the tx, so an op
	// may revoke the signing authority of a later op's account
	// without invalidating the tx it itself travels in.
	authorized := map[string]bool{tx.AccountID: true}

	for i, o := range tx.OpList {
		if err := l.applyOp(dt, tx, i, o, signers, authorized); err != nil {
			switch err {
			case op.ErrAccountExists:
				return types.ErrAccountExists
			case op.ErrInsufficientReserve:
				return types.ErrInsufficientReserve
			default:
				return &types.OpError{Index: i, Reason: err.Error()}
			}
		}
	}
	return nil
}

func (l *Ledger) applyOp(dt db.Tx, tx *hlopb.Tx, index int, o *hlopb.Op, signers mapset.Set, authorized map[string]bool) error {
	srcID, err := opSource(tx, o)
	if err != nil {
		return err
	}

	// The op source account must be authorized by one of the
	// verified signatures. The account is resolved at apply time
	// so an op may act for an account created earlier in the
	// same tx.
	if !authorized[srcID] {
		opAccount, err := l.am.GetAccount(dt, srcID)
		if err != nil {
			return fmt.Errorf("get op source account failed: %v", err)
		}
		if l.signedWeight(opAccount, signers) == 0 {
			return fmt.Errorf("op source %s not authorized", srcID)
		}
		authorized[srcID] = true
	}

	var applied op.Op
	switch o.OpType {
	case hlopb.OpType_CREATE_ACCOUNT:
		applied = &op.CreateAccount{
			AM:           l.am,
			SrcAccountID: srcID,
			DstAccountID: o.CreateAccount.AccountID,
			Balance:      o.CreateAccount.Balance,
			BaseReserve:  l.params.BaseReserve,
		}
	case hlopb.OpType_PAYMENT:
		applied = &op.Payment{
			AM:           l.am,
			SrcAccountID: srcID,
			DstAccountID: o.Payment.AccountID,
			Asset:        o.Payment.Asset,
			Amount:       o.Payment.Amount,
			BaseReserve:  l.params.BaseReserve,
		}
	case hlopb.OpType_TRUST:
		applied = &op.Trust{
			AM:           l.am,
			SrcAccountID: srcID,
			Asset:        o.Trust.Asset,
			Limit:        o.Trust.Limit,
			BaseReserve:  l.params.BaseReserve,
		}
	case hlopb.OpType_SIGNER:
		applied = &op.SetSigner{
			AM:           l.am,
			SrcAccountID: srcID,
			MasterWeight: o.Signer.MasterWeight,
			SignerID:     o.Signer.SignerID,
			SignerWeight: o.Signer.SignerWeight,
			BaseReserve:  l.params.BaseReserve,
		}
	case hlopb.OpType_MERGE:
		applied = &op.Merge{
			AM:           l.am,
			SrcAccountID: srcID,
			DstAccountID: o.Merge.AccountID,
		}
	default:
		return fmt.Errorf("unknown op type %d", o.OpType)
	}

	return applied.Apply(dt)
}

// opSource resolves the account an op acts for, either the op
// source override or the tx source account.
func opSource(tx *hlopb.Tx, o *hlopb.Op) (string, error) {
	switch o.OpType {
	case hlopb.OpType_CREATE_ACCOUNT:
		if o.CreateAccount == nil {
			return "", fmt.Errorf("create account op is nil")
		}
	case hlopb.OpType_PAYMENT:
		if o.Payment == nil {
			return "", fmt.Errorf("payment op is nil")
		}
	case hlopb.OpType_TRUST:
		if o.Trust == nil {
			return "", fmt.Errorf("trust op is nil")
		}
		if o.Trust.SourceAccountID != "" {
			return o.Trust.SourceAccountID, nil
		}
	case hlopb.OpType_SIGNER:
		if o.Signer == nil {
			return "", fmt.Errorf("signer op is nil")
		}
		if o.Signer.SourceAccountID != "" {
			return o.Signer.SourceAccountID, nil
		}
	case hlopb.OpType_MERGE:
		if o.Merge == nil {
			return "", fmt.Errorf("merge op is nil")
		}
	}
	return tx.AccountID, nil
}

// signedWeight resolves the highest signing weight any of the
// verified signature keys carries on the account.
func (l *Ledger) signedWeight(acc *hlopb.Account, signers mapset.Set) int32 {
	var weight int32
	for s := range signers.Iter() {
		w := l.am.SignerWeight(acc, s.(string))
		if w > weight {
			weight = w
		}
	}
	return weight
}
