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

package transfer

import (
	"fmt"
	"math"

	"github.com/helioledger/go-helio/client/build"
	"github.com/helioledger/go-helio/client/types"
	"github.com/helioledger/go-helio/crypto"
	"github.com/helioledger/go-helio/log"
)

// Receiver runs the second phase of the protocol. It claims the
// asset staged in an escrow account and dissolves the escrow.
type Receiver struct {
	gateway Gateway
	retry   *RetryPolicy
}

// NewReceiver creates a receiver with the default retry policy.
func NewReceiver(gateway Gateway) *Receiver {
	return NewReceiverWithPolicy(gateway, DefaultRetryPolicy())
}

// NewReceiverWithPolicy creates a receiver with the given retry
// policy.
func NewReceiverWithPolicy(gateway Gateway, retry *RetryPolicy) *Receiver {
	return &Receiver{gateway: gateway, retry: retry}
}

// Receive claims the full asset amount staged in the escrow
// account in one atomic tx and returns the claimed amount. The
// claim tx adapts to the receiver's ledger state: it creates the
// receiver account when it does not exist yet and establishes the
// trustline when it is missing, both paid out of the escrow. It
// always ends by revoking the receiver's authority over the
// escrow, releasing the escrow's trustline and merging the
// remaining native balance of the escrow into the receiver.
//
// A second claim of the same escrow fails with
// types.ErrAccountNotFound since the escrow no longer exists.
func (r *Receiver) Receive(receiver *crypto.KeyPair, escrowID string, asset *types.Asset) (int64, error) {
	if receiver == nil {
		return 0, fmt.Errorf("receiver keypair is nil")
	}
	if !crypto.IsValidAccountKey(escrowID) {
		return 0, fmt.Errorf("invalid escrow account key")
	}
	if asset == nil || asset.AssetType == types.NATIVE {
		return 0, fmt.Errorf("only issued assets can be escrowed")
	}

	info, err := r.gateway.GetLedgerInfo()
	if err != nil {
		return 0, fmt.Errorf("get ledger info failed: %v", err)
	}

	var amount int64
	err = r.retry.do(func() error {
		escrowAcc, err := r.gateway.GetAccount(escrowID)
		if err != nil {
			// A merged escrow no longer exists, claiming twice
			// surfaces the not found error unchanged.
			return err
		}
		staged, ok := escrowAcc.BalanceOf(asset)
		if !ok || staged.Amount <= 0 {
			return fmt.Errorf("escrow %s holds no %s", escrowID, asset.AssetName)
		}
		amount = staged.Amount

		accountExists := true
		needsTrustline := true
		acc, err := r.gateway.GetAccount(receiver.AccountID)
		switch err {
		case nil:
			if _, ok := acc.BalanceOf(asset); ok {
				needsTrustline = false
			}
		case types.ErrAccountNotFound:
			accountExists = false
		default:
			return fmt.Errorf("get receiver account failed: %v", err)
		}

		// The escrow account is the tx source, its sequence number
		// advances and its native balance pays the fee.
		ms := []build.TxMutator{
			&build.AccountID{AccountID: escrowID},
			&build.NetworkID{NetworkID: info.NetworkID},
			&build.SeqNum{SeqNum: escrowAcc.SeqNum + 1},
		}
		if !accountExists {
			ms = append(ms, &build.CreateAccount{
				AccountID: receiver.AccountID,
				Balance:   receiverStartingBalance(info),
			})
		}
		if needsTrustline {
			ms = append(ms, &build.Trust{
				Asset:           asset,
				Limit:           math.MaxInt64,
				SourceAccountID: receiver.AccountID,
			})
		}
		ms = append(ms,
			&build.Payment{
				AccountID: receiver.AccountID,
				Asset:     asset,
				Amount:    amount,
			},
			&build.SetSigner{
				MasterWeight: -1,
				SignerID:     receiver.AccountID,
				SignerWeight: 0,
			},
			&build.Trust{Asset: asset, Limit: 0},
			&build.Merge{AccountID: receiver.AccountID},
		)

		tx := build.NewTx(info.BaseFee)
		if err := tx.Add(ms...); err != nil {
			return err
		}

		data, signatures, err := tx.Sign(receiver.Seed)
		if err != nil {
			return err
		}
		txKey, err := tx.TxKey()
		if err != nil {
			return err
		}
		return r.gateway.SubmitTx(txKey, data, signatures)
	}, func(err error) bool {
		return err == types.ErrBadSequence
	})
	if err != nil {
		return 0, err
	}

	log.Infow("escrow claimed", "escrow", escrowID, "asset", asset.AssetName, "amount", amount)
	return amount, nil
}
