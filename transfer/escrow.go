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

	"github.com/helioledger/go-helio/client/build"
	"github.com/helioledger/go-helio/client/types"
	"github.com/helioledger/go-helio/crypto"
)

// Worst case number of operations in a claim tx, used to size the
// fee allowance the escrow carries for the receiver.
const claimMaxOps = 6

// receiverStartingBalance sizes the starting balance of a receiver
// account the claim tx may have to create. It covers the base
// reserve plus the reserve of the trustline the claim establishes.
func receiverStartingBalance(info *types.LedgerInfo) int64 {
	return 2 * info.BaseReserve
}

// escrowStartingBalance sizes the native balance an escrow account
// is funded with. The escrow itself needs the base reserve plus
// one trustline entry plus one signer entry. On top of that it
// carries the reserve for a receiver account the claim may have to
// create and the fee allowance for the worst case claim tx, both
// of which flow back to the receiver when the escrow is merged.
func escrowStartingBalance(info *types.LedgerInfo) int64 {
	return 3*info.BaseReserve + receiverStartingBalance(info) + claimMaxOps*info.BaseFee
}

// CreateAndFund creates a new account on the ledger holding the
// given native starting balance, paid for by the source keypair.
// Sequence conflicts are retried with fresh state.
func CreateAndFund(gateway Gateway, source *crypto.KeyPair, accountID string, balance int64) error {
	if source == nil {
		return fmt.Errorf("source keypair is nil")
	}
	if !crypto.IsValidAccountKey(accountID) {
		return fmt.Errorf("invalid account key")
	}

	info, err := gateway.GetLedgerInfo()
	if err != nil {
		return fmt.Errorf("get ledger info failed: %v", err)
	}

	return DefaultRetryPolicy().do(func() error {
		acc, err := gateway.GetAccount(source.AccountID)
		if err != nil {
			return fmt.Errorf("get source account failed: %v", err)
		}

		tx := build.NewTx(info.BaseFee)
		err = tx.Add(
			&build.AccountID{AccountID: source.AccountID},
			&build.NetworkID{NetworkID: info.NetworkID},
			&build.SeqNum{SeqNum: acc.SeqNum + 1},
			&build.CreateAccount{AccountID: accountID, Balance: balance},
		)
		if err != nil {
			return err
		}

		data, signatures, err := tx.Sign(source.Seed)
		if err != nil {
			return err
		}
		txKey, err := tx.TxKey()
		if err != nil {
			return err
		}
		return gateway.SubmitTx(txKey, data, signatures)
	}, func(err error) bool {
		return err == types.ErrBadSequence
	})
}
