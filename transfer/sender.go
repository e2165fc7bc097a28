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
	"github.com/helioledger/go-helio/log"
)

// Sender runs the first phase of the protocol. It stages the
// asset in a freshly created escrow account whose only remaining
// signer is the receiver.
type Sender struct {
	gateway Gateway
	retry   *RetryPolicy
}

// NewSender creates a sender with the default retry policy.
func NewSender(gateway Gateway) *Sender {
	return NewSenderWithPolicy(gateway, DefaultRetryPolicy())
}

// NewSenderWithPolicy creates a sender with the given retry
// policy.
func NewSenderWithPolicy(gateway Gateway, retry *RetryPolicy) *Sender {
	return &Sender{gateway: gateway, retry: retry}
}

// Send moves amount of asset from the sender account into a new
// escrow account claimable only by the receiver, in one atomic
// tx. It returns the address of the escrow account which the
// sender hands to the receiver over any channel.
//
// After Send returns the escrow account holds the full amount,
// its master key carries no weight and the receiver is its only
// signer. The receiver does not need an account or a trustline
// yet, the escrow carries enough native balance to pay for both.
func (s *Sender) Send(sender *crypto.KeyPair, receiverID string, asset *types.Asset, amount int64) (string, error) {
	if sender == nil {
		return "", fmt.Errorf("sender keypair is nil")
	}
	if !crypto.IsValidAccountKey(receiverID) {
		return "", fmt.Errorf("invalid receiver account key")
	}
	if asset == nil || asset.AssetType == types.NATIVE {
		return "", fmt.Errorf("only issued assets can be escrowed")
	}
	if amount <= 0 {
		return "", fmt.Errorf("transfer amount is not positive")
	}

	info, err := s.gateway.GetLedgerInfo()
	if err != nil {
		return "", fmt.Errorf("get ledger info failed: %v", err)
	}

	var escrowID string
	err = s.retry.do(func() error {
		// A fresh escrow keypair per attempt, an address collision
		// is resolved by simply drawing another one.
		escrow, err := crypto.NewKeyPair()
		if err != nil {
			return fmt.Errorf("generate escrow keypair failed: %v", err)
		}

		acc, err := s.gateway.GetAccount(sender.AccountID)
		if err != nil {
			return fmt.Errorf("get sender account failed: %v", err)
		}

		tx := build.NewTx(info.BaseFee)
		err = tx.Add(
			&build.AccountID{AccountID: sender.AccountID},
			&build.NetworkID{NetworkID: info.NetworkID},
			&build.SeqNum{SeqNum: acc.SeqNum + 1},
			&build.CreateAccount{
				AccountID: escrow.AccountID,
				Balance:   escrowStartingBalance(info),
			},
			&build.Trust{
				Asset:           asset,
				Limit:           amount,
				SourceAccountID: escrow.AccountID,
			},
			&build.Payment{
				AccountID: escrow.AccountID,
				Asset:     asset,
				Amount:    amount,
			},
			// Lock the escrow to the receiver. The master key is
			// disabled in the same op which adds the signer, so
			// there is no window where both can sign.
			&build.SetSigner{
				MasterWeight:    0,
				SignerID:        receiverID,
				SignerWeight:    1,
				SourceAccountID: escrow.AccountID,
			},
		)
		if err != nil {
			return err
		}

		// The escrow co-signs its own lockdown ops.
		data, signatures, err := tx.Sign(sender.Seed, escrow.Seed)
		if err != nil {
			return err
		}
		txKey, err := tx.TxKey()
		if err != nil {
			return err
		}
		if err := s.gateway.SubmitTx(txKey, data, signatures); err != nil {
			return err
		}

		escrowID = escrow.AccountID
		return nil
	}, func(err error) bool {
		return err == types.ErrBadSequence || err == types.ErrAccountExists
	})
	if err != nil {
		return "", err
	}

	log.Infow("escrow funded", "escrow", escrowID, "asset", asset.AssetName, "amount", amount)
	return escrowID, nil
}
