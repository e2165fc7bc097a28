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

package types

// Signer is the client side view of a signer entry.
type Signer struct {
	SignerID string
	Weight   int32
}

// Balance is one entry of the balance list of an account.
type Balance struct {
	Asset  *Asset
	Amount int64
	// Trust limit of the entry, zero for the native asset.
	Limit int64
}

// Account represents an account of the ledger as seen by a
// client. It has to be fetched fresh before building a tx since
// sequence numbers must never be stale.
type Account struct {
	// Public key of this account.
	AccountID string
	// Latest transaction sequence number.
	SeqNum uint64
	// Number of trust and signer entries belonging to the account.
	EntryCount int32
	// Signing weight of the account master key.
	MasterWeight int32
	// Additional signers of the account.
	Signers []*Signer
	// Balance list, the native asset first followed by one entry
	// per trustline.
	Balances []*Balance
}

// BalanceOf scans the balance list for the entry matching the
// asset.
func (a *Account) BalanceOf(asset *Asset) (*Balance, bool) {
	for _, b := range a.Balances {
		if b.Asset.Equal(asset) {
			return b, true
		}
	}
	return nil, false
}

// LedgerInfo carries the current network parameters of the
// ledger which clients need for fee and reserve computation.
type LedgerInfo struct {
	NetworkID   string
	BaseFee     int64
	BaseReserve int64
}
