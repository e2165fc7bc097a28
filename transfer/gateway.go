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

// Package transfer implements the two-phase escrow transfer
// protocol. The sender stages the asset in a single-use escrow
// account and hands its signing authority to the receiver, who
// later claims the funds and dissolves the escrow. The two
// phases never require both parties to be online at once.
package transfer

import (
	"github.com/helioledger/go-helio/client/types"
	"github.com/helioledger/go-helio/hlopb"
)

// Gateway is the narrow interface to the ledger consumed by the
// protocol. It is satisfied by both the grpc client and the
// in-process sandbox ledger so that tests can run against an
// in-memory ledger.
type Gateway interface {
	// GetLedgerInfo returns the current network parameters.
	GetLedgerInfo() (*types.LedgerInfo, error)
	// GetAccount fetches the account state by account ID,
	// returning types.ErrAccountNotFound for a missing account.
	GetAccount(accountID string) (*types.Account, error)
	// SubmitTx submits the signed tx bytes and blocks until the
	// tx is fully applied or rejected.
	SubmitTx(txKey string, data []byte, signatures []*hlopb.Signature) error
}
