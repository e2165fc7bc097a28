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

import (
	"errors"
	"fmt"
)

// Typed submission errors shared between the gateway
// implementations and the transfer protocol.
var (
	// The requested account does not exist on the ledger.
	ErrAccountNotFound = errors.New("account not found")
	// The destination account of a CreateAccount op already
	// exists, for freshly generated addresses this signals a
	// concurrent claim of the address.
	ErrAccountExists = errors.New("account already exists")
	// The tx sequence number does not follow the current
	// sequence number of the source account.
	ErrBadSequence = errors.New("bad tx sequence number")
	// The tx fee does not cover base fee times op count.
	ErrInsufficientFee = errors.New("insufficient tx fee")
	// The funded balance does not cover the reserve required
	// for the entries of the account.
	ErrInsufficientReserve = errors.New("insufficient reserve balance")
	// The tx signatures do not authorize the tx.
	ErrBadSignature = errors.New("bad tx signature")
)

// OpError reports the failure of a single operation of a tx
// batch. The whole tx is rejected, nothing partially applies.
type OpError struct {
	// Index of the failing operation in the op list.
	Index int
	// Reason of the ledger-side validation failure.
	Reason string
}

func (e *OpError) Error() string {
	return fmt.Sprintf("op %d failed: %s", e.Index, e.Reason)
}
