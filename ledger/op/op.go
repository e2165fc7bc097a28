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

// Package op implements the ledger-side application of the
// transaction operations. Each operation applies against the
// account manager within a database transaction so that a tx
// batch either commits as a whole or leaves no trace.
package op

import (
	"errors"

	"github.com/helioledger/go-helio/db"
	"github.com/helioledger/go-helio/hlopb"
)

var (
	ErrInvalidAccountID     = errors.New("invalid accountID")
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
	ErrAccountExists        = errors.New("account already exists")
	ErrInsufficientReserve  = errors.New("insufficient reserve balance")
	ErrPaymentNotAuthorized = errors.New("payment is not authorized")
)

// Op represents the interface with which the various
// transaction operations should comply.
type Op interface {
	Apply(dt db.Tx) error
}

// ValidateAsset checks the validity of the asset.
func ValidateAsset(asset *hlopb.Asset) error {
	if asset == nil {
		return errors.New("asset is nil")
	}
	if asset.AssetType == hlopb.AssetType_NATIVE {
		return nil
	}
	if len(asset.AssetName) == 0 || len(asset.AssetName) > 4 {
		return errors.New("invalid asset name")
	}
	if asset.Issuer == "" {
		return errors.New("empty asset issuer")
	}
	return nil
}
