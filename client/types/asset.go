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
	"github.com/helioledger/go-helio/hlopb"
)

type AssetType uint8

const (
	// The native asset.
	NATIVE AssetType = iota
	// The custom issued asset.
	CUSTOM
)

// Asset contains the required information of working with an asset.
type Asset struct {
	AssetType AssetType
	AssetName string
	Issuer    string
}

// NativeAsset returns the native asset of the ledger.
func NativeAsset() *Asset {
	return &Asset{AssetType: NATIVE}
}

// Equal reports whether two assets identify the same asset. Two
// issued assets are the same iff name and issuer match, the
// native asset is a singleton.
func (a *Asset) Equal(other *Asset) bool {
	if a == nil || other == nil {
		return false
	}
	if a.AssetType != other.AssetType {
		return false
	}
	if a.AssetType == NATIVE {
		return true
	}
	return a.AssetName == other.AssetName && a.Issuer == other.Issuer
}

// ToPb converts the asset to its wire representation.
func (a *Asset) ToPb() *hlopb.Asset {
	asset := &hlopb.Asset{
		AssetName: a.AssetName,
		Issuer:    a.Issuer,
	}
	switch a.AssetType {
	case NATIVE:
		asset.AssetType = hlopb.AssetType_NATIVE
	case CUSTOM:
		asset.AssetType = hlopb.AssetType_CUSTOM
	}
	return asset
}

// AssetFromPb converts the wire representation of an asset.
func AssetFromPb(asset *hlopb.Asset) *Asset {
	a := &Asset{
		AssetName: asset.AssetName,
		Issuer:    asset.Issuer,
	}
	switch asset.AssetType {
	case hlopb.AssetType_NATIVE:
		a.AssetType = NATIVE
	case hlopb.AssetType_CUSTOM:
		a.AssetType = CUSTOM
	}
	return a
}
