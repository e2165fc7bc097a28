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

package ledger

// Genesis network parameters.
const (
	GenesisNetworkID   = "helio_sandbox_network"
	GenesisBaseFee     = int64(1000)
	GenesisBaseReserve = int64(1000000000)
)

// Params carries the network parameters which govern fees and
// reserves. Clients should fetch the live values through the
// gateway instead of hardcoding them since they can change with
// a network upgrade.
type Params struct {
	NetworkID   string
	BaseFee     int64
	BaseReserve int64
}

// NewParams returns the genesis network parameters.
func NewParams() *Params {
	return &Params{
		NetworkID:   GenesisNetworkID,
		BaseFee:     GenesisBaseFee,
		BaseReserve: GenesisBaseReserve,
	}
}

// MinBalance computes the reserve an account with the given
// entry count has to maintain.
func (p *Params) MinBalance(entryCount int32) int64 {
	return (1 + int64(entryCount)) * p.BaseReserve
}
