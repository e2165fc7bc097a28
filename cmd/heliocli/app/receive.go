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

package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helioledger/go-helio/client"
	"github.com/helioledger/go-helio/crypto"
	"github.com/helioledger/go-helio/log"
	"github.com/helioledger/go-helio/transfer"
)

var receiveCmd = &cobra.Command{
	Use:   "receive",
	Short: "Claim the asset staged in an escrow account",
	Long: `Receive runs the second phase of the escrow transfer protocol. The full
asset amount staged in the escrow is claimed into the receiver account,
which is created and given a trustline on the fly when needed, and the
escrow account is dissolved.`,
	Run: func(cmd *cobra.Command, args []string) {
		endpoints := stringOpt(receiveEndpoints, "endpoints")
		if endpoints == "" {
			log.Fatal("node endpoints not provided")
		}
		seed := stringOpt(receiveSeed, "seed")
		if seed == "" {
			log.Fatal("receiver seed not provided")
		}
		receiver, err := crypto.KeyPairFromSeed(seed)
		if err != nil {
			log.Fatalf("decode receiver seed failed: %v", err)
		}
		asset, err := parseAsset(receiveAsset)
		if err != nil {
			log.Fatal(err)
		}

		gc, err := client.New(endpoints)
		if err != nil {
			log.Fatal(err)
		}
		defer gc.Close()

		amount, err := transfer.NewReceiver(gc).Receive(receiver, receiveEscrow, asset)
		if err != nil {
			log.Fatalf("receive failed: %v", err)
		}
		fmt.Printf("Received: %d %s\n", amount, asset.AssetName)
	},
}

var (
	receiveEndpoints string
	receiveSeed      string
	receiveEscrow    string
	receiveAsset     string
)

func init() {
	receiveCmd.Flags().StringVar(&receiveEndpoints, "endpoints", "", "comma separated node endpoints")
	receiveCmd.Flags().StringVar(&receiveSeed, "seed", "", "seed of the receiver account")
	receiveCmd.Flags().StringVar(&receiveEscrow, "escrow", "", "account ID of the escrow to claim")
	receiveCmd.Flags().StringVar(&receiveAsset, "asset", "", "asset to claim in the form NAME:ISSUER")
	receiveCmd.MarkFlagRequired("escrow")
	receiveCmd.MarkFlagRequired("asset")
	rootCmd.AddCommand(receiveCmd)
}
