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

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Stage an asset amount in a new escrow account for the receiver",
	Long: `Send runs the first phase of the escrow transfer protocol. The amount
is moved from the sender account into a freshly created escrow account
which only the receiver can claim. The printed escrow address is handed
to the receiver out of band.`,
	Run: func(cmd *cobra.Command, args []string) {
		endpoints := stringOpt(sendEndpoints, "endpoints")
		if endpoints == "" {
			log.Fatal("node endpoints not provided")
		}
		seed := stringOpt(sendSeed, "seed")
		if seed == "" {
			log.Fatal("sender seed not provided")
		}
		sender, err := crypto.KeyPairFromSeed(seed)
		if err != nil {
			log.Fatalf("decode sender seed failed: %v", err)
		}
		asset, err := parseAsset(sendAsset)
		if err != nil {
			log.Fatal(err)
		}

		gc, err := client.New(endpoints)
		if err != nil {
			log.Fatal(err)
		}
		defer gc.Close()

		escrowID, err := transfer.NewSender(gc).Send(sender, sendReceiver, asset, sendAmount)
		if err != nil {
			log.Fatalf("send failed: %v", err)
		}
		fmt.Printf("Escrow: %s\n", escrowID)
	},
}

var (
	sendEndpoints string
	sendSeed      string
	sendReceiver  string
	sendAsset     string
	sendAmount    int64
)

func init() {
	sendCmd.Flags().StringVar(&sendEndpoints, "endpoints", "", "comma separated node endpoints")
	sendCmd.Flags().StringVar(&sendSeed, "seed", "", "seed of the sender account")
	sendCmd.Flags().StringVar(&sendReceiver, "receiver", "", "account ID of the receiver")
	sendCmd.Flags().StringVar(&sendAsset, "asset", "", "asset to transfer in the form NAME:ISSUER")
	sendCmd.Flags().Int64Var(&sendAmount, "amount", 0, "amount of the asset to transfer")
	sendCmd.MarkFlagRequired("receiver")
	sendCmd.MarkFlagRequired("asset")
	sendCmd.MarkFlagRequired("amount")
	rootCmd.AddCommand(sendCmd)
}
