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
	"github.com/helioledger/go-helio/log"
)

var querytxCmd = &cobra.Command{
	Use:   "querytx",
	Short: "Query the status of a submitted transaction",
	Run: func(cmd *cobra.Command, args []string) {
		endpoints := stringOpt(queryEndpoints, "endpoints")
		if endpoints == "" {
			log.Fatal("node endpoints not provided")
		}

		gc, err := client.New(endpoints)
		if err != nil {
			log.Fatal(err)
		}
		defer gc.Close()

		status, err := gc.QueryTx(queryTxKey)
		if err != nil {
			log.Fatalf("query tx failed: %v", err)
		}
		if status.ErrorMessage != "" {
			fmt.Printf("Status: %s, Error: %s\n", status.StatusCode, status.ErrorMessage)
			return
		}
		fmt.Printf("Status: %s\n", status.StatusCode)
	},
}

var (
	queryEndpoints string
	queryTxKey     string
)

func init() {
	querytxCmd.Flags().StringVar(&queryEndpoints, "endpoints", "", "comma separated node endpoints")
	querytxCmd.Flags().StringVar(&queryTxKey, "txkey", "", "key of the tx to query")
	querytxCmd.MarkFlagRequired("txkey")
	rootCmd.AddCommand(querytxCmd)
}
