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
	"net"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/helioledger/go-helio/crypto"
	"github.com/helioledger/go-helio/db"
	"github.com/helioledger/go-helio/db/boltdb"
	"github.com/helioledger/go-helio/db/memdb"
	"github.com/helioledger/go-helio/ledger"
	"github.com/helioledger/go-helio/log"
	"github.com/helioledger/go-helio/rpc"
	"github.com/helioledger/go-helio/rpc/rpcpb"
)

var sandboxCmd = &cobra.Command{
	Use:   "sandbox",
	Short: "Run a local single node sandbox ledger",
	Long: `Sandbox boots an in-process ledger and serves it over grpc so the
transfer protocol can be tried out locally. A genesis account holding
the initial native supply is created and its keypair is printed, the
genesis account acts as the issuer of any asset in the sandbox. All
state is kept in memory unless a database file is supplied.`,
	Run: func(cmd *cobra.Command, args []string) {
		var database db.Database
		if sandboxDBFile != "" {
			database = boltdb.New(sandboxDBFile)
		} else {
			database = memdb.New()
		}
		defer database.Close()

		l := ledger.NewLedger(ledger.NewParams(), database)

		genesis, err := crypto.NewKeyPair()
		if err != nil {
			log.Fatalf("generate genesis keypair failed: %v", err)
		}
		if err := l.CreateGenesisAccount(genesis.AccountID, sandboxSupply); err != nil {
			log.Fatalf("create genesis account failed: %v", err)
		}
		fmt.Printf("Genesis AccountID: %s, Seed: %s\n", genesis.AccountID, genesis.Seed)

		listener, err := net.Listen("tcp", sandboxAddr)
		if err != nil {
			log.Fatalf("listen on %s failed: %v", sandboxAddr, err)
		}
		s := grpc.NewServer()
		rpcpb.RegisterNodeServer(s, rpc.NewNodeServer(l))

		log.Infow("sandbox ledger serving", "addr", sandboxAddr)
		if err := s.Serve(listener); err != nil {
			log.Fatalf("serve failed: %v", err)
		}
	},
}

var (
	sandboxAddr   string
	sandboxDBFile string
	sandboxSupply int64
)

func init() {
	sandboxCmd.Flags().StringVar(&sandboxAddr, "addr", "127.0.0.1:9090", "address to serve the sandbox on")
	sandboxCmd.Flags().StringVar(&sandboxDBFile, "db", "", "database file for persistent sandbox state")
	sandboxCmd.Flags().Int64Var(&sandboxSupply, "supply", 1000000*ledger.GenesisBaseReserve, "native supply of the genesis account")
	rootCmd.AddCommand(sandboxCmd)
}
