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

// Package app wires the heliocli commands.
package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/helioledger/go-helio/client/types"
	"github.com/helioledger/go-helio/crypto"
)

var rootCmd = &cobra.Command{
	Use:   "heliocli",
	Short: "Command line tools for the helio escrow transfer protocol",
	Long: `heliocli runs the two phases of the escrow transfer protocol against
a helio network and manages the keypairs and sandbox used for trying
the protocol out locally.`,
}

var cfgFile string

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file with default flag values")
}

// initConfig reads in the config file when one is supplied, the
// values act as defaults for the command flags.
func initConfig() {
	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		fmt.Printf("read config file failed: %v\n", err)
		os.Exit(1)
	}
}

// stringOpt resolves a flag value with the config file as the
// fallback.
func stringOpt(flagValue, key string) string {
	if flagValue != "" {
		return flagValue
	}
	return viper.GetString(key)
}

// parseAsset parses an asset argument of the form NAME:ISSUER.
func parseAsset(s string) (*types.Asset, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || parts[0] == "" {
		return nil, fmt.Errorf("asset must have the form NAME:ISSUER")
	}
	if !crypto.IsValidAccountKey(parts[1]) {
		return nil, fmt.Errorf("invalid asset issuer account key")
	}
	return &types.Asset{
		AssetType: types.CUSTOM,
		AssetName: parts[0],
		Issuer:    parts[1],
	}, nil
}
