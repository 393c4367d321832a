// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/EastAgile/0l-txs/config"
)

var (
	initChainID      string
	initMaxGas       uint64
	initGasUnitPrice uint64
	initABIDirectory string
	initForce        bool
)

func init() {
	initConfigCmd.Flags().StringVar(&initChainID, "chain-id", "", "Default chain name (mainnet, testnet, devnet, testing) or numeric id")
	initConfigCmd.Flags().Uint64Var(&initMaxGas, "max-gas", 0, "Default maximum gas units")
	initConfigCmd.Flags().Uint64Var(&initGasUnitPrice, "gas-unit-price", 0, "Default price per gas unit in octas")
	initConfigCmd.Flags().StringVar(&initABIDirectory, "abi-dir", "", "Directory holding imported module ABIs, relative to the data directory unless absolute")
	initConfigCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config.json")
}

// configOverrides are the settings init-config takes from the command line. Zero
// values keep the defaults.
type configOverrides struct {
	ChainID      string
	MaxGasAmount uint64
	GasUnitPrice uint64
	ABIDirectory string
}

// initConfig writes a config.json into dir holding the defaults with overrides applied,
// and returns its path.
func initConfig(dir string, overrides configOverrides, force bool) (string, error) {
	path := filepath.Join(dir, config.ConfigFilename)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf(errorConfigExists, path)
		}
	}

	cfg := config.GetDefaultLocal()
	if overrides.ChainID != "" {
		chainID, err := parseChainFlag(overrides.ChainID)
		if err != nil {
			return path, err
		}
		cfg.ChainID = uint8(chainID)
	}
	if overrides.MaxGasAmount != 0 {
		cfg.MaxGasAmount = overrides.MaxGasAmount
	}
	if overrides.GasUnitPrice != 0 {
		cfg.GasUnitPrice = overrides.GasUnitPrice
	}
	if overrides.ABIDirectory != "" {
		cfg.ABIDirectory = overrides.ABIDirectory
	}
	if err := cfg.Validate(); err != nil {
		return path, err
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return path, err
	}
	return path, cfg.SaveToDisk(dir)
}

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write a config.json into the data directory",
	Long:  `Write a config.json holding the default settings into the data directory. Settings given on the command line replace the defaults; only values that differ from the defaults are written.`,
	Args:  validateNoPosArgsFn,
	Run: func(cmd *cobra.Command, _ []string) {
		path, err := initConfig(resolveDataDir(), configOverrides{
			ChainID:      initChainID,
			MaxGasAmount: initMaxGas,
			GasUnitPrice: initGasUnitPrice,
			ABIDirectory: initABIDirectory,
		}, initForce)
		if err != nil {
			reportErrorf(errorWriteConfig, err)
		}
		reportInfof(infoConfigWritten, path)
	},
}
