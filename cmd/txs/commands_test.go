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
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/algorand/go-deadlock"
	"github.com/stretchr/testify/require"

	"github.com/EastAgile/0l-txs/config"
	"github.com/EastAgile/0l-txs/data/abi"
	"github.com/EastAgile/0l-txs/data/basics"
	"github.com/EastAgile/0l-txs/libtxs"
	"github.com/EastAgile/0l-txs/logging"
	"github.com/EastAgile/0l-txs/protocol"
	"github.com/EastAgile/0l-txs/test/partitiontest"
)

const rfc8032Seed = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
const rfc8032Public = "0xd75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"

const vaultABI = `{
  "address": "0x2",
  "name": "vault",
  "exposed_functions": [
    {"name": "deposit", "visibility": "public", "is_entry": true, "is_view": false,
     "generic_type_params": [], "params": ["&signer", "u128", "vector<u8>"], "return": []},
    {"name": "balance", "visibility": "public", "is_entry": false, "is_view": true,
     "generic_type_params": [{"constraints": []}], "params": ["address"], "return": ["u64", "T0"]}
  ]
}`

func makeCmdBuilder(t *testing.T, source libtxs.ABISource) *libtxs.Builder {
	cfg := config.GetDefaultLocal()
	cfg.ChainID = uint8(protocol.Testing)
	b, err := libtxs.MakeBuilder(cfg, source, logging.TestingLog(t))
	require.NoError(t, err)
	return b
}

func TestLoadSecrets(t *testing.T) {
	partitiontest.PartitionTest(t)

	_, err := loadSecrets("", "")
	require.EqualError(t, err, errorKeyFlags)
	_, err = loadSecrets(rfc8032Seed, "key.txt")
	require.EqualError(t, err, errorKeyFlags)

	fromFlag, err := loadSecrets("0x"+rfc8032Seed, "")
	require.NoError(t, err)
	require.Equal(t, rfc8032Public, fromFlag.SignatureVerifier.String())

	keyFile := filepath.Join(t.TempDir(), "key.txt")
	require.NoError(t, os.WriteFile(keyFile, []byte(rfc8032Seed+"\n"), 0600))
	fromFile, err := loadSecrets("", keyFile)
	require.NoError(t, err)
	require.Equal(t, fromFlag.SignatureVerifier, fromFile.SignatureVerifier)
	require.Equal(t, "0x"+rfc8032Seed, encodePrivateKey(fromFile))

	_, err = loadSecrets("0x1234", "")
	require.Error(t, err)
}

func TestResolveSender(t *testing.T) {
	partitiontest.PartitionTest(t)

	secrets, err := loadSecrets(rfc8032Seed, "")
	require.NoError(t, err)

	derived, err := resolveSender("", secrets)
	require.NoError(t, err)
	account := describeAccount(secrets)
	require.Equal(t, account.AuthKey, derived.StringLong())
	require.Equal(t, derived.String(), account.Address)
	require.Equal(t, rfc8032Public, account.PublicKey)

	explicit, err := resolveSender("0x1", secrets)
	require.NoError(t, err)
	require.Equal(t, "0x1", explicit.String())

	_, err = resolveSender("1", secrets)
	require.Error(t, err)
}

func TestParseChainFlag(t *testing.T) {
	partitiontest.PartitionTest(t)

	id, err := parseChainFlag("")
	require.NoError(t, err)
	require.Equal(t, protocol.ChainID(0), id)

	id, err = parseChainFlag("testnet")
	require.NoError(t, err)
	require.Equal(t, protocol.Testnet, id)

	_, err = parseChainFlag("moon")
	require.Error(t, err)
}

func TestSignEntryFunctionTx(t *testing.T) {
	partitiontest.PartitionTest(t)

	source, err := libtxs.MakeStaticABISource([]byte(vaultABI))
	require.NoError(t, err)
	b := makeCmdBuilder(t, source)
	secrets, err := loadSecrets(rfc8032Seed, "")
	require.NoError(t, err)
	sender, err := resolveSender("", secrets)
	require.NoError(t, err)

	stx, err := signEntryFunctionTx(context.Background(), b, libtxs.EntryFunctionTxRequest{
		Function: "0x2::vault::deposit",
		Args:     `340282366920938463463374607431768211455, x"cafe"`,
		Sender:   sender,
	}, secrets)
	require.NoError(t, err)
	require.NoError(t, stx.Verify())
	require.Equal(t, protocol.Testing, stx.Txn.ChainID)

	args := stx.Txn.Payload.EntryFunction.Args
	require.Len(t, args, 2)
	require.Equal(t, []byte{2, 0xca, 0xfe}, args[1].Bytes)

	_, err = signEntryFunctionTx(context.Background(), b, libtxs.EntryFunctionTxRequest{
		Function: "0x2::vault::deposit",
		Args:     "1",
		Sender:   sender,
	}, secrets)
	require.Error(t, err)
}

func TestViewCommandHelpers(t *testing.T) {
	partitiontest.PartitionTest(t)

	source, err := libtxs.MakeStaticABISource([]byte(vaultABI))
	require.NoError(t, err)
	b := makeCmdBuilder(t, source)

	view, err := b.MakeViewCall(context.Background(), libtxs.ViewRequest{
		Function: "0x2::vault::balance",
		TypeArgs: "bool",
		Args:     "0x2",
	})
	require.NoError(t, err)

	out, err := renderViewRequest(view)
	require.NoError(t, err)
	var req struct {
		BCS  string                 `json:"bcs"`
		JSON map[string]interface{} `json:"json"`
	}
	require.NoError(t, json.Unmarshal(out, &req))
	require.True(t, strings.HasPrefix(req.BCS, "0x"))
	require.Equal(t, "0x2::vault::balance", req.JSON["function"])

	// [u64 1, bool true]
	_, err = decodeViewReturns(b, view, "0xzz", false)
	require.Error(t, err)
	decoded, err := decodeViewReturns(b, view, "0x020801000000000000000101", false)
	require.NoError(t, err)
	require.JSONEq(t, `["1", true]`, string(decoded))

	decoded, err = decodeViewReturns(b, view, `["12", false]`, true)
	require.NoError(t, err)
	require.JSONEq(t, `["12", false]`, string(decoded))

	_, err = decodeViewReturns(b, view, "0x0108", false)
	require.Error(t, err)
}

func TestEncodeArgs(t *testing.T) {
	partitiontest.PartitionTest(t)

	source, err := libtxs.MakeStaticABISource([]byte(vaultABI))
	require.NoError(t, err)
	b := makeCmdBuilder(t, source)

	encoded, err := encodeArgs(b, "1u8, true", "", "", "")
	require.NoError(t, err)
	require.Equal(t, "u8\t0x01", formatEncodedArg(encoded[0]))
	require.Equal(t, "bool\t0x01", formatEncodedArg(encoded[1]))

	encoded, err = encodeArgs(b, "1, [2, 3]", "u16, vector<u32>", "", "")
	require.NoError(t, err)
	require.Equal(t, "u16\t0x0100", formatEncodedArg(encoded[0]))
	require.Equal(t, "vector<u32>\t0x020200000003000000", formatEncodedArg(encoded[1]))

	encoded, err = encodeArgs(b, "7, b\"ok\"", "", "0x2::vault::deposit", "")
	require.NoError(t, err)
	require.Equal(t, "u128\t0x07000000000000000000000000000000", formatEncodedArg(encoded[0]))
	require.Equal(t, "vector<u8>\t0x026f6b", formatEncodedArg(encoded[1]))

	_, err = encodeArgs(b, "1, 2", "u8", "", "")
	var arity *abi.ArityMismatchError
	require.ErrorAs(t, err, &arity)
}

func TestDescribeFunction(t *testing.T) {
	partitiontest.PartitionTest(t)

	module, err := abi.ParseModuleABI([]byte(vaultABI))
	require.NoError(t, err)

	deposit, err := module.Function("deposit")
	require.NoError(t, err)
	require.Equal(t, "entry deposit(signer, u128, vector<u8>)", describeFunction(deposit))

	balance, err := module.Function("balance")
	require.NoError(t, err)
	require.Equal(t, "#[view] balance<T0>(address): u64, T0", describeFunction(balance))
}

func TestReadWriteFile(t *testing.T) {
	partitiontest.PartitionTest(t)

	name := filepath.Join(t.TempDir(), "txn.bcs")
	require.NoError(t, writeFile(name, []byte{1, 2, 3}, 0600))
	data, err := readFile(name)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, data)
}

func TestLoadConfig(t *testing.T) {
	partitiontest.PartitionTest(t)

	dir := t.TempDir()
	cfg, err := loadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, config.GetDefaultLocal(), cfg)

	custom := config.GetDefaultLocal()
	custom.ChainID = 2
	require.NoError(t, custom.SaveToDisk(dir))
	cfg, err = loadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, uint8(2), cfg.ChainID)

	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFilename), []byte(`{"Bogus": 1}`), 0600))
	_, err = loadConfig(dir)
	require.Error(t, err)
}

func TestSetupDeadlockDetection(t *testing.T) {
	partitiontest.PartitionTest(t)

	saved := deadlock.Opts
	defer func() { deadlock.Opts = saved }()

	cfg := config.GetDefaultLocal()
	cfg.DeadlockDetection = 1
	cfg.DeadlockDetectionThreshold = 7
	setupDeadlockDetection(cfg)
	require.False(t, deadlock.Opts.Disable)
	require.Equal(t, int64(7), int64(deadlock.Opts.DeadlockTimeout.Seconds()))

	cfg.DeadlockDetection = -1
	setupDeadlockDetection(cfg)
	require.True(t, deadlock.Opts.Disable)
}

func TestSetupLoggingLevelOverride(t *testing.T) {
	partitiontest.PartitionTest(t)

	savedLevel, savedOpts := log.GetLevel(), deadlock.Opts
	defer func() {
		log.SetLevel(savedLevel)
		deadlock.Opts = savedOpts
		logLevel = ""
	}()

	cfg := config.GetDefaultLocal()
	cfg.BaseLoggerDebugLevel = uint32(logging.Warn)
	setupLogging(cfg)
	require.Equal(t, logging.Warn, log.GetLevel())

	logLevel = "debug"
	setupLogging(cfg)
	require.Equal(t, logging.Debug, log.GetLevel())
}

func TestSignCoinTransferTx(t *testing.T) {
	partitiontest.PartitionTest(t)

	b := makeCmdBuilder(t, nil)
	secrets, err := loadSecrets(rfc8032Seed, "")
	require.NoError(t, err)
	sender, err := resolveSender("", secrets)
	require.NoError(t, err)
	receiver, err := basics.ParseAddress("0xb0b")
	require.NoError(t, err)

	stx, err := signCoinTransferTx(context.Background(), b, receiver, 1_000_000, libtxs.EntryFunctionTxRequest{
		Sender:         sender,
		SequenceNumber: 4,
		MaxGasAmount:   5000,
	}, secrets)
	require.NoError(t, err)
	require.NoError(t, stx.Verify())
	require.Equal(t, uint64(5000), stx.Txn.MaxGasAmount)
	require.Equal(t, uint64(100), stx.Txn.GasUnitPrice)

	var out bytes.Buffer
	rendered, err := stx.Render()
	require.NoError(t, err)
	require.NoError(t, writeJSON(&out, &rendered))
	require.True(t, strings.HasSuffix(out.String(), "}\n"))

	var decoded struct {
		SequenceNumber string `json:"sequence_number"`
		Payload        struct {
			Function  string   `json:"function"`
			Arguments []string `json:"arguments"`
		} `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Equal(t, "4", decoded.SequenceNumber)
	require.Equal(t, libtxs.CoinTransferFunction, decoded.Payload.Function)
	require.Equal(t, []string{receiver.String(), "1000000"}, decoded.Payload.Arguments)
}

func TestInitConfig(t *testing.T) {
	partitiontest.PartitionTest(t)

	dir := filepath.Join(t.TempDir(), "data")
	path, err := initConfig(dir, configOverrides{ChainID: "testnet", GasUnitPrice: 150}, false)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, config.ConfigFilename), path)

	cfg, err := loadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, uint8(protocol.Testnet), cfg.ChainID)
	require.Equal(t, uint64(150), cfg.GasUnitPrice)
	require.Equal(t, config.GetDefaultLocal().MaxGasAmount, cfg.MaxGasAmount)

	_, err = initConfig(dir, configOverrides{ChainID: "mainnet"}, false)
	require.ErrorContains(t, err, "already exists")

	_, err = initConfig(dir, configOverrides{ChainID: "mainnet"}, true)
	require.NoError(t, err)
	cfg, err = loadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, uint8(protocol.Mainnet), cfg.ChainID)
	require.Equal(t, config.GetDefaultLocal().GasUnitPrice, cfg.GasUnitPrice)

	_, err = initConfig(dir, configOverrides{ChainID: "nowhere"}, true)
	require.Error(t, err)
}
