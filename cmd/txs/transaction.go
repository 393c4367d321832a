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
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/EastAgile/0l-txs/crypto"
	"github.com/EastAgile/0l-txs/data/basics"
	"github.com/EastAgile/0l-txs/data/transactions"
	"github.com/EastAgile/0l-txs/libtxs"
	"github.com/EastAgile/0l-txs/protocol"
)

var (
	functionID     string
	typeArgs       string
	txnArgs        string
	maxGas         uint64
	gasUnitPrice   uint64
	privateKey     string
	privateKeyFile string
	senderAddress  string
	sequenceNumber uint64
	chainIDFlag    string
	expiration     uint64
	abiFile        string
	outFilename    string
)

func init() {
	addCallFlags(generateTransactionCmd)
	addSigningFlags(generateTransactionCmd)
}

// addSigningFlags registers the flags shared by commands producing a signed transaction.
func addSigningFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(&maxGas, "max-gas", 0, "Maximum gas units the transaction may use (default from config)")
	cmd.Flags().Uint64Var(&gasUnitPrice, "gas-unit-price", 0, "Price per gas unit in octas (default from config)")
	addKeyFlags(cmd)
	cmd.Flags().StringVar(&senderAddress, "sender", "", "Sender address (default: the address derived from the private key)")
	cmd.Flags().Uint64Var(&sequenceNumber, "sequence-number", 0, "Sender's current sequence number")
	cmd.Flags().StringVar(&chainIDFlag, "chain-id", "", "Chain name (mainnet, testnet, devnet, testing) or numeric id (default from config)")
	cmd.Flags().Uint64Var(&expiration, "expiration", 0, "Absolute expiration as unix seconds (default: now plus the configured window)")
	cmd.Flags().StringVarP(&outFilename, "out", "o", "", "Write the signed transaction's BCS bytes to this file (- for stdout); prints the JSON rendering otherwise")
}

// addCallFlags registers the flags naming a function call, shared by transactions and views.
func addCallFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&functionID, "function-id", "f", "", "Function to call, <address>::<module>::<function>")
	cmd.Flags().StringVarP(&typeArgs, "type-args", "t", "", "Comma separated type arguments, e.g. 0x1::aptos_coin::AptosCoin")
	cmd.Flags().StringVarP(&txnArgs, "args", "a", "", "Comma separated Move literals, e.g. '@0x1, 100u64, b\"memo\"'")
	cmd.Flags().StringVar(&abiFile, "abi", "", "Module ABI JSON document typing the arguments (default: the configured abi directory)")
	cmd.MarkFlagRequired("function-id")
}

func addKeyFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&privateKey, "private-key", "", "Hex encoded ed25519 private key")
	cmd.Flags().StringVar(&privateKeyFile, "private-key-file", "", "File holding a hex encoded ed25519 private key")
}

// loadSecrets reads the signing key from exactly one of the key flags.
func loadSecrets(key, keyFile string) (*crypto.SignatureSecrets, error) {
	switch {
	case key != "" && keyFile == "":
		return crypto.ParsePrivateKey(key)
	case key == "" && keyFile != "":
		return crypto.LoadPrivateKeyFile(keyFile)
	}
	return nil, errors.New(errorKeyFlags)
}

// resolveSender returns the explicit sender, or the address derived from secrets.
func resolveSender(sender string, secrets *crypto.SignatureSecrets) (basics.Address, error) {
	if sender == "" {
		return crypto.AuthenticationKey(secrets.SignatureVerifier), nil
	}
	return basics.ParseAddress(sender)
}

func parseChainFlag(s string) (protocol.ChainID, error) {
	if s == "" {
		return 0, nil
	}
	return protocol.ParseChainID(s)
}

// signEntryFunctionTx assembles and signs req.
func signEntryFunctionTx(ctx context.Context, b *libtxs.Builder, req libtxs.EntryFunctionTxRequest, secrets *crypto.SignatureSecrets) (transactions.SignedTransaction, error) {
	tx, err := b.MakeUnsignedEntryFunctionTx(ctx, req)
	if err != nil {
		return transactions.SignedTransaction{}, err
	}
	return signRawTx(b, tx, secrets)
}

func signRawTx(b *libtxs.Builder, tx transactions.RawTransaction, secrets *crypto.SignatureSecrets) (transactions.SignedTransaction, error) {
	stx, err := b.SignTransaction(tx, secrets)
	if err != nil {
		return transactions.SignedTransaction{}, fmt.Errorf("signing: %w", err)
	}
	return stx, nil
}

// signingRequest collects the key, sender and chain flags. The call fields are left
// for the caller.
func signingRequest() (libtxs.EntryFunctionTxRequest, *crypto.SignatureSecrets) {
	secrets, err := loadSecrets(privateKey, privateKeyFile)
	if err != nil {
		reportErrorf(errorLoadKey, err)
	}
	sender, err := resolveSender(senderAddress, secrets)
	if err != nil {
		reportErrorf(errorParseAddress, senderAddress, err)
	}
	if derived := crypto.AuthenticationKey(secrets.SignatureVerifier); derived != sender {
		reportWarnf(warnSenderMismatch, sender, derived)
	}
	chainID, err := parseChainFlag(chainIDFlag)
	if err != nil {
		reportErrorf(errorParseChainID, err)
	}
	return libtxs.EntryFunctionTxRequest{
		Sender:                  sender,
		SequenceNumber:          sequenceNumber,
		MaxGasAmount:            maxGas,
		GasUnitPrice:            gasUnitPrice,
		ExpirationTimestampSecs: expiration,
		ChainID:                 chainID,
	}, secrets
}

// outputSignedTxn prints the JSON rendering of stx, or writes its BCS bytes to out.
func outputSignedTxn(stx transactions.SignedTransaction, out string) {
	if out == "" {
		rendered, err := stx.Render()
		if err != nil {
			reportErrorf(errorRenderTxn, err)
		}
		if err := writeJSON(os.Stdout, &rendered); err != nil {
			reportErrorf(errorRenderTxn, err)
		}
		return
	}

	encoded, err := stx.Encode()
	if err != nil {
		reportErrorf(errorRenderTxn, err)
	}
	if err := writeFile(out, encoded, 0600); err != nil {
		reportErrorf(errorWriteFile, out, err)
	}
	if out != stdoutFilenameValue {
		hash, err := stx.Hash()
		if err != nil {
			reportErrorf(errorRenderTxn, err)
		}
		reportInfof(infoTxnWritten, hash, out)
	}
}

var generateTransactionCmd = &cobra.Command{
	Use:   "generate-transaction",
	Short: "Build and sign an entry function transaction",
	Long:  `Build an entry function transaction from a function id, type arguments and Move literals, sign it with an ed25519 key, and write the BCS bytes or print a JSON rendering. Arguments are typed by the module ABI when one is available, and inferred from the literals otherwise.`,
	Args:  validateNoPosArgsFn,
	Run: func(cmd *cobra.Command, _ []string) {
		cfg := ensureConfig()
		b := ensureBuilder(cfg, abiFile)

		req, secrets := signingRequest()
		req.Function = functionID
		req.TypeArgs = typeArgs
		req.Args = txnArgs
		stx, err := signEntryFunctionTx(context.Background(), b, req, secrets)
		if err != nil {
			reportErrorf(errorBuildTransaction, err)
		}
		outputSignedTxn(stx, outFilename)
	},
}

// encodeHex renders bytes as 0x-prefixed hex.
func encodeHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}
