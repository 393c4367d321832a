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

	"github.com/spf13/cobra"

	"github.com/EastAgile/0l-txs/crypto"
	"github.com/EastAgile/0l-txs/data/basics"
	"github.com/EastAgile/0l-txs/data/transactions"
	"github.com/EastAgile/0l-txs/libtxs"
)

var (
	transferTo     string
	transferAmount uint64
)

func init() {
	transferCoinsCmd.Flags().StringVarP(&transferTo, "to-account", "t", "", "Address of the recipient")
	transferCoinsCmd.Flags().Uint64VarP(&transferAmount, "amount", "a", 0, "Amount of coins to transfer, in octas")
	addSigningFlags(transferCoinsCmd)
	transferCoinsCmd.MarkFlagRequired("to-account")
	transferCoinsCmd.MarkFlagRequired("amount")
}

// signCoinTransferTx builds and signs a transfer of amount to receiver.
func signCoinTransferTx(ctx context.Context, b *libtxs.Builder, receiver basics.Address, amount uint64, req libtxs.EntryFunctionTxRequest, secrets *crypto.SignatureSecrets) (transactions.SignedTransaction, error) {
	tx, err := b.MakeUnsignedCoinTransferTx(ctx, receiver, amount, req)
	if err != nil {
		return transactions.SignedTransaction{}, err
	}
	return signRawTx(b, tx, secrets)
}

var transferCoinsCmd = &cobra.Command{
	Use:   "transfer-coins",
	Short: "Build and sign a coin transfer",
	Long:  `Build a transfer of the native coin to another account, sign it with an ed25519 key, and write the BCS bytes or print a JSON rendering. The transaction calls ` + libtxs.CoinTransferFunction + `.`,
	Args:  validateNoPosArgsFn,
	Run: func(cmd *cobra.Command, _ []string) {
		cfg := ensureConfig()
		b := ensureBuilder(cfg, "")

		receiver, err := basics.ParseAddress(transferTo)
		if err != nil {
			reportErrorf(errorParseAddress, transferTo, err)
		}
		req, secrets := signingRequest()
		stx, err := signCoinTransferTx(context.Background(), b, receiver, transferAmount, req, secrets)
		if err != nil {
			reportErrorf(errorBuildTransaction, err)
		}
		outputSignedTxn(stx, outFilename)
	},
}
