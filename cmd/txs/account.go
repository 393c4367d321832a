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
	"encoding/hex"

	"github.com/spf13/cobra"

	"github.com/EastAgile/0l-txs/crypto"
)

var (
	accountKeyOut  string
	accountShowKey bool
)

func init() {
	addKeyFlags(generateLocalAccountCmd)
	generateLocalAccountCmd.Flags().StringVarP(&accountKeyOut, "out", "o", "", "Write a newly generated private key to this file")
	generateLocalAccountCmd.Flags().BoolVar(&accountShowKey, "show-private-key", false, "Print a newly generated private key")
}

// localAccount is the public identity of a signing key.
type localAccount struct {
	Address   string
	AuthKey   string
	PublicKey string
}

func describeAccount(secrets *crypto.SignatureSecrets) localAccount {
	authKey := crypto.AuthenticationKey(secrets.SignatureVerifier)
	return localAccount{
		Address:   authKey.String(),
		AuthKey:   authKey.StringLong(),
		PublicKey: secrets.SignatureVerifier.String(),
	}
}

func encodePrivateKey(secrets *crypto.SignatureSecrets) string {
	seed := secrets.Seed()
	return "0x" + hex.EncodeToString(seed[:])
}

var generateLocalAccountCmd = &cobra.Command{
	Use:   "generate-local-account",
	Short: "Derive an account address from a private key, or generate a new key",
	Long:  `Derive the account address and authentication key of an ed25519 private key. Without a key, generate a new one; it is only shown with --show-private-key or saved with --out.`,
	Args:  validateNoPosArgsFn,
	Run: func(cmd *cobra.Command, _ []string) {
		var secrets *crypto.SignatureSecrets
		generated := privateKey == "" && privateKeyFile == ""
		if generated {
			secrets = crypto.GenerateNewSignatureSecrets()
		} else {
			var err error
			secrets, err = loadSecrets(privateKey, privateKeyFile)
			if err != nil {
				reportErrorf(errorLoadKey, err)
			}
		}

		account := describeAccount(secrets)
		reportInfof(infoAccountAddress, account.Address)
		reportInfof(infoAuthKey, account.AuthKey)
		reportInfof(infoPublicKey, account.PublicKey)

		if !generated {
			return
		}
		if accountKeyOut != "" {
			if err := writeFile(accountKeyOut, []byte(encodePrivateKey(secrets)+"\n"), 0600); err != nil {
				reportErrorf(errorWriteFile, accountKeyOut, err)
			}
			if accountKeyOut != stdoutFilenameValue {
				reportInfof(infoPrivateKeySaved, accountKeyOut)
			}
		}
		if accountShowKey {
			reportWarnf(warnPrivateKeyShown)
			reportInfoln(encodePrivateKey(secrets))
		}
	},
}
