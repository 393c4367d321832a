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

const (
	// General
	errorNoPositionalArgs = "This command does not take positional arguments"
	errorConfig           = "Cannot load configuration: %s"
	errorLogFile          = "Cannot open log file %s: %s"
	errorLogLevel         = "Invalid log level %s: %s"
	errorReadABI          = "Cannot read module ABI %s: %s"
	errorWriteFile        = "Cannot write %s: %s"
	errorReadFile         = "Cannot read %s: %s"
	errorConfigExists     = "%s already exists, use --force to overwrite it"
	errorWriteConfig      = "Cannot write configuration: %s"
	infoConfigWritten     = "Configuration written to %s"

	// Keys and accounts
	errorKeyFlags       = "Exactly one of --private-key or --private-key-file is required"
	errorLoadKey        = "Cannot load private key: %s"
	errorParseAddress   = "Cannot parse address %s: %s"
	errorParseChainID   = "Cannot parse chain id: %s"
	infoAccountAddress  = "Account address:    %s"
	infoAuthKey         = "Authentication key: %s"
	infoPublicKey       = "Public key:         %s"
	infoPrivateKeySaved = "Private key written to %s"
	warnPrivateKeyShown = "The private key is printed below; anyone holding it controls the account"

	// Transactions
	errorBuildTransaction = "Cannot build transaction: %s"
	errorRenderTxn        = "Cannot render transaction: %s"
	infoTxnWritten        = "Signed transaction %s written to %s"
	warnSenderMismatch    = "Sender %s does not match the signing key's address %s"

	// View
	errorBuildView  = "Cannot build view call: %s"
	errorDecodeView = "Cannot decode view result: %s"

	// ABI
	infoABIImported       = "Module %s ABI saved to %s"
	infoABIUnchanged      = "Module %s ABI is unchanged"
	errorABIDirectory     = "Cannot prepare ABI directory %s: %s"
	errorABIImportRunning = "Another import into %s is running"
)
