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

package libtxs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/EastAgile/0l-txs/crypto"
	"github.com/EastAgile/0l-txs/data/abi"
	"github.com/EastAgile/0l-txs/data/basics"
	"github.com/EastAgile/0l-txs/data/transactions"
	"github.com/EastAgile/0l-txs/logging"
	"github.com/EastAgile/0l-txs/protocol"
)

var errNoChainID = errors.New("no chain id given and none configured")

// EntryFunctionTxRequest describes an entry function transaction in textual form.
// Zero gas values and a zero expiration take the builder's defaults.
type EntryFunctionTxRequest struct {
	// Function is <address>::<module>::<function>.
	Function string
	// TypeArgs is a comma separated list of type tags, e.g. "0x1::aptos_coin::AptosCoin".
	TypeArgs string
	// Args is a comma separated list of Move literals.
	Args string

	Sender         basics.Address
	SequenceNumber uint64

	MaxGasAmount uint64
	GasUnitPrice uint64
	// ExpirationTimestampSecs is an absolute unix time. 0 means now plus the
	// configured expiration window.
	ExpirationTimestampSecs uint64
	ChainID                 protocol.ChainID

	// ABI, when set, types the arguments. Otherwise the builder's ABISource is
	// consulted, and without a known ABI argument types are inferred.
	ABI *abi.FunctionABI
}

// call is the resolved function, type arguments and typed arguments of a request.
type call struct {
	function transactions.FunctionID
	typeArgs []abi.TypeTag
	values   []abi.Value
	fnABI    *abi.FunctionABI
}

// lookupABI returns the declared ABI of function, or nil if none is known.
func (b *Builder) lookupABI(ctx context.Context, function transactions.FunctionID) (*abi.FunctionABI, error) {
	if b.abis == nil {
		return nil, nil
	}
	module, err := b.abis.ModuleABI(ctx, function.Module)
	if err != nil {
		if errors.Is(err, ErrABINotFound) {
			b.log.With("module", function.Module.String()).Debug("no ABI for module, inferring argument types")
			return nil, nil
		}
		return nil, err
	}
	fn, err := module.Function(function.Function)
	if err != nil {
		return nil, err
	}
	return &fn, nil
}

func (b *Builder) resolveCall(ctx context.Context, function, typeArgs, args string, fnABI *abi.FunctionABI) (call, error) {
	id, err := transactions.ParseFunctionID(function)
	if err != nil {
		return call{}, err
	}
	tags, err := abi.ParseTypeTags(typeArgs)
	if err != nil {
		return call{}, err
	}

	if fnABI == nil {
		fnABI, err = b.lookupABI(ctx, id)
		if err != nil {
			return call{}, fmt.Errorf("%s: %w", id, err)
		}
	}

	var values []abi.Value
	if fnABI != nil {
		values, err = fnABI.ResolveArgs(args, tags)
	} else {
		values, err = abi.ParseArgs(args, nil)
	}
	if err != nil {
		return call{}, err
	}
	return call{function: id, typeArgs: tags, values: values, fnABI: fnABI}, nil
}

func (c call) entryFunction() (transactions.EntryFunction, error) {
	encoded, err := abi.EncodeArgs(c.values)
	if err != nil {
		return transactions.EntryFunction{}, err
	}
	return transactions.EntryFunction{
		Module:   c.function.Module,
		Function: c.function.Function,
		TypeArgs: c.typeArgs,
		Args:     encoded,
	}, nil
}

// MakeUnsignedEntryFunctionTx assembles a raw transaction calling an entry function.
// Argument count and types are checked against the ABI before anything is returned;
// no node is contacted beyond the ABISource.
func (b *Builder) MakeUnsignedEntryFunctionTx(ctx context.Context, req EntryFunctionTxRequest) (transactions.RawTransaction, error) {
	c, err := b.resolveCall(ctx, req.Function, req.TypeArgs, req.Args, req.ABI)
	if err != nil {
		return transactions.RawTransaction{}, err
	}
	if c.fnABI != nil && !c.fnABI.IsEntry {
		return transactions.RawTransaction{}, fmt.Errorf("%s is not an entry function", c.function)
	}
	ef, err := c.entryFunction()
	if err != nil {
		return transactions.RawTransaction{}, err
	}

	chainID, err := b.chainID(req.ChainID)
	if err != nil {
		return transactions.RawTransaction{}, err
	}

	tx := transactions.RawTransaction{
		Sender:                  req.Sender,
		SequenceNumber:          req.SequenceNumber,
		Payload:                 transactions.TransactionPayload{EntryFunction: ef},
		MaxGasAmount:            req.MaxGasAmount,
		GasUnitPrice:            req.GasUnitPrice,
		ExpirationTimestampSecs: req.ExpirationTimestampSecs,
		ChainID:                 chainID,
	}
	if tx.MaxGasAmount == 0 {
		tx.MaxGasAmount = b.cfg.MaxGasAmount
	}
	if tx.GasUnitPrice == 0 {
		tx.GasUnitPrice = b.cfg.GasUnitPrice
	}

	now := b.clock()
	if tx.ExpirationTimestampSecs == 0 {
		tx.ExpirationTimestampSecs = basics.AddSaturate(uint64(now.Unix()), b.cfg.ExpirationWindowSeconds)
	}

	log := b.log.WithFields(logging.Fields{
		"function": c.function.String(),
		"sender":   tx.Sender.String(),
		"sequence": tx.SequenceNumber,
	})
	if tx.Expired(now) {
		log.Warnf("transaction expiration %d (%s) is already in the past", tx.ExpirationTimestampSecs, tx.Expiration().UTC().Format(time.RFC3339))
	}
	if _, ok := tx.MaxFee(); !ok {
		log.Warnf("max fee overflows: %d gas at %d per unit", tx.MaxGasAmount, tx.GasUnitPrice)
	}
	log.Debugf("assembled transaction: %d type args, %d args, max gas %d, gas price %d, expires %d, chain %s",
		len(ef.TypeArgs), len(ef.Args), tx.MaxGasAmount, tx.GasUnitPrice, tx.ExpirationTimestampSecs, tx.ChainID)
	return tx, nil
}

// CoinTransferFunction moves the native coin, creating the receiving account if needed.
const CoinTransferFunction = "0x1::aptos_account::transfer"

// MakeUnsignedCoinTransferTx builds a native coin transfer of amount to receiver. The
// call fields of req are replaced; sender, sequence, gas and chain fields are used as
// MakeUnsignedEntryFunctionTx uses them.
func (b *Builder) MakeUnsignedCoinTransferTx(ctx context.Context, receiver basics.Address, amount uint64, req EntryFunctionTxRequest) (transactions.RawTransaction, error) {
	req.Function = CoinTransferFunction
	req.TypeArgs = ""
	req.Args = fmt.Sprintf("@%s, %du64", receiver.StringLong(), amount)
	req.ABI = nil
	return b.MakeUnsignedEntryFunctionTx(ctx, req)
}

// SignTransaction signs tx with secrets. Accounts may have rotated their key, so a
// sender that differs from the key's derived address is only logged.
func (b *Builder) SignTransaction(tx transactions.RawTransaction, secrets *crypto.SignatureSecrets) (transactions.SignedTransaction, error) {
	stx, err := tx.Sign(secrets)
	if err != nil {
		return transactions.SignedTransaction{}, err
	}
	if derived := stx.SignerAddress(); derived != tx.Sender {
		b.log.With("sender", tx.Sender.String()).Infof("signing key derives address %s, not the sender", derived)
	}
	return stx, nil
}
