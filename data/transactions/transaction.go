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

package transactions

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/fardream/go-bcs/bcs"

	"github.com/EastAgile/0l-txs/crypto"
	"github.com/EastAgile/0l-txs/data/abi"
	"github.com/EastAgile/0l-txs/data/basics"
	"github.com/EastAgile/0l-txs/protocol"
)

// PayloadType is the variant index of a transaction payload on the wire.
type PayloadType uint8

// EntryFunctionPayload calls a published entry function. Variants 0 and 1 are
// scripts and module bundles, which are never produced.
const EntryFunctionPayload PayloadType = 2

// EntryFunction is a call to a published entry function. It is also the layout of a
// view call.
type EntryFunction struct {
	Module   ModuleID
	Function string
	TypeArgs []abi.TypeTag
	Args     []abi.EncodedArg
}

// FunctionID returns the fully qualified function being called.
func (ef EntryFunction) FunctionID() FunctionID {
	return FunctionID{Module: ef.Module, Function: ef.Function}
}

// DecodeArgs recovers the typed argument values from their encodings.
func (ef EntryFunction) DecodeArgs() ([]abi.Value, error) {
	res := make([]abi.Value, len(ef.Args))
	for i, arg := range ef.Args {
		v, err := abi.DecodeValue(arg.Bytes, arg.Type)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		res[i] = v
	}
	return res, nil
}

// TransactionPayload is the body of a transaction. Only entry function calls are
// supported.
type TransactionPayload struct {
	EntryFunction EntryFunction
}

// MarshalBCS encodes the payload enum.
func (p TransactionPayload) MarshalBCS() ([]byte, error) {
	body, err := bcs.Marshal(p.EntryFunction)
	if err != nil {
		return nil, err
	}
	return append(binary.AppendUvarint(nil, uint64(EntryFunctionPayload)), body...), nil
}

// RawTransaction is the unsigned transaction a sender authorizes.
type RawTransaction struct {
	Sender                  basics.Address
	SequenceNumber          uint64
	Payload                 TransactionPayload
	MaxGasAmount            uint64
	GasUnitPrice            uint64
	ExpirationTimestampSecs uint64
	ChainID                 protocol.ChainID
}

// Encode returns the BCS bytes of the transaction.
func (tx RawTransaction) Encode() ([]byte, error) {
	return bcs.Marshal(tx)
}

// ToBeHashed implements the crypto.Hashable interface. An encoding failure yields nil
// data, which crypto.HashRep reports as an error.
func (tx RawTransaction) ToBeHashed() (protocol.HashID, []byte) {
	b, err := tx.Encode()
	if err != nil {
		return protocol.RawTransaction, nil
	}
	return protocol.RawTransaction, b
}

// SigningMessage returns the bytes an authenticator signs: the hashed domain
// separator followed by the BCS encoding.
func (tx RawTransaction) SigningMessage() ([]byte, error) {
	return crypto.HashRep(tx)
}

// Expiration returns the expiration timestamp as a time.
func (tx RawTransaction) Expiration() time.Time {
	return time.Unix(int64(tx.ExpirationTimestampSecs), 0)
}

// Expired reports whether the transaction can no longer be included at time now.
func (tx RawTransaction) Expired(now time.Time) bool {
	return uint64(now.Unix()) >= tx.ExpirationTimestampSecs
}

// MaxFee is the most the sender can be charged, in octas.
func (tx RawTransaction) MaxFee() (uint64, bool) {
	fee, overflowed := basics.OMul(tx.MaxGasAmount, tx.GasUnitPrice)
	return fee, !overflowed
}

// Sign signs the transaction with the given secrets. The secrets need not belong to
// the sender: an account whose authentication key was rotated signs with its current
// key.
func (tx RawTransaction) Sign(secrets *crypto.SignatureSecrets) (SignedTransaction, error) {
	sig, err := secrets.Sign(tx)
	if err != nil {
		return SignedTransaction{}, err
	}
	return SignedTransaction{
		Txn: tx,
		Authenticator: Authenticator{
			PublicKey: secrets.SignatureVerifier,
			Signature: sig,
		},
	}, nil
}
