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
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/fardream/go-bcs/bcs"

	"github.com/EastAgile/0l-txs/crypto"
	"github.com/EastAgile/0l-txs/data/basics"
	"github.com/EastAgile/0l-txs/protocol"
)

// authenticatorEd25519 is the variant index of a single ed25519 key authenticator.
const authenticatorEd25519 = 0

// userTransactionVariant is the variant index of a user transaction among all
// transaction kinds.
const userTransactionVariant = 0

// Authenticator proves the sender authorized a transaction with a single ed25519 key.
type Authenticator struct {
	PublicKey crypto.PublicKey
	Signature crypto.Signature
}

// MarshalBCS encodes the authenticator enum.
func (a Authenticator) MarshalBCS() ([]byte, error) {
	pk, err := a.PublicKey.MarshalBCS()
	if err != nil {
		return nil, err
	}
	sig, err := a.Signature.MarshalBCS()
	if err != nil {
		return nil, err
	}
	res := make([]byte, 0, 1+len(pk)+len(sig))
	res = append(res, authenticatorEd25519)
	res = append(res, pk...)
	return append(res, sig...), nil
}

// SignedTransaction wraps a RawTransaction with the authenticator that signs it.
type SignedTransaction struct {
	Txn           RawTransaction
	Authenticator Authenticator
}

// Encode returns the BCS bytes submitted to a node.
func (s SignedTransaction) Encode() ([]byte, error) {
	return bcs.Marshal(s)
}

// Verify checks the signature against the raw transaction.
func (s SignedTransaction) Verify() error {
	if s.Authenticator.Signature.Blank() {
		return fmt.Errorf("transaction is not signed")
	}
	if _, data := s.Txn.ToBeHashed(); data == nil {
		return fmt.Errorf("cannot encode transaction")
	}
	if !crypto.SignatureVerifier(s.Authenticator.PublicKey).Verify(s.Txn, s.Authenticator.Signature) {
		return SignatureMismatchError{PublicKey: s.Authenticator.PublicKey.String()}
	}
	return nil
}

// SignerAddress is the address derived from the authenticator's public key. It equals
// the sender unless the sender rotated its authentication key.
func (s SignedTransaction) SignerAddress() basics.Address {
	return crypto.AuthenticationKey(s.Authenticator.PublicKey)
}

// ToBeHashed implements the crypto.Hashable interface for the committed transaction.
func (s SignedTransaction) ToBeHashed() (protocol.HashID, []byte) {
	b, err := s.Encode()
	if err != nil {
		return protocol.Transaction, nil
	}
	return protocol.Transaction, append([]byte{userTransactionVariant}, b...)
}

// Hash returns the hash the chain will index the transaction under.
func (s SignedTransaction) Hash() (crypto.Digest, error) {
	return crypto.HashObj(s)
}

// RenderedPayload is the human readable form of an entry function call.
type RenderedPayload struct {
	Type          string   `codec:"type"`
	Function      string   `codec:"function"`
	TypeArguments []string `codec:"type_arguments"`
	Arguments     []string `codec:"arguments"`
}

// RenderedSignature is the human readable form of an Authenticator.
type RenderedSignature struct {
	Type      string `codec:"type"`
	PublicKey string `codec:"public_key"`
	Signature string `codec:"signature"`
}

// RenderedTransaction is the human readable form of a SignedTransaction. Integers are
// decimal strings, as the node's JSON API writes them.
type RenderedTransaction struct {
	Hash                    string            `codec:"hash"`
	Sender                  string            `codec:"sender"`
	SequenceNumber          string            `codec:"sequence_number"`
	MaxGasAmount            string            `codec:"max_gas_amount"`
	GasUnitPrice            string            `codec:"gas_unit_price"`
	ExpirationTimestampSecs string            `codec:"expiration_timestamp_secs"`
	ChainID                 uint8             `codec:"chain_id"`
	Payload                 RenderedPayload   `codec:"payload"`
	Signature               RenderedSignature `codec:"signature"`
	BCS                     string            `codec:"bcs"`
}

// Render builds the human readable form of the transaction.
func (s SignedTransaction) Render() (RenderedTransaction, error) {
	encoded, err := s.Encode()
	if err != nil {
		return RenderedTransaction{}, err
	}
	hash, err := s.Hash()
	if err != nil {
		return RenderedTransaction{}, err
	}
	ef := s.Txn.Payload.EntryFunction
	values, err := ef.DecodeArgs()
	if err != nil {
		return RenderedTransaction{}, err
	}

	payload := RenderedPayload{
		Type:          "entry_function_payload",
		Function:      ef.FunctionID().String(),
		TypeArguments: make([]string, len(ef.TypeArgs)),
		Arguments:     make([]string, len(values)),
	}
	for i, t := range ef.TypeArgs {
		payload.TypeArguments[i] = t.String()
	}
	for i, v := range values {
		payload.Arguments[i] = v.String()
	}

	return RenderedTransaction{
		Hash:                    hash.String(),
		Sender:                  s.Txn.Sender.String(),
		SequenceNumber:          strconv.FormatUint(s.Txn.SequenceNumber, 10),
		MaxGasAmount:            strconv.FormatUint(s.Txn.MaxGasAmount, 10),
		GasUnitPrice:            strconv.FormatUint(s.Txn.GasUnitPrice, 10),
		ExpirationTimestampSecs: strconv.FormatUint(s.Txn.ExpirationTimestampSecs, 10),
		ChainID:                 uint8(s.Txn.ChainID),
		Payload:                 payload,
		Signature: RenderedSignature{
			Type:      "ed25519_signature",
			PublicKey: s.Authenticator.PublicKey.String(),
			Signature: s.Authenticator.Signature.String(),
		},
		BCS: "0x" + hex.EncodeToString(encoded),
	}, nil
}
