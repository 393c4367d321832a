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

package abi

import (
	"encoding/binary"
	"fmt"

	"github.com/fardream/go-bcs/bcs"
	"github.com/holiman/uint256"

	"github.com/EastAgile/0l-txs/data/basics"
)

// EncodedArg is the BCS encoding of one argument together with the type it was
// encoded against.
type EncodedArg struct {
	Type  TypeTag
	Bytes []byte
}

// MarshalBCS encodes the argument as the length-prefixed byte vector carried in an
// entry function payload.
func (arg EncodedArg) MarshalBCS() ([]byte, error) {
	return appendBytes(nil, arg.Bytes), nil
}

func appendUleb128(dst []byte, n uint64) []byte {
	return binary.AppendUvarint(dst, n)
}

func appendBytes(dst []byte, b []byte) []byte {
	dst = appendUleb128(dst, uint64(len(b)))
	return append(dst, b...)
}

// littleEndian returns the low size bytes of n in little-endian order.
func littleEndian(n *uint256.Int, size int) []byte {
	be := n.Bytes32()
	res := make([]byte, size)
	for i := 0; i < size; i++ {
		res[i] = be[len(be)-1-i]
	}
	return res
}

func maxUintString(bitSize uint16) string {
	if bitSize == 0 {
		return "0"
	}
	// 1<<256 wraps to zero, so the subtraction yields all ones
	max := new(uint256.Int).Lsh(uint256.NewInt(1), uint(bitSize))
	return max.SubUint64(max, 1).Dec()
}

// Encode method serializes the Value into its BCS byte representation.
func (v Value) Encode() ([]byte, error) {
	t := v.ABIType
	switch {
	case t.kind == Bool:
		b, err := v.GetBool()
		if err != nil {
			return nil, err
		}
		return bcs.Marshal(b)
	case t.IsUint():
		n, err := v.GetUint()
		if err != nil {
			return nil, err
		}
		if n.BitLen() > int(t.BitSize()) {
			return nil, &OverflowError{Literal: n.Dec(), Type: t}
		}
		switch t.kind {
		case U8:
			return bcs.Marshal(uint8(n.Uint64()))
		case U16:
			return bcs.Marshal(uint16(n.Uint64()))
		case U32:
			return bcs.Marshal(uint32(n.Uint64()))
		case U64:
			return bcs.Marshal(n.Uint64())
		}
		return littleEndian(n, int(t.BitSize()/8)), nil
	case t.kind == Address, t.IsObject():
		addr, err := v.GetAddress()
		if err != nil {
			return nil, err
		}
		return bcs.Marshal(addr)
	case t.IsBytes():
		b, err := v.GetBytes()
		if err != nil {
			return nil, err
		}
		return appendBytes(nil, b), nil
	case t.IsString():
		s, err := v.GetString()
		if err != nil {
			return nil, err
		}
		return appendBytes(nil, []byte(s)), nil
	case t.kind == Vector, t.IsOption():
		elems, err := v.GetElems()
		if err != nil {
			return nil, err
		}
		res := appendUleb128(nil, uint64(len(elems)))
		for _, elem := range elems {
			encoded, err := elem.Encode()
			if err != nil {
				return nil, err
			}
			res = append(res, encoded...)
		}
		return res, nil
	}
	return nil, fmt.Errorf("cannot encode a value of type %s", t)
}

// EncodeArgs encodes each value in order.
func EncodeArgs(values []Value) ([]EncodedArg, error) {
	res := make([]EncodedArg, len(values))
	for i, v := range values {
		b, err := v.Encode()
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		res[i] = EncodedArg{Type: v.ABIType, Bytes: b}
	}
	return res, nil
}

// MarshalBCS encodes the type as the TypeTag enum. Generic placeholders have no wire
// form.
func (t TypeTag) MarshalBCS() ([]byte, error) {
	res := appendUleb128(nil, uint64(t.kind))
	switch t.kind {
	case Generic:
		return nil, fmt.Errorf("type %s is not instantiated", t)
	case Vector:
		elem, err := t.Elem().MarshalBCS()
		if err != nil {
			return nil, err
		}
		return append(res, elem...), nil
	case Struct:
		tag, err := bcs.Marshal(structTag{
			Address:    t.address,
			Module:     t.module,
			Name:       t.name,
			TypeParams: t.childTypes,
		})
		if err != nil {
			return nil, err
		}
		return append(res, tag...), nil
	}
	return res, nil
}

type structTag struct {
	Address    basics.Address
	Module     string
	Name       string
	TypeParams []TypeTag
}
