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
	"fmt"
	"unicode/utf8"

	"github.com/holiman/uint256"

	"github.com/EastAgile/0l-txs/data/basics"
)

// Value holds a TypeTag together with a Go representation of a value of that type.
//
// Representations: bool for Bool, *uint256.Int for every unsigned integer width,
// basics.Address for Address and Object, []byte for vector<u8>, string for String,
// []Value for other vectors and for Option (zero or one element).
type Value struct {
	ABIType TypeTag
	value   interface{}
}

// MakeBool makes a `bool` Value.
func MakeBool(value bool) Value {
	return Value{ABIType: MakeBoolType(), value: value}
}

// MakeUint8 takes a go `uint8` and gives a Value of type `u8`.
func MakeUint8(value uint8) Value {
	return Value{ABIType: TypeTag{kind: U8}, value: uint256.NewInt(uint64(value))}
}

// MakeUint16 takes a go `uint16` and gives a Value of type `u16`.
func MakeUint16(value uint16) Value {
	return Value{ABIType: TypeTag{kind: U16}, value: uint256.NewInt(uint64(value))}
}

// MakeUint32 takes a go `uint32` and gives a Value of type `u32`.
func MakeUint32(value uint32) Value {
	return Value{ABIType: TypeTag{kind: U32}, value: uint256.NewInt(uint64(value))}
}

// MakeUint64 takes a go `uint64` and gives a Value of type `u64`.
func MakeUint64(value uint64) Value {
	return Value{ABIType: TypeTag{kind: U64}, value: uint256.NewInt(value)}
}

// MakeUint takes a 256-bit integer and a bit width, and returns a Value of the
// unsigned integer type of that width. Values that do not fit give an OverflowError.
func MakeUint(value *uint256.Int, bitSize uint16) (Value, error) {
	typeUint, err := MakeUintType(bitSize)
	if err != nil {
		return Value{}, err
	}
	if value.BitLen() > int(bitSize) {
		return Value{}, &OverflowError{Literal: value.Dec(), Type: typeUint}
	}
	return Value{ABIType: typeUint, value: new(uint256.Int).Set(value)}, nil
}

// MakeAddress makes an `address` Value.
func MakeAddress(value basics.Address) Value {
	return Value{ABIType: MakeAddressType(), value: value}
}

// MakeObject makes an `0x1::object::Object<elem>` Value, which is represented by
// the object address.
func MakeObject(value basics.Address, elem TypeTag) Value {
	return Value{ABIType: MakeObjectType(elem), value: value}
}

// MakeBytes makes a `vector<u8>` Value.
func MakeBytes(value []byte) Value {
	b := make([]byte, len(value))
	copy(b, value)
	return Value{ABIType: MakeVectorType(TypeTag{kind: U8}), value: b}
}

// MakeString makes a `0x1::string::String` Value. The string must be valid UTF-8.
func MakeString(value string) (Value, error) {
	if !utf8.ValidString(value) {
		return Value{}, fmt.Errorf("string %q is not valid UTF-8", value)
	}
	return Value{ABIType: MakeStringType(), value: value}, nil
}

// MakeVector takes a list of Values (can be empty) and the element type, and returns
// a `vector<elemType>` Value. Every element must have exactly elemType.
func MakeVector(values []Value, elemType TypeTag) (Value, error) {
	if elemType.kind == U8 {
		b := make([]byte, len(values))
		for i, v := range values {
			n, err := v.GetUint64()
			if err != nil || v.ABIType.kind != U8 {
				return Value{}, fmt.Errorf("vector<u8> element %d has type %s", i, v.ABIType)
			}
			b[i] = byte(n)
		}
		return MakeBytes(b), nil
	}
	elems := make([]Value, len(values))
	for i, v := range values {
		if !v.ABIType.Equal(elemType) {
			return Value{}, fmt.Errorf("vector<%s> element %d has type %s", elemType, i, v.ABIType)
		}
		elems[i] = v
	}
	return Value{ABIType: MakeVectorType(elemType), value: elems}, nil
}

// MakeOption makes an `0x1::option::Option<elemType>` Value. A nil inner value is None.
func MakeOption(inner *Value, elemType TypeTag) (Value, error) {
	if inner == nil {
		return Value{ABIType: MakeOptionType(elemType), value: []Value{}}, nil
	}
	if !inner.ABIType.Equal(elemType) {
		return Value{}, fmt.Errorf("option<%s> value has type %s", elemType, inner.ABIType)
	}
	return Value{ABIType: MakeOptionType(elemType), value: []Value{*inner}}, nil
}

// GetBool tries to retrieve a bool from the Value.
func (v Value) GetBool() (bool, error) {
	b, ok := v.value.(bool)
	if !ok || v.ABIType.kind != Bool {
		return false, fmt.Errorf("value of type %s is not a bool", v.ABIType)
	}
	return b, nil
}

// GetUint tries to retrieve an unsigned integer of any width from the Value.
func (v Value) GetUint() (*uint256.Int, error) {
	n, ok := v.value.(*uint256.Int)
	if !ok || !v.ABIType.IsUint() {
		return nil, fmt.Errorf("value of type %s is not an unsigned integer", v.ABIType)
	}
	return new(uint256.Int).Set(n), nil
}

// GetUint64 tries to retrieve an unsigned integer that fits in 64 bits.
func (v Value) GetUint64() (uint64, error) {
	n, err := v.GetUint()
	if err != nil {
		return 0, err
	}
	if !n.IsUint64() {
		return 0, fmt.Errorf("value %s does not fit in 64 bits", n.Dec())
	}
	return n.Uint64(), nil
}

// GetAddress tries to retrieve an address from an `address` or Object Value.
func (v Value) GetAddress() (basics.Address, error) {
	addr, ok := v.value.(basics.Address)
	if !ok {
		return basics.Address{}, fmt.Errorf("value of type %s is not an address", v.ABIType)
	}
	return addr, nil
}

// GetBytes tries to retrieve the contents of a `vector<u8>` Value.
func (v Value) GetBytes() ([]byte, error) {
	b, ok := v.value.([]byte)
	if !ok {
		return nil, fmt.Errorf("value of type %s is not a byte vector", v.ABIType)
	}
	res := make([]byte, len(b))
	copy(res, b)
	return res, nil
}

// GetString tries to retrieve a string from a String Value.
func (v Value) GetString() (string, error) {
	s, ok := v.value.(string)
	if !ok {
		return "", fmt.Errorf("value of type %s is not a string", v.ABIType)
	}
	return s, nil
}

// GetElems tries to retrieve the elements of a vector or Option Value. A `vector<u8>`
// yields one u8 Value per byte.
func (v Value) GetElems() ([]Value, error) {
	switch elems := v.value.(type) {
	case []Value:
		return elems, nil
	case []byte:
		res := make([]Value, len(elems))
		for i, b := range elems {
			res[i] = MakeUint8(b)
		}
		return res, nil
	}
	return nil, fmt.Errorf("value of type %s is not a vector", v.ABIType)
}
