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
	"encoding/hex"
	"math/big"
	"unicode/utf8"

	"github.com/holiman/uint256"

	"github.com/EastAgile/0l-txs/data/basics"
)

// Resolve gives the literal a type. The declared type wins over the default
// interpretation of an unsuffixed literal. A width suffix that contradicts the
// declared type is a *ParseError. Values outside the width give an *OverflowError.
func (lit Literal) Resolve(t TypeTag) (Value, error) {
	switch {
	case t.kind == Signer:
		return Value{}, makeParseErrorf(lit.Text, "signer arguments cannot be passed as literals")
	case t.kind == Generic:
		return Value{}, makeParseErrorf(lit.Text, "type %s is not instantiated", t)
	case t.kind == Bool:
		if lit.Kind != BoolLiteral {
			return Value{}, lit.mismatch(t)
		}
		return MakeBool(lit.Bool), nil
	case t.IsUint():
		return lit.resolveUint(t)
	case t.kind == Address:
		addr, err := lit.resolveAddress(t)
		if err != nil {
			return Value{}, err
		}
		return MakeAddress(addr), nil
	case t.IsObject():
		addr, err := lit.resolveAddress(t)
		if err != nil {
			return Value{}, err
		}
		return MakeObject(addr, t.Elem()), nil
	case t.IsBytes():
		return lit.resolveBytes(t)
	case t.kind == Vector:
		if lit.Kind != VectorLiteral {
			return Value{}, lit.mismatch(t)
		}
		elems, err := resolveElems(lit.Elems, t.Elem())
		if err != nil {
			return Value{}, err
		}
		return MakeVector(elems, t.Elem())
	case t.IsString():
		if lit.Kind != StringLiteral && lit.Kind != BytesLiteral {
			return Value{}, lit.mismatch(t)
		}
		if !utf8.Valid(lit.Bytes) {
			return Value{}, makeParseErrorf(lit.Text, "string is not valid UTF-8")
		}
		return MakeString(string(lit.Bytes))
	case t.IsOption():
		if lit.Kind != VectorLiteral {
			return Value{}, lit.mismatch(t)
		}
		if len(lit.Elems) > 1 {
			return Value{}, makeParseErrorf(lit.Text, "option takes at most one element, got %d", len(lit.Elems))
		}
		if len(lit.Elems) == 0 {
			return MakeOption(nil, t.Elem())
		}
		inner, err := lit.Elems[0].Resolve(t.Elem())
		if err != nil {
			return Value{}, err
		}
		return MakeOption(&inner, t.Elem())
	}
	return Value{}, makeParseErrorf(lit.Text, "values of type %s cannot be written as literals", t)
}

func (lit Literal) mismatch(t TypeTag) *ParseError {
	return makeParseErrorf(lit.Text, "%s literal cannot be used as %s", lit.Kind, t)
}

func (lit Literal) resolveUint(t TypeTag) (Value, error) {
	if lit.Kind != NumberLiteral && lit.Kind != HexLiteral {
		return Value{}, lit.mismatch(t)
	}
	if lit.HasSuffix && !lit.Suffix.Equal(t) {
		return Value{}, makeParseErrorf(lit.Text, "suffix %s contradicts declared type %s", lit.Suffix, t)
	}
	n, err := lit.uint256()
	if err != nil {
		return Value{}, err
	}
	if n == nil || n.BitLen() > int(t.BitSize()) {
		return Value{}, &OverflowError{Literal: lit.Text, Type: t}
	}
	return MakeUint(n, t.BitSize())
}

// uint256 returns the numeric value of a Number or Hex literal, or nil when it does
// not fit in 256 bits.
func (lit Literal) uint256() (*uint256.Int, error) {
	if lit.Base == 10 {
		n, err := uint256.FromDecimal(lit.Digits)
		if err != nil {
			// digits were validated by the parser, only the range can fail here
			return nil, nil
		}
		return n, nil
	}
	b, ok := new(big.Int).SetString(lit.Digits, 16)
	if !ok {
		return nil, makeParseErrorf(lit.Text, "malformed hex number")
	}
	n, overflow := uint256.FromBig(b)
	if overflow {
		return nil, nil
	}
	return n, nil
}

func (lit Literal) resolveAddress(t TypeTag) (basics.Address, error) {
	switch lit.Kind {
	case AddressLiteral:
		return lit.Address, nil
	case HexLiteral:
		addr, err := basics.ParseAddress("0x" + lit.Digits)
		if err != nil {
			return basics.Address{}, makeParseErrorf(lit.Text, "%v", err)
		}
		return addr, nil
	}
	return basics.Address{}, lit.mismatch(t)
}

func (lit Literal) resolveBytes(t TypeTag) (Value, error) {
	switch lit.Kind {
	case BytesLiteral:
		return MakeBytes(lit.Bytes), nil
	case HexLiteral:
		b, err := hex.DecodeString(lit.Digits)
		if err != nil {
			return Value{}, makeParseErrorf(lit.Text, "malformed hex: %v", err)
		}
		return MakeBytes(b), nil
	case VectorLiteral:
		elems, err := resolveElems(lit.Elems, t.Elem())
		if err != nil {
			return Value{}, err
		}
		return MakeVector(elems, t.Elem())
	}
	return Value{}, lit.mismatch(t)
}

func resolveElems(lits []Literal, elemType TypeTag) ([]Value, error) {
	res := make([]Value, len(lits))
	for i, elem := range lits {
		v, err := elem.Resolve(elemType)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

// ResolveAll resolves literals positionally against the declared parameter types.
// The counts must match.
func ResolveAll(lits []Literal, types []TypeTag) ([]Value, error) {
	if len(lits) != len(types) {
		return nil, &ArityMismatchError{What: "arguments", Expected: len(types), Actual: len(lits)}
	}
	res := make([]Value, len(lits))
	for i := range lits {
		v, err := lits[i].Resolve(types[i])
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

// InferType gives the type a literal takes when no declaration is known.
// Unsuffixed numbers are u64 and unsuffixed 0x.. tokens are addresses.
func InferType(lit Literal) (TypeTag, error) {
	switch lit.Kind {
	case NumberLiteral:
		if lit.HasSuffix {
			return lit.Suffix, nil
		}
		return TypeTag{kind: U64}, nil
	case HexLiteral, AddressLiteral:
		return MakeAddressType(), nil
	case BoolLiteral:
		return MakeBoolType(), nil
	case BytesLiteral:
		return MakeVectorType(TypeTag{kind: U8}), nil
	case StringLiteral:
		return MakeStringType(), nil
	case VectorLiteral:
		if len(lit.Elems) == 0 {
			return TypeTag{}, makeParseErrorf(lit.Text, "cannot infer the element type of an empty vector")
		}
		elemType, err := InferType(lit.Elems[0])
		if err != nil {
			return TypeTag{}, err
		}
		for _, elem := range lit.Elems[1:] {
			t, err := InferType(elem)
			if err != nil {
				return TypeTag{}, err
			}
			if !t.Equal(elemType) {
				return TypeTag{}, makeParseErrorf(lit.Text, "vector mixes %s and %s elements", elemType, t)
			}
		}
		return MakeVectorType(elemType), nil
	}
	return TypeTag{}, makeParseErrorf(lit.Text, "cannot infer type")
}

// InferTypes gives the default type of every literal.
func InferTypes(lits []Literal) ([]TypeTag, error) {
	res := make([]TypeTag, len(lits))
	for i, lit := range lits {
		t, err := InferType(lit)
		if err != nil {
			return nil, err
		}
		res[i] = t
	}
	return res, nil
}

// ParseArgs parses an argument string and resolves it. With nil types every literal
// takes its inferred type.
func ParseArgs(str string, types []TypeTag) ([]Value, error) {
	lits, err := ParseLiterals(str)
	if err != nil {
		return nil, err
	}
	if types == nil {
		types, err = InferTypes(lits)
		if err != nil {
			return nil, err
		}
	}
	return ResolveAll(lits, types)
}
