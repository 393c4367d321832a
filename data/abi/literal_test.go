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
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EastAgile/0l-txs/data/basics"
	"github.com/EastAgile/0l-txs/test/partitiontest"
)

func TestParseLiteralsMixed(t *testing.T) {
	partitiontest.PartitionTest(t)

	lits, err := ParseLiterals(`0x1, true, 12, 24_u8, x"123456"`)
	require.NoError(t, err)
	require.Len(t, lits, 5)
	require.Equal(t, HexLiteral, lits[0].Kind)
	require.Equal(t, BoolLiteral, lits[1].Kind)
	require.True(t, lits[1].Bool)
	require.Equal(t, NumberLiteral, lits[2].Kind)
	require.False(t, lits[2].HasSuffix)
	require.Equal(t, "12", lits[2].Digits)
	require.True(t, lits[3].HasSuffix)
	require.Equal(t, U8, lits[3].Suffix.Kind())
	require.Equal(t, BytesLiteral, lits[4].Kind)
	require.Equal(t, []byte{0x12, 0x34, 0x56}, lits[4].Bytes)

	types, err := InferTypes(lits)
	require.NoError(t, err)
	names := make([]string, len(types))
	for i := range types {
		names[i] = types[i].String()
	}
	require.Equal(t, []string{"address", "bool", "u64", "u8", "vector<u8>"}, names)

	values, err := ResolveAll(lits, types)
	require.NoError(t, err)
	addr, err := values[0].GetAddress()
	require.NoError(t, err)
	require.Equal(t, basics.CoreCodeAddress, addr)
}

func TestParseLiteralsEmpty(t *testing.T) {
	partitiontest.PartitionTest(t)

	lits, err := ParseLiterals("")
	require.NoError(t, err)
	require.Empty(t, lits)
}

func TestParseLiteralForms(t *testing.T) {
	partitiontest.PartitionTest(t)

	lit, err := ParseLiteral("1_000_000u64")
	require.NoError(t, err)
	require.Equal(t, "1000000", lit.Digits)
	require.Equal(t, U64, lit.Suffix.Kind())

	lit, err = ParseLiteral("0xffu8")
	require.NoError(t, err)
	require.Equal(t, NumberLiteral, lit.Kind)
	require.Equal(t, 16, lit.Base)
	require.Equal(t, "ff", lit.Digits)

	lit, err = ParseLiteral("@0xcafe")
	require.NoError(t, err)
	require.Equal(t, AddressLiteral, lit.Kind)
	require.Equal(t, byte(0xfe), lit.Address[31])

	lit, err = ParseLiteral(`b"hi, \"there\""`)
	require.NoError(t, err)
	require.Equal(t, BytesLiteral, lit.Kind)
	require.Equal(t, `hi, "there"`, string(lit.Bytes))

	lit, err = ParseLiteral(`"héllo"`)
	require.NoError(t, err)
	require.Equal(t, StringLiteral, lit.Kind)
	require.Equal(t, "héllo", string(lit.Bytes))

	lit, err = ParseLiteral(`vector[[1, 2], [], ["a,b"]]`)
	require.NoError(t, err)
	require.Equal(t, VectorLiteral, lit.Kind)
	require.Len(t, lit.Elems, 3)
	require.Len(t, lit.Elems[0].Elems, 2)
	require.Empty(t, lit.Elems[1].Elems)
	require.Equal(t, "a,b", string(lit.Elems[2].Elems[0].Bytes))
}

func TestParseLiteralErrors(t *testing.T) {
	partitiontest.PartitionTest(t)

	for _, s := range []string{
		`x"123"`,
		`x"zz"`,
		`x"12`,
		`"abc`,
		`[1, 2`,
		`1, 2]`,
		`[1,,2]`,
		`12abc`,
		`12_u7`,
		`1__0`,
		`_1`,
		`1_`,
		`0x`,
		`0xg1`,
		`@1`,
		`maybe`,
		`1,`,
		`TRUE`,
	} {
		_, err := ParseLiterals(s)
		require.Error(t, err, "input %q", s)
		var perr *ParseError
		require.True(t, errors.As(err, &perr), "input %q: %v", s, err)
	}
}

func TestResolveDeclaredTypeWins(t *testing.T) {
	partitiontest.PartitionTest(t)

	lits, err := ParseLiterals("12, 0x10, 0x10")
	require.NoError(t, err)
	values, err := ResolveAll(lits, []TypeTag{mustUintType(8), mustUintType(128), MakeAddressType()})
	require.NoError(t, err)

	n, err := values[0].GetUint64()
	require.NoError(t, err)
	require.Equal(t, uint64(12), n)
	require.Equal(t, U8, values[0].ABIType.Kind())

	n, err = values[1].GetUint64()
	require.NoError(t, err)
	require.Equal(t, uint64(16), n)

	addr, err := values[2].GetAddress()
	require.NoError(t, err)
	require.Equal(t, byte(0x10), addr[basics.AddressLength-1])
	require.False(t, addr.IsSpecial())
}

func TestResolveSuffixContradiction(t *testing.T) {
	partitiontest.PartitionTest(t)

	lit, err := ParseLiteral("24_u8")
	require.NoError(t, err)
	_, err = lit.Resolve(mustUintType(64))
	var perr *ParseError
	require.True(t, errors.As(err, &perr), "%v", err)

	_, err = lit.Resolve(MakeBoolType())
	require.True(t, errors.As(err, &perr))
}

func TestResolveOverflow(t *testing.T) {
	partitiontest.PartitionTest(t)

	cases := []struct {
		literal string
		bits    uint16
	}{
		{"256", 8},
		{"256_u8", 8},
		{"65536", 16},
		{"4294967296", 32},
		{"18446744073709551616", 64},
		{"0x1_0000_0000_0000_0000_0000_0000_0000_0000", 128},
		{"115792089237316195423570985008687907853269984665640564039457584007913129639936", 256},
	}
	for _, c := range cases {
		lit, err := ParseLiteral(c.literal)
		require.NoError(t, err, c.literal)
		_, err = lit.Resolve(mustUintType(c.bits))
		var oerr *OverflowError
		require.True(t, errors.As(err, &oerr), "%s: %v", c.literal, err)
		require.Equal(t, c.bits, oerr.Type.BitSize())
	}
}

func TestResolveStructuredTypes(t *testing.T) {
	partitiontest.PartitionTest(t)

	str, err := ParseLiteral(`"hello"`)
	require.NoError(t, err)
	v, err := str.Resolve(MakeStringType())
	require.NoError(t, err)
	s, err := v.GetString()
	require.NoError(t, err)
	require.Equal(t, "hello", s)

	bad, err := ParseLiteral(`"\xff"`)
	require.NoError(t, err)
	_, err = bad.Resolve(MakeStringType())
	var perr *ParseError
	require.True(t, errors.As(err, &perr))

	none, err := ParseLiteral("[]")
	require.NoError(t, err)
	v, err = none.Resolve(MakeOptionType(mustUintType(64)))
	require.NoError(t, err)
	elems, err := v.GetElems()
	require.NoError(t, err)
	require.Empty(t, elems)

	some, err := ParseLiteral("[7]")
	require.NoError(t, err)
	v, err = some.Resolve(MakeOptionType(mustUintType(64)))
	require.NoError(t, err)
	elems, err = v.GetElems()
	require.NoError(t, err)
	require.Len(t, elems, 1)

	two, err := ParseLiteral("[7, 8]")
	require.NoError(t, err)
	_, err = two.Resolve(MakeOptionType(mustUintType(64)))
	require.True(t, errors.As(err, &perr))

	obj, err := ParseLiteral("0xa11ce")
	require.NoError(t, err)
	v, err = obj.Resolve(MakeObjectType(MakeStringType()))
	require.NoError(t, err)
	require.True(t, v.ABIType.IsObject())

	hexBytes, err := ParseLiteral("0xdeadbeef")
	require.NoError(t, err)
	v, err = hexBytes.Resolve(MakeVectorType(mustUintType(8)))
	require.NoError(t, err)
	b, err := v.GetBytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, b)

	one, err := ParseLiteral("1")
	require.NoError(t, err)
	_, err = one.Resolve(MakeSignerType())
	require.True(t, errors.As(err, &perr))

	coin, err := MakeStructType(basics.CoreCodeAddress, "coin", "Coin")
	require.NoError(t, err)
	_, err = one.Resolve(coin)
	require.True(t, errors.As(err, &perr))
}

func TestInferTypeVectors(t *testing.T) {
	partitiontest.PartitionTest(t)

	lit, err := ParseLiteral("[[1, 2], [3]]")
	require.NoError(t, err)
	tag, err := InferType(lit)
	require.NoError(t, err)
	require.Equal(t, "vector<vector<u64>>", tag.String())

	var perr *ParseError
	for _, s := range []string{"[]", "[1, true]", "[1_u8, 2]", "[[], [1]]"} {
		lit, err := ParseLiteral(s)
		require.NoError(t, err)
		_, err = InferType(lit)
		require.True(t, errors.As(err, &perr), s)
	}
}

func TestResolveAllArity(t *testing.T) {
	partitiontest.PartitionTest(t)

	lits, err := ParseLiterals("1")
	require.NoError(t, err)
	_, err = ResolveAll(lits, []TypeTag{MakeAddressType(), mustUintType(64)})
	var aerr *ArityMismatchError
	require.True(t, errors.As(err, &aerr))
	require.Equal(t, 2, aerr.Expected)
	require.Equal(t, 1, aerr.Actual)
}
