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
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/EastAgile/0l-txs/data/basics"
	"github.com/EastAgile/0l-txs/test/partitiontest"
)

func genTypeTag(depth int) *rapid.Generator[TypeTag] {
	return rapid.Custom(func(t *rapid.T) TypeTag {
		choices := 11
		if depth <= 0 {
			choices = 9
		}
		switch rapid.IntRange(0, choices-1).Draw(t, "kind") {
		case 0:
			return MakeBoolType()
		case 1:
			return MakeAddressType()
		case 2:
			return MakeSignerType()
		case 3, 4, 5, 6, 7, 8:
			bits := rapid.SampledFrom([]uint16{8, 16, 32, 64, 128, 256}).Draw(t, "bits")
			return mustUintType(bits)
		case 9:
			return MakeVectorType(genTypeTag(depth-1).Draw(t, "elem"))
		}
		raw := rapid.SliceOfN(rapid.Byte(), basics.AddressLength, basics.AddressLength).Draw(t, "addr")
		var addr basics.Address
		copy(addr[:], raw)
		module := rapid.StringMatching(`[a-z][a-z0-9_]{0,8}`).Draw(t, "module")
		name := rapid.StringMatching(`[A-Z][A-Za-z0-9_]{0,8}`).Draw(t, "name")
		params := rapid.SliceOfN(genTypeTag(depth-1), 0, 3).Draw(t, "params")
		tag, err := MakeStructType(addr, module, name, params...)
		if err != nil {
			t.Fatalf("make struct: %v", err)
		}
		return tag
	})
}

func TestParseTypeTagPrimitives(t *testing.T) {
	partitiontest.PartitionTest(t)

	for name, kind := range primitiveTypes {
		tag, err := ParseTypeTag(name)
		require.NoError(t, err)
		require.Equal(t, kind, tag.Kind())
		require.Equal(t, name, tag.String())
	}
}

func TestParseTypeTags(t *testing.T) {
	partitiontest.PartitionTest(t)

	tags, err := ParseTypeTags("")
	require.NoError(t, err)
	require.Empty(t, tags)

	tags, err = ParseTypeTags("   ")
	require.NoError(t, err)
	require.Empty(t, tags)

	tags, err = ParseTypeTags("u64, vector<vector<u8>>, 0x1::coin::CoinStore<0x1::aptos_coin::AptosCoin>, 0x1::pair::Pair<u8, vector<address>>")
	require.NoError(t, err)
	require.Len(t, tags, 4)
	require.Equal(t, U64, tags[0].Kind())
	require.Equal(t, Vector, tags[1].Kind())
	require.True(t, tags[1].Elem().IsBytes())
	require.Equal(t, Struct, tags[2].Kind())
	require.Equal(t, basics.CoreCodeAddress, tags[2].StructAddress())
	require.Equal(t, "coin", tags[2].Module())
	require.Equal(t, "CoinStore", tags[2].Name())
	require.Len(t, tags[2].TypeParams(), 1)
	require.Equal(t, "AptosCoin", tags[2].TypeParams()[0].Name())
	require.Len(t, tags[3].TypeParams(), 2)
	require.Equal(t, "0x1::pair::Pair<u8, vector<address>>", tags[3].String())
}

func TestParseTypeTagWhitespace(t *testing.T) {
	partitiontest.PartitionTest(t)

	tag, err := ParseTypeTag(" vector< 0x01 :: string :: String > ")
	require.NoError(t, err)
	require.Equal(t, "vector<0x1::string::String>", tag.String())
	require.True(t, tag.Elem().IsString())
}

func TestParseTypeTagErrors(t *testing.T) {
	partitiontest.PartitionTest(t)

	for _, s := range []string{
		"u7",
		"integer",
		"vector",
		"vector<>",
		"vector<u8, u8>",
		"vector<u8",
		"vector<u8>>",
		"0x1::coin",
		"0x1::coin::Coin::Extra",
		"0xzz::coin::Coin",
		"1::coin::Coin",
		"0x1::coin::Coin<>",
		"0x1::coin::Coin<u8",
		"0x1::coin::Coin<u8>>",
		"0x1::9coin::Coin",
		"0x1::coin::Coin<T0>",
		"&signer",
	} {
		_, err := ParseTypeTag(s)
		require.Error(t, err, "input %q", s)
		var perr *ParseError
		require.True(t, errors.As(err, &perr), "input %q: %v", s, err)
	}

	for _, s := range []string{"u8,", ",u8", "u8,,u64", "vector<u8>>,u8", "u8, vector<u64"} {
		_, err := ParseTypeTags(s)
		var perr *ParseError
		require.True(t, errors.As(err, &perr), "input %q: %v", s, err)
	}
}

func TestTypeTagStringIdempotent(t *testing.T) {
	partitiontest.PartitionTest(t)

	rapid.Check(t, func(t *rapid.T) {
		tag := genTypeTag(3).Draw(t, "tag")
		str := tag.String()
		parsed, err := ParseTypeTag(str)
		require.NoError(t, err, str)
		require.True(t, tag.Equal(parsed), "%s != %s", tag, parsed)
		require.Equal(t, str, parsed.String())

		// parsing a list of the same tag splits at the top level only
		list, err := ParseTypeTags(str + ", " + str)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.True(t, list[1].Equal(tag))
	})
}

func TestParseParamType(t *testing.T) {
	partitiontest.PartitionTest(t)

	tag, err := ParseParamType("&signer")
	require.NoError(t, err)
	require.Equal(t, Signer, tag.Kind())

	tag, err = ParseParamType("&mut vector<T1>")
	require.NoError(t, err)
	require.Equal(t, Generic, tag.Elem().Kind())
	require.Equal(t, uint16(1), tag.Elem().GenericIndex())
	require.True(t, tag.HasGenerics())

	sub, err := tag.Substitute([]TypeTag{MakeBoolType(), MakeAddressType()})
	require.NoError(t, err)
	require.Equal(t, "vector<address>", sub.String())
	require.False(t, sub.HasGenerics())

	_, err = tag.Substitute([]TypeTag{MakeBoolType()})
	var perr *ParseError
	require.True(t, errors.As(err, &perr))

	tag, err = ParseParamType("0x1::object::Object<T0>")
	require.NoError(t, err)
	sub, err = tag.Substitute([]TypeTag{MakeStringType()})
	require.NoError(t, err)
	require.True(t, sub.IsObject())
	require.Equal(t, "0x1::object::Object<0x1::string::String>", sub.String())
}

func TestTypeTagMarshalBCS(t *testing.T) {
	partitiontest.PartitionTest(t)

	cases := map[string]string{
		"bool":         "00",
		"u8":           "01",
		"u64":          "02",
		"u128":         "03",
		"address":      "04",
		"signer":       "05",
		"vector<u8>":   "0601",
		"u16":          "08",
		"u32":          "09",
		"u256":         "0a",
		"vector<u256>": "060a",
		"0x1::string::String": "07" + strings.Repeat("00", 31) + "01" +
			"06" + hex.EncodeToString([]byte("string")) +
			"06" + hex.EncodeToString([]byte("String")) +
			"00",
		"0x1::option::Option<u64>": "07" + strings.Repeat("00", 31) + "01" +
			"06" + hex.EncodeToString([]byte("option")) +
			"06" + hex.EncodeToString([]byte("Option")) +
			"0102",
	}
	for str, expected := range cases {
		tag, err := ParseTypeTag(str)
		require.NoError(t, err)
		encoded, err := tag.MarshalBCS()
		require.NoError(t, err)
		require.Equal(t, expected, hex.EncodeToString(encoded), str)
	}

	_, err := MakeGenericType(0).MarshalBCS()
	require.Error(t, err)
}

func TestMakeUintType(t *testing.T) {
	partitiontest.PartitionTest(t)

	for _, bits := range []uint16{8, 16, 32, 64, 128, 256} {
		tag, err := MakeUintType(bits)
		require.NoError(t, err)
		require.True(t, tag.IsUint())
		require.Equal(t, bits, tag.BitSize())
	}
	_, err := MakeUintType(24)
	require.Error(t, err)
	require.Zero(t, MakeBoolType().BitSize())
}
