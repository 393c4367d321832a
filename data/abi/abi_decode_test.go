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

	"github.com/EastAgile/0l-txs/test/partitiontest"
)

func mustDecodeHex(t require.TestingT, s string) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestDecodeValueErrors(t *testing.T) {
	partitiontest.PartitionTest(t)

	cases := []struct {
		hex string
		tag string
	}{
		{"", "u8"},
		{"0100", "u8"},
		{"010000", "u32"},
		{"02", "bool"},
		{"0101", "bool"},
		{strings.Repeat("00", 31), "address"},
		{"03aabb", "vector<u8>"},
		{"8000", "vector<u8>"},
		{"ffffffffff0f", "vector<u8>"},
		{"80808080808080808002", "vector<bool>"},
		{"808080808001", "vector<bool>"},
		{"8080808010", "vector<bool>"},
		{"01ff", "0x1::string::String"},
		{"020000", "0x1::option::Option<u8>"},
		{"0201", "vector<u16>"},
		{"00", "0x1::coin::Coin"},
	}
	for _, c := range cases {
		tag, err := ParseTypeTag(c.tag)
		require.NoError(t, err)
		_, err = DecodeValue(mustDecodeHex(t, c.hex), tag)
		var derr *DecodeError
		require.True(t, errors.As(err, &derr), "%s as %s: %v", c.hex, c.tag, err)
		require.Contains(t, derr.Error(), c.tag)
	}
}

func TestDecodeViewResult(t *testing.T) {
	partitiontest.PartitionTest(t)

	types, err := ParseTypeTags("u64, bool, 0x1::string::String, vector<address>")
	require.NoError(t, err)

	values, err := ParseArgs(`42, true, "coin", [0x1, @0x2]`, types)
	require.NoError(t, err)
	args, err := EncodeArgs(values)
	require.NoError(t, err)

	var envelope []byte
	envelope = appendUleb128(envelope, uint64(len(args)))
	for _, arg := range args {
		envelope = appendBytes(envelope, arg.Bytes)
	}

	decoded, err := DecodeViewResult(envelope, types)
	require.NoError(t, err)
	require.Len(t, decoded, 4)
	for i := range values {
		require.True(t, values[i].ABIType.Equal(decoded[i].ABIType))
		require.Equal(t, values[i].String(), decoded[i].String())
	}

	_, err = DecodeViewResult(envelope, types[:3])
	var derr *DecodeError
	require.True(t, errors.As(err, &derr))
	require.Contains(t, derr.Error(), "length mismatch: expected 3 return values, got 4")

	_, err = DecodeValues([][]byte{{1}}, nil)
	require.True(t, errors.As(err, &derr))

	_, err = DecodeViewResult(append(envelope, 0), types)
	require.True(t, errors.As(err, &derr))

	_, err = DecodeViewResult(envelope[:len(envelope)-1], types)
	require.True(t, errors.As(err, &derr))
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	partitiontest.PartitionTest(t)

	rapid.Check(t, func(t *rapid.T) {
		elems := rapid.SliceOfN(rapid.Uint32(), 0, 20).Draw(t, "elems")
		values := make([]Value, len(elems))
		for i, e := range elems {
			values[i] = MakeUint32(e)
		}
		vec, err := MakeVector(values, mustUintType(32))
		require.NoError(t, err)
		encoded, err := vec.Encode()
		require.NoError(t, err)

		decoded, err := DecodeValue(encoded, vec.ABIType)
		require.NoError(t, err)
		back, err := decoded.GetElems()
		require.NoError(t, err)
		require.Len(t, back, len(elems))
		for i := range back {
			n, err := back[i].GetUint64()
			require.NoError(t, err)
			require.Equal(t, uint64(elems[i]), n)
		}

		text := rapid.String().Draw(t, "text")
		s, err := MakeString(text)
		require.NoError(t, err)
		encoded, err = s.Encode()
		require.NoError(t, err)
		decoded, err = DecodeValue(encoded, MakeStringType())
		require.NoError(t, err)
		got, err := decoded.GetString()
		require.NoError(t, err)
		require.Equal(t, text, got)
	})
}
