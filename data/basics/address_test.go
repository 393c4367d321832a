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

package basics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/EastAgile/0l-txs/test/partitiontest"
)

func TestParseAddressShortForm(t *testing.T) {
	partitiontest.PartitionTest(t)

	addr, err := ParseAddress("0x1")
	require.NoError(t, err)
	require.Equal(t, CoreCodeAddress, addr)
	require.Equal(t, "0x1", addr.String())
	require.True(t, addr.IsSpecial())

	addr, err = ParseAddress("0xabc")
	require.NoError(t, err)
	require.Equal(t, byte(0x0a), addr[30])
	require.Equal(t, byte(0xbc), addr[31])
	require.False(t, addr.IsSpecial())
	require.Equal(t, "0x"+strings.Repeat("0", 61)+"abc", addr.String())
}

func TestParseAddressMalformed(t *testing.T) {
	partitiontest.PartitionTest(t)

	for _, s := range []string{
		"",
		"1",
		"0x",
		"0xzz",
		"0x" + strings.Repeat("1", 65),
		" 0x1",
		"0x1 ",
	} {
		_, err := ParseAddress(s)
		require.Error(t, err, "input %q", s)
	}
}

func TestAddressTextRoundTrip(t *testing.T) {
	partitiontest.PartitionTest(t)

	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.SliceOfN(rapid.Byte(), AddressLength, AddressLength).Draw(t, "addr")
		var addr Address
		copy(addr[:], raw)

		text, err := addr.MarshalText()
		require.NoError(t, err)
		var back Address
		require.NoError(t, back.UnmarshalText(text))
		require.Equal(t, addr, back)

		long, err := ParseAddress(addr.StringLong())
		require.NoError(t, err)
		require.Equal(t, addr, long)

		display, err := ParseAddress(addr.String())
		require.NoError(t, err)
		require.Equal(t, addr, display)
	})
}

func TestAddressMarshalBCS(t *testing.T) {
	partitiontest.PartitionTest(t)

	b, err := CoreCodeAddress.MarshalBCS()
	require.NoError(t, err)
	require.Len(t, b, AddressLength)
	require.Equal(t, byte(1), b[AddressLength-1])
	require.True(t, ZeroAddress.IsZero())
}
