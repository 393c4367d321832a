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
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EastAgile/0l-txs/test/partitiontest"
)

func TestOverflow(t *testing.T) {
	partitiontest.PartitionTest(t)

	_, o := OAdd(uint64(math.MaxUint64), 1)
	require.True(t, o)
	r, o := OAdd(uint64(2), 3)
	require.False(t, o)
	require.Equal(t, uint64(5), r)

	_, o = OMul(uint64(math.MaxUint64/2+1), 2)
	require.True(t, o)
	r, o = OMul(uint64(7), 0)
	require.False(t, o)
	require.Zero(t, r)

	require.Equal(t, uint64(math.MaxUint64), AddSaturate(uint64(math.MaxUint64), 10))
	require.Equal(t, uint64(1_700_000_030), AddSaturate(uint64(1_700_000_000), 30))
}
