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

package protocol

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EastAgile/0l-txs/test/partitiontest"
)

type testFunction struct {
	Name    string   `codec:"name"`
	IsEntry bool     `codec:"is_entry"`
	Params  []string `codec:"params"`
}

func TestJSONRoundTrip(t *testing.T) {
	partitiontest.PartitionTest(t)

	fn := testFunction{Name: "transfer", IsEntry: true, Params: []string{"&signer", "address", "u64"}}
	enc := EncodeJSON(fn)
	require.Contains(t, string(enc), `"is_entry": true`)

	var back testFunction
	require.NoError(t, DecodeJSONLenient(enc, &back))
	require.Equal(t, fn, back)
}

func TestJSONLenientIgnoresUnknownFields(t *testing.T) {
	partitiontest.PartitionTest(t)

	doc := []byte(`{"name": "balance", "is_view": true, "params": ["address"]}`)

	var lenient testFunction
	require.NoError(t, DecodeJSONLenient(doc, &lenient))
	require.Equal(t, "balance", lenient.Name)
	require.Equal(t, []string{"address"}, lenient.Params)

	require.Error(t, DecodeJSONLenient([]byte(`{"name": 3`), &lenient))
}

func TestJSONCanonicalMaps(t *testing.T) {
	partitiontest.PartitionTest(t)

	enc := string(EncodeJSON(map[string]int{"zeta": 1, "alpha": 2, "mid": 3}))
	require.Less(t, strings.Index(enc, "alpha"), strings.Index(enc, "mid"))
	require.Less(t, strings.Index(enc, "mid"), strings.Index(enc, "zeta"))
	require.Equal(t, enc, string(EncodeJSON(map[string]int{"mid": 3, "zeta": 1, "alpha": 2})))
}

func TestJSONEncoderMatchesEncodeJSON(t *testing.T) {
	partitiontest.PartitionTest(t)

	fn := testFunction{Name: "a", Params: []string{"u8"}}
	var buf bytes.Buffer
	require.NoError(t, NewJSONEncoder(&buf).Encode(fn))
	require.Equal(t, string(EncodeJSON(fn)), buf.String())

	var back testFunction
	require.NoError(t, DecodeJSONLenient(buf.Bytes(), &back))
	require.Equal(t, fn, back)
}
