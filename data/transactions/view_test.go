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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EastAgile/0l-txs/data/abi"
	"github.com/EastAgile/0l-txs/test/partitiontest"
)

func balanceView(t *testing.T) ViewFunction {
	id, err := ParseFunctionID("0x1::coin::balance")
	require.NoError(t, err)
	typeArgs, err := abi.ParseTypeTags("0x1::libra_coin::LibraCoin")
	require.NoError(t, err)
	values, err := abi.ParseArgs("0x1", nil)
	require.NoError(t, err)
	args, err := abi.EncodeArgs(values)
	require.NoError(t, err)
	returns, err := abi.ParseTypeTags("u64")
	require.NoError(t, err)
	return ViewFunction{
		EntryFunction: EntryFunction{Module: id.Module, Function: id.Function, TypeArgs: typeArgs, Args: args},
		Returns:       returns,
	}
}

func TestViewFunctionRequest(t *testing.T) {
	partitiontest.PartitionTest(t)

	view := balanceView(t)
	body, err := view.RequestJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{"function": "0x1::coin::balance", "type_arguments": ["0x1::libra_coin::LibraCoin"], "arguments": ["0x1"]}`, string(body))

	encoded, err := view.Encode()
	require.NoError(t, err)
	// the view request has the entry function layout, without the payload variant
	payload, err := TransactionPayload{EntryFunction: view.EntryFunction}.MarshalBCS()
	require.NoError(t, err)
	require.Equal(t, hex.EncodeToString(payload[1:]), hex.EncodeToString(encoded))
}

func TestViewFunctionDecodeResult(t *testing.T) {
	partitiontest.PartitionTest(t)

	view := balanceView(t)
	values, err := view.DecodeResult([]byte{1, 8, 0xe8, 3, 0, 0, 0, 0, 0, 0}, false)
	require.NoError(t, err)
	require.Len(t, values, 1)
	require.Equal(t, "1000", values[0].String())

	values, err = view.DecodeResult([]byte(`["1000"]`), true)
	require.NoError(t, err)
	rendered, err := json.Marshal(values)
	require.NoError(t, err)
	require.JSONEq(t, `["1000"]`, string(rendered))

	_, err = view.DecodeResult([]byte{1, 4, 0xe8, 3, 0, 0}, false)
	var derr *abi.DecodeError
	require.ErrorAs(t, err, &derr)
}
