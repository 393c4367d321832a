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
	"encoding/json"
	"fmt"

	"github.com/fardream/go-bcs/bcs"

	"github.com/EastAgile/0l-txs/data/abi"
)

// ViewFunction is a read-only function call evaluated by a node without a transaction.
type ViewFunction struct {
	EntryFunction
	// Returns are the declared return types, used to decode the node's answer. They are
	// not part of the encoded request.
	Returns []abi.TypeTag
}

// Encode returns the BCS request body for the view endpoint.
func (v ViewFunction) Encode() ([]byte, error) {
	return bcs.Marshal(v.EntryFunction)
}

type viewRequest struct {
	Function      string      `json:"function"`
	TypeArguments []string    `json:"type_arguments"`
	Arguments     []abi.Value `json:"arguments"`
}

// RequestJSON returns the JSON request body for the view endpoint.
func (v ViewFunction) RequestJSON() ([]byte, error) {
	values, err := v.DecodeArgs()
	if err != nil {
		return nil, err
	}
	req := viewRequest{
		Function:      v.FunctionID().String(),
		TypeArguments: make([]string, len(v.TypeArgs)),
		Arguments:     values,
	}
	for i, t := range v.TypeArgs {
		req.TypeArguments[i] = t.String()
	}
	return json.Marshal(req)
}

// DecodeResult decodes a view response. BCS responses are the `vector<vector<u8>>`
// envelope; JSON responses are an array of values.
func (v ViewFunction) DecodeResult(result []byte, isJSON bool) ([]abi.Value, error) {
	if isJSON {
		return abi.DecodeViewJSON(result, v.Returns)
	}
	values, err := abi.DecodeViewResult(result, v.Returns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", v.FunctionID(), err)
	}
	return values, nil
}
