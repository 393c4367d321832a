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

package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/EastAgile/0l-txs/data/transactions"
	"github.com/EastAgile/0l-txs/libtxs"
)

var (
	viewReturns     string
	viewReturnTypes string
	viewJSONResult  bool
)

func init() {
	addCallFlags(viewCmd)
	viewCmd.Flags().StringVar(&viewReturns, "returns", "", "Node answer to decode: hex BCS vector<vector<u8>>, or JSON with --json")
	viewCmd.Flags().StringVar(&viewReturnTypes, "return-types", "", "Comma separated return types, used when no ABI is available")
	viewCmd.Flags().BoolVar(&viewJSONResult, "json", false, "Treat --returns as the node's JSON answer")
}

// viewRequestOutput is what the view command prints when there is no answer to decode.
type viewRequestOutput struct {
	BCS  string          `json:"bcs"`
	JSON json.RawMessage `json:"json"`
}

func renderViewRequest(view transactions.ViewFunction) ([]byte, error) {
	encoded, err := view.Encode()
	if err != nil {
		return nil, err
	}
	body, err := view.RequestJSON()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(viewRequestOutput{BCS: encodeHex(encoded), JSON: body}, "", "  ")
}

// decodeViewReturns decodes a node's answer and renders the values as a JSON array.
func decodeViewReturns(b *libtxs.Builder, view transactions.ViewFunction, returns string, isJSON bool) ([]byte, error) {
	var result []byte
	if isJSON {
		result = []byte(returns)
	} else {
		var err error
		result, err = hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(returns), "0x"))
		if err != nil {
			return nil, err
		}
	}
	values, err := b.DecodeViewResult(view, result, isJSON)
	if err != nil {
		return nil, err
	}
	return json.Marshal(values)
}

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Build a view function call, or decode its result",
	Long:  `Build the request body of a view function call. With --returns, decode the node's answer against the declared return types instead.`,
	Args:  validateNoPosArgsFn,
	Run: func(cmd *cobra.Command, _ []string) {
		cfg := ensureConfig()
		b := ensureBuilder(cfg, abiFile)

		view, err := b.MakeViewCall(context.Background(), libtxs.ViewRequest{
			Function: functionID,
			TypeArgs: typeArgs,
			Args:     txnArgs,
			Returns:  viewReturnTypes,
		})
		if err != nil {
			reportErrorf(errorBuildView, err)
		}

		if viewReturns == "" {
			out, err := renderViewRequest(view)
			if err != nil {
				reportErrorf(errorBuildView, err)
			}
			reportInfoln(string(out))
			return
		}

		out, err := decodeViewReturns(b, view, viewReturns, viewJSONResult)
		if err != nil {
			reportErrorf(errorDecodeView, err)
		}
		reportInfoln(string(out))
	},
}
