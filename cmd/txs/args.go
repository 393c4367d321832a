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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EastAgile/0l-txs/data/abi"
	"github.com/EastAgile/0l-txs/libtxs"
)

var (
	encodeArgsTypes    string
	encodeArgsFunction string
	encodeArgsLiterals string
)

func init() {
	encodeArgsCmd.Flags().StringVarP(&encodeArgsLiterals, "args", "a", "", "Comma separated Move literals")
	encodeArgsCmd.Flags().StringVar(&encodeArgsTypes, "types", "", "Comma separated argument types (default: inferred from the literals)")
	encodeArgsCmd.Flags().StringVarP(&encodeArgsFunction, "function-id", "f", "", "Type the arguments by this function's parameters")
	encodeArgsCmd.Flags().StringVarP(&typeArgs, "type-args", "t", "", "Type arguments of --function-id")
	encodeArgsCmd.Flags().StringVar(&abiFile, "abi", "", "Module ABI JSON document of --function-id")
}

// encodeArgs resolves and encodes literals, typed by explicit types, by a function's
// parameters, or by inference, in that order of preference.
func encodeArgs(b *libtxs.Builder, literals, types, function, fnTypeArgs string) ([]abi.EncodedArg, error) {
	if function != "" {
		view, err := b.MakeViewCall(context.Background(), libtxs.ViewRequest{
			Function: function,
			TypeArgs: fnTypeArgs,
			Args:     literals,
		})
		if err != nil {
			return nil, err
		}
		return view.Args, nil
	}

	var tags []abi.TypeTag
	if types != "" {
		var err error
		tags, err = abi.ParseTypeTags(types)
		if err != nil {
			return nil, err
		}
	}
	values, err := abi.ParseArgs(literals, tags)
	if err != nil {
		return nil, err
	}
	return abi.EncodeArgs(values)
}

func formatEncodedArg(arg abi.EncodedArg) string {
	return fmt.Sprintf("%s\t%s", arg.Type, encodeHex(arg.Bytes))
}

var encodeArgsCmd = &cobra.Command{
	Use:   "encode-args",
	Short: "Print the BCS encoding of each argument",
	Args:  validateNoPosArgsFn,
	Run: func(cmd *cobra.Command, _ []string) {
		cfg := ensureConfig()
		b := ensureBuilder(cfg, abiFile)

		encoded, err := encodeArgs(b, encodeArgsLiterals, encodeArgsTypes, encodeArgsFunction, typeArgs)
		if err != nil {
			reportErrorf(errorBuildTransaction, err)
		}
		for _, arg := range encoded {
			reportInfoln(formatEncodedArg(arg))
		}
	},
}
