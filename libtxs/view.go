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

package libtxs

import (
	"context"

	"github.com/EastAgile/0l-txs/data/abi"
	"github.com/EastAgile/0l-txs/data/transactions"
)

// ViewRequest describes a view function call in textual form.
type ViewRequest struct {
	Function string
	TypeArgs string
	Args     string
	// Returns lists the return types when no ABI is known. It is ignored when the
	// ABI declares them.
	Returns string

	ABI *abi.FunctionABI
}

// MakeViewCall resolves a view function call the same way transactions are resolved,
// without sender, gas or signature.
func (b *Builder) MakeViewCall(ctx context.Context, req ViewRequest) (transactions.ViewFunction, error) {
	c, err := b.resolveCall(ctx, req.Function, req.TypeArgs, req.Args, req.ABI)
	if err != nil {
		return transactions.ViewFunction{}, err
	}
	ef, err := c.entryFunction()
	if err != nil {
		return transactions.ViewFunction{}, err
	}

	var returns []abi.TypeTag
	if c.fnABI != nil {
		if !c.fnABI.IsView {
			b.log.With("function", c.function.String()).Warn("function is not marked as a view function")
		}
		returns, err = c.fnABI.ReturnTypes(c.typeArgs)
	} else {
		returns, err = abi.ParseTypeTags(req.Returns)
	}
	if err != nil {
		return transactions.ViewFunction{}, err
	}

	b.log.With("function", c.function.String()).Debugf("assembled view call: %d args, %d returns", len(ef.Args), len(returns))
	return transactions.ViewFunction{EntryFunction: ef, Returns: returns}, nil
}

// DecodeViewResult decodes a node's answer to view into display values.
func (b *Builder) DecodeViewResult(view transactions.ViewFunction, result []byte, isJSON bool) ([]abi.Value, error) {
	values, err := view.DecodeResult(result, isJSON)
	if err != nil {
		b.log.With("function", view.FunctionID().String()).Warnf("cannot decode view result: %v", err)
		return nil, err
	}
	b.log.With("function", view.FunctionID().String()).Debugf("view returned %v", FormatValues(values))
	return values, nil
}

// FormatValues renders values as display strings, in order.
func FormatValues(values []abi.Value) []string {
	res := make([]string, len(values))
	for i, v := range values {
		res[i] = v.String()
	}
	return res
}
