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
	"bytes"
	"errors"
	"fmt"

	"github.com/EastAgile/0l-txs/data/basics"
	"github.com/EastAgile/0l-txs/protocol"
)

// GenericTypeParam is a generic parameter declaration with its ability constraints.
type GenericTypeParam struct {
	Constraints []string `codec:"constraints"`
}

// MoveFunction is an exposed function as it appears in a node's module ABI JSON.
type MoveFunction struct {
	Name              string             `codec:"name"`
	Visibility        string             `codec:"visibility"`
	IsEntry           bool               `codec:"is_entry"`
	IsView            bool               `codec:"is_view"`
	GenericTypeParams []GenericTypeParam `codec:"generic_type_params"`
	Params            []string           `codec:"params"`
	Return            []string           `codec:"return"`
}

// MoveModuleABI is the ABI of a published module.
type MoveModuleABI struct {
	Address          string         `codec:"address"`
	Name             string         `codec:"name"`
	Friends          []string       `codec:"friends"`
	ExposedFunctions []MoveFunction `codec:"exposed_functions"`
}

// moveModuleBytecode is the node's response for a single module, which wraps the ABI.
type moveModuleBytecode struct {
	Bytecode string         `codec:"bytecode"`
	ABI      *MoveModuleABI `codec:"abi"`
}

// ParseModuleABI decodes a module ABI JSON document. Both the bare ABI object and the
// {"bytecode": .., "abi": ..} wrapper returned by the node are accepted.
func ParseModuleABI(data []byte) (MoveModuleABI, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return MoveModuleABI{}, fmt.Errorf("module ABI is not a JSON object")
	}
	var wrapped moveModuleBytecode
	if err := protocol.DecodeJSONLenient(data, &wrapped); err == nil && wrapped.ABI != nil {
		return wrapped.ABI.checked()
	}
	var module MoveModuleABI
	if err := protocol.DecodeJSONLenient(data, &module); err != nil {
		return MoveModuleABI{}, fmt.Errorf("cannot decode module ABI: %w", err)
	}
	return module.checked()
}

func (m MoveModuleABI) checked() (MoveModuleABI, error) {
	if _, err := basics.ParseAddress(m.Address); err != nil {
		return MoveModuleABI{}, fmt.Errorf("module ABI address: %w", err)
	}
	if err := basics.ValidateIdentifier(m.Name); err != nil {
		return MoveModuleABI{}, fmt.Errorf("module ABI name: %w", err)
	}
	return m, nil
}

// Function looks up an exposed function by name and compiles its declaration.
func (m MoveModuleABI) Function(name string) (FunctionABI, error) {
	for _, fn := range m.ExposedFunctions {
		if fn.Name == name {
			return fn.Compile()
		}
	}
	return FunctionABI{}, fmt.Errorf("module %s::%s has no exposed function %s", m.Address, m.Name, name)
}

// FunctionABI is a function declaration with its parameter and return types parsed.
type FunctionABI struct {
	Name          string
	Visibility    string
	IsEntry       bool
	IsView        bool
	NumTypeParams int
	// Params may contain signer and generic placeholders.
	Params  []TypeTag
	Returns []TypeTag
}

// Compile parses the declared parameter and return type strings.
func (fn MoveFunction) Compile() (FunctionABI, error) {
	if err := basics.ValidateIdentifier(fn.Name); err != nil {
		return FunctionABI{}, err
	}
	res := FunctionABI{
		Name:          fn.Name,
		Visibility:    fn.Visibility,
		IsEntry:       fn.IsEntry,
		IsView:        fn.IsView,
		NumTypeParams: len(fn.GenericTypeParams),
		Params:        make([]TypeTag, len(fn.Params)),
		Returns:       make([]TypeTag, len(fn.Return)),
	}
	var err error
	for i, p := range fn.Params {
		res.Params[i], err = ParseParamType(p)
		if err != nil {
			return FunctionABI{}, fmt.Errorf("%s parameter %d: %w", fn.Name, i, err)
		}
	}
	for i, r := range fn.Return {
		res.Returns[i], err = ParseParamType(r)
		if err != nil {
			return FunctionABI{}, fmt.Errorf("%s return %d: %w", fn.Name, i, err)
		}
	}
	return res, nil
}

func (f FunctionABI) instantiate(types []TypeTag, typeArgs []TypeTag) ([]TypeTag, error) {
	if len(typeArgs) != f.NumTypeParams {
		return nil, &ArityMismatchError{Function: f.Name, What: "type arguments", Expected: f.NumTypeParams, Actual: len(typeArgs)}
	}
	res := make([]TypeTag, len(types))
	for i, t := range types {
		sub, err := t.Substitute(typeArgs)
		if err != nil {
			return nil, err
		}
		res[i] = sub
	}
	return res, nil
}

// ArgumentTypes returns the types the caller supplies arguments for: leading signer
// parameters are dropped, since the transaction provides them, and generic
// placeholders are replaced by typeArgs.
func (f FunctionABI) ArgumentTypes(typeArgs []TypeTag) ([]TypeTag, error) {
	params := f.Params
	for len(params) > 0 && params[0].kind == Signer {
		params = params[1:]
	}
	return f.instantiate(params, typeArgs)
}

// ReturnTypes returns the declared return types with generic placeholders replaced.
func (f FunctionABI) ReturnTypes(typeArgs []TypeTag) ([]TypeTag, error) {
	return f.instantiate(f.Returns, typeArgs)
}

// ResolveArgs parses an argument string against the declared parameters.
func (f FunctionABI) ResolveArgs(args string, typeArgs []TypeTag) ([]Value, error) {
	types, err := f.ArgumentTypes(typeArgs)
	if err != nil {
		return nil, err
	}
	lits, err := ParseLiterals(args)
	if err != nil {
		return nil, err
	}
	values, err := ResolveAll(lits, types)
	if err != nil {
		var arity *ArityMismatchError
		if errors.As(err, &arity) {
			arity.Function = f.Name
		}
		return nil, err
	}
	return values, nil
}
