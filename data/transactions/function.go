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
	"strings"

	"github.com/EastAgile/0l-txs/data/basics"
)

// ModuleID names a published module.
type ModuleID struct {
	Address basics.Address
	Name    string
}

func (m ModuleID) String() string {
	return m.Address.String() + "::" + m.Name
}

// ParseModuleID parses <address>::<module>.
func ParseModuleID(s string) (ModuleID, error) {
	segments := strings.Split(s, "::")
	if len(segments) != 2 {
		return ModuleID{}, makeInvalidIdentifierErrorf(s, "expected <address>::<module>, got %d segments", len(segments))
	}
	addr, err := basics.ParseAddress(segments[0])
	if err != nil {
		return ModuleID{}, makeInvalidIdentifierErrorf(s, "%v", err)
	}
	if err := basics.ValidateIdentifier(segments[1]); err != nil {
		return ModuleID{}, makeInvalidIdentifierErrorf(s, "module name: %v", err)
	}
	return ModuleID{Address: addr, Name: segments[1]}, nil
}

// FunctionID is a fully qualified Move function: <address>::<module>::<function>.
type FunctionID struct {
	Module   ModuleID
	Function string
}

// ParseFunctionID splits a function identifier into its three segments and validates
// the address and both identifiers. It does not check that the function exists.
func ParseFunctionID(s string) (FunctionID, error) {
	segments := strings.Split(s, "::")
	if len(segments) != 3 {
		return FunctionID{}, makeInvalidIdentifierErrorf(s, "expected <address>::<module>::<function>, got %d segments", len(segments))
	}
	for i, seg := range segments {
		if seg == "" {
			return FunctionID{}, makeInvalidIdentifierErrorf(s, "segment %d is empty", i)
		}
	}
	addr, err := basics.ParseAddress(segments[0])
	if err != nil {
		return FunctionID{}, makeInvalidIdentifierErrorf(s, "%v", err)
	}
	if err := basics.ValidateIdentifier(segments[1]); err != nil {
		return FunctionID{}, makeInvalidIdentifierErrorf(s, "module name: %v", err)
	}
	if err := basics.ValidateIdentifier(segments[2]); err != nil {
		return FunctionID{}, makeInvalidIdentifierErrorf(s, "function name: %v", err)
	}
	return FunctionID{Module: ModuleID{Address: addr, Name: segments[1]}, Function: segments[2]}, nil
}

// String gives the identifier with the address in canonical form, e.g. 0x1::coin::transfer.
func (f FunctionID) String() string {
	return f.Module.String() + "::" + f.Function
}

// MarshalText implements encoding.TextMarshaler.
func (f FunctionID) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FunctionID) UnmarshalText(text []byte) error {
	id, err := ParseFunctionID(string(text))
	if err != nil {
		return err
	}
	*f = id
	return nil
}
