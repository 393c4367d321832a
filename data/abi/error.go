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
	"fmt"
)

// ParseError reports malformed type or literal syntax, or a literal that cannot be
// read as the type it is declared against.
type ParseError struct {
	Input  string
	Reason string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", err.Input, err.Reason)
}

func makeParseErrorf(input string, format string, args ...interface{}) *ParseError {
	return &ParseError{Input: input, Reason: fmt.Sprintf(format, args...)}
}

// OverflowError reports a numeric literal that does not fit its declared or
// suffixed width.
type OverflowError struct {
	Literal string
	Type    TypeTag
}

func (err *OverflowError) Error() string {
	return fmt.Sprintf("value %s does not fit in %s (max %s)", err.Literal, err.Type, maxUintString(err.Type.BitSize()))
}

// ArityMismatchError reports a count of arguments (or type arguments) that disagrees
// with the function declaration.
type ArityMismatchError struct {
	Function string
	What     string
	Expected int
	Actual   int
}

func (err *ArityMismatchError) Error() string {
	if err.Function == "" {
		return fmt.Sprintf("expected %d %s, got %d", err.Expected, err.What, err.Actual)
	}
	return fmt.Sprintf("%s expects %d %s, got %d", err.Function, err.Expected, err.What, err.Actual)
}

// DecodeError reports returned data that does not match the expected type layout.
// Offset is the byte position in BCS input, or -1 for JSON input.
type DecodeError struct {
	Type   string
	Offset int
	Reason string
}

func (err *DecodeError) Error() string {
	if err.Offset < 0 {
		return fmt.Sprintf("decode %s: %s", err.Type, err.Reason)
	}
	return fmt.Sprintf("decode %s at byte %d: %s", err.Type, err.Offset, err.Reason)
}

func lengthMismatch(offset int, expected, actual int) *DecodeError {
	return &DecodeError{
		Type:   "view result",
		Offset: offset,
		Reason: fmt.Sprintf("length mismatch: expected %d return values, got %d", expected, actual),
	}
}
