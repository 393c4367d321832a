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
	"strings"
)

// splitTopLevel splits str on commas that are not nested inside angle brackets, square
// brackets or double quotes. Each piece is trimmed. Empty pieces are an error, so
// leading, trailing and consecutive commas are rejected.
// An empty (or all whitespace) str yields no pieces.
func splitTopLevel(str string) ([]string, error) {
	if strings.TrimSpace(str) == "" {
		return []string{}, nil
	}

	var pieces []string
	var stack []byte
	inQuote := false
	start := 0
	for i := 0; i < len(str); i++ {
		c := str[i]
		if inQuote {
			switch c {
			case '\\':
				i++
			case '"':
				inQuote = false
			}
			continue
		}
		switch c {
		case '"':
			inQuote = true
		case '<', '[':
			stack = append(stack, c)
		case '>', ']':
			open := byte('<')
			if c == ']' {
				open = '['
			}
			if len(stack) == 0 || stack[len(stack)-1] != open {
				return nil, fmt.Errorf("unbalanced %q at offset %d", c, i)
			}
			stack = stack[:len(stack)-1]
		case ',':
			if len(stack) == 0 {
				pieces = append(pieces, str[start:i])
				start = i + 1
			}
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote")
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("unbalanced %q", stack[len(stack)-1])
	}
	pieces = append(pieces, str[start:])

	for i := range pieces {
		pieces[i] = strings.TrimSpace(pieces[i])
		if pieces[i] == "" {
			return nil, fmt.Errorf("empty element at position %d", i)
		}
	}
	return pieces, nil
}
