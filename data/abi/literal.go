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
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/EastAgile/0l-txs/data/basics"
)

// LiteralKind is the syntactic form of an untyped literal.
type LiteralKind uint8

const (
	// NumberLiteral is a decimal integer, or a hex integer carrying a width suffix.
	NumberLiteral LiteralKind = iota
	// HexLiteral is an unsuffixed 0x.. token. It is an address or a hex integer
	// depending on the type it is resolved against.
	HexLiteral
	// BoolLiteral is `true` or `false`.
	BoolLiteral
	// AddressLiteral is an @-prefixed address.
	AddressLiteral
	// BytesLiteral is x"hex" or b"text".
	BytesLiteral
	// StringLiteral is "text".
	StringLiteral
	// VectorLiteral is [..] or vector[..].
	VectorLiteral
)

func (k LiteralKind) String() string {
	switch k {
	case NumberLiteral:
		return "number"
	case HexLiteral:
		return "hex"
	case BoolLiteral:
		return "bool"
	case AddressLiteral:
		return "address"
	case BytesLiteral:
		return "bytes"
	case StringLiteral:
		return "string"
	case VectorLiteral:
		return "vector"
	}
	return "unknown"
}

// Literal is one node of the untyped argument AST produced by ParseLiterals.
type Literal struct {
	Kind LiteralKind
	// Text is the source token, trimmed.
	Text string

	// Digits and Base hold a Number or Hex literal with prefix, suffix and
	// underscore separators removed.
	Digits string
	Base   int
	// Suffix is the explicit width (u8..u256) when HasSuffix is set.
	Suffix    TypeTag
	HasSuffix bool

	Bool    bool
	Address basics.Address
	// Bytes holds the payload of Bytes literals and the text of String literals.
	Bytes []byte
	Elems []Literal
}

// widthSuffixes is ordered so that longer suffixes are tried first.
var widthSuffixes = []struct {
	text    string
	bitSize uint16
}{
	{"u128", 128},
	{"u256", 256},
	{"u16", 16},
	{"u32", 32},
	{"u64", 64},
	{"u8", 8},
}

// ParseLiterals parses a comma separated argument string into untyped literals.
// Commas inside brackets or quotes do not split. An empty string yields no literals.
func ParseLiterals(str string) ([]Literal, error) {
	pieces, err := splitTopLevel(str)
	if err != nil {
		return nil, makeParseErrorf(str, "%v", err)
	}
	res := make([]Literal, len(pieces))
	for i, piece := range pieces {
		res[i], err = ParseLiteral(piece)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// ParseLiteral parses a single literal token.
func ParseLiteral(str string) (Literal, error) {
	s := strings.TrimSpace(str)
	lit := Literal{Text: s}
	switch {
	case s == "":
		return Literal{}, makeParseErrorf(str, "empty literal")
	case s == "true" || s == "false":
		lit.Kind = BoolLiteral
		lit.Bool = s == "true"
		return lit, nil
	case strings.HasPrefix(s, `x"`):
		content, err := quotedContent(s, 1)
		if err != nil {
			return Literal{}, err
		}
		lit.Kind = BytesLiteral
		lit.Bytes, err = hex.DecodeString(content)
		if err != nil {
			return Literal{}, makeParseErrorf(s, "malformed hex: %v", err)
		}
		return lit, nil
	case strings.HasPrefix(s, `b"`):
		text, err := unquote(s, 1)
		if err != nil {
			return Literal{}, err
		}
		lit.Kind = BytesLiteral
		lit.Bytes = []byte(text)
		return lit, nil
	case strings.HasPrefix(s, `"`):
		text, err := unquote(s, 0)
		if err != nil {
			return Literal{}, err
		}
		lit.Kind = StringLiteral
		lit.Bytes = []byte(text)
		return lit, nil
	case strings.HasPrefix(s, "["), strings.HasPrefix(s, "vector["):
		return parseVectorLiteral(s)
	case strings.HasPrefix(s, "@"):
		addr, err := basics.ParseAddress(s[1:])
		if err != nil {
			return Literal{}, makeParseErrorf(s, "%v", err)
		}
		lit.Kind = AddressLiteral
		lit.Address = addr
		return lit, nil
	case len(s) > 0 && s[0] >= '0' && s[0] <= '9':
		return parseNumberLiteral(s)
	}
	return Literal{}, makeParseErrorf(s, "unknown token")
}

// quotedContent returns the text between the quotes of s, the opening quote being
// at index open. No escapes are interpreted.
func quotedContent(s string, open int) (string, error) {
	if len(s) < open+2 || s[len(s)-1] != '"' {
		return "", makeParseErrorf(s, "unterminated quote")
	}
	content := s[open+1 : len(s)-1]
	if strings.Contains(content, `"`) {
		return "", makeParseErrorf(s, "unexpected quote")
	}
	return content, nil
}

func unquote(s string, open int) (string, error) {
	if len(s) < open+2 || s[len(s)-1] != '"' {
		return "", makeParseErrorf(s, "unterminated quote")
	}
	text, err := strconv.Unquote(s[open:])
	if err != nil {
		return "", makeParseErrorf(s, "malformed string: %v", err)
	}
	return text, nil
}

func parseVectorLiteral(s string) (Literal, error) {
	body := strings.TrimPrefix(s, "vector")
	if !strings.HasPrefix(body, "[") || !strings.HasSuffix(body, "]") {
		return Literal{}, makeParseErrorf(s, "unbalanced brackets")
	}
	pieces, err := splitTopLevel(body[1 : len(body)-1])
	if err != nil {
		return Literal{}, makeParseErrorf(s, "%v", err)
	}
	lit := Literal{Kind: VectorLiteral, Text: s, Elems: make([]Literal, len(pieces))}
	for i, piece := range pieces {
		lit.Elems[i], err = ParseLiteral(piece)
		if err != nil {
			return Literal{}, err
		}
	}
	return lit, nil
}

func parseNumberLiteral(s string) (Literal, error) {
	lit := Literal{Kind: NumberLiteral, Text: s, Base: 10}
	body := s
	if strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X") {
		lit.Base = 16
		body = body[2:]
	}

	for _, suffix := range widthSuffixes {
		if strings.HasSuffix(body, suffix.text) {
			body = strings.TrimSuffix(body[:len(body)-len(suffix.text)], "_")
			lit.Suffix = mustUintType(suffix.bitSize)
			lit.HasSuffix = true
			break
		}
	}

	digits, ok := stripSeparators(body, lit.Base)
	if !ok {
		return Literal{}, makeParseErrorf(s, "malformed number")
	}
	lit.Digits = digits
	if lit.Base == 16 && !lit.HasSuffix {
		lit.Kind = HexLiteral
	}
	return lit, nil
}

// stripSeparators validates digits in the given base, allowing single underscores
// between digits, and returns them without the underscores.
func stripSeparators(body string, base int) (string, bool) {
	if body == "" || body[0] == '_' || body[len(body)-1] == '_' || strings.Contains(body, "__") {
		return "", false
	}
	digits := strings.ReplaceAll(body, "_", "")
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		switch {
		case c >= '0' && c <= '9':
		case base == 16 && (c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'):
		default:
			return "", false
		}
	}
	return digits, true
}
