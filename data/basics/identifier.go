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

package basics

import "fmt"

// MaxIdentifierLength bounds module, function and struct names.
const MaxIdentifierLength = 255

// ValidateIdentifier checks that s is a Move identifier: a letter or underscore followed by
// letters, digits and underscores. A lone underscore is reserved.
func ValidateIdentifier(s string) error {
	if len(s) == 0 {
		return fmt.Errorf("empty identifier")
	}
	if len(s) > MaxIdentifierLength {
		return fmt.Errorf("identifier %.16q... exceeds %d bytes", s, MaxIdentifierLength)
	}
	if s == "_" {
		return fmt.Errorf("identifier %q is reserved", s)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return fmt.Errorf("invalid character %q in identifier %q", c, s)
		}
	}
	return nil
}
