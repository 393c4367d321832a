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

package crypto

import "fmt"

// InvalidKeyError is returned when private key material cannot be decoded into an
// ed25519 key.
type InvalidKeyError struct {
	Source string
	Reason string
}

func (err *InvalidKeyError) Error() string {
	if err.Source == "" {
		return fmt.Sprintf("invalid private key: %s", err.Reason)
	}
	return fmt.Sprintf("invalid private key from %s: %s", err.Source, err.Reason)
}

func makeInvalidKeyErrorf(source string, format string, args ...interface{}) *InvalidKeyError {
	return &InvalidKeyError{Source: source, Reason: fmt.Sprintf(format, args...)}
}
