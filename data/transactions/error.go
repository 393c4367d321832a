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
	"fmt"
)

// InvalidIdentifierError reports a function identifier that is not of the form
// <address>::<module>::<function> with a valid address and identifiers.
type InvalidIdentifierError struct {
	Input  string
	Reason string
}

func (err *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid function id %q: %s", err.Input, err.Reason)
}

func makeInvalidIdentifierErrorf(input string, format string, args ...interface{}) *InvalidIdentifierError {
	return &InvalidIdentifierError{Input: input, Reason: fmt.Sprintf(format, args...)}
}

// SignatureMismatchError indicates an authenticator whose signature does not verify
// against the raw transaction.
type SignatureMismatchError struct {
	PublicKey string
}

func (err SignatureMismatchError) Error() string {
	return fmt.Sprintf("signature does not verify under public key %s", err.PublicKey)
}
