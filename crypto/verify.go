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

import (
	"github.com/hdevalence/ed25519consensus"
)

// Verify verifies that some signature was produced by the holder of the secrets for
// the Hashable message. It applies the ZIP-215 validation rules, the same ones the
// chain's validators use.
func (v SignatureVerifier) Verify(message Hashable, sig Signature) bool {
	rep, err := HashRep(message)
	if err != nil {
		return false
	}
	return v.VerifyBytes(rep, sig)
}

// VerifyBytes verifies a signature over a message that is not domain separated by a
// HashID. Caller is responsible for domain separation.
func (v SignatureVerifier) VerifyBytes(message []byte, sig Signature) bool {
	return ed25519consensus.Verify(v[:], message, sig[:])
}
