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
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/EastAgile/0l-txs/protocol"
)

// DigestSize is the number of bytes in the preferred hash Digest used here.
const DigestSize = 32

// Digest represents a 32-byte value holding the SHA3-256 of some data.
type Digest [DigestSize]byte

// String returns the digest as 0x-prefixed hex.
func (d Digest) String() string {
	return "0x" + hex.EncodeToString(d[:])
}

// IsZero return true if the digest contains only zeros, false otherwise
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// Hash computes the SHA3-256 digest of data.
func Hash(data []byte) Digest {
	return sha3.Sum256(data)
}

// Hashable is an interface implemented by an object that can be represented
// with a sequence of bytes to be hashed or signed, together with a type ID
// to distinguish different types of objects.
type Hashable interface {
	ToBeHashed() (protocol.HashID, []byte)
}

// HashIDPrefix returns the salt the chain prepends for objects of type hashid: the
// SHA3-256 of the hashid itself.
func HashIDPrefix(hashid protocol.HashID) Digest {
	return Hash([]byte(hashid))
}

// HashRep appends the correct hashid prefix before the message to be hashed or signed.
func HashRep(h Hashable) ([]byte, error) {
	hashid, data := h.ToBeHashed()
	if data == nil {
		return nil, fmt.Errorf("%s: nothing to hash", hashid)
	}
	prefix := HashIDPrefix(hashid)
	return append(prefix[:], data...), nil
}

// HashObj computes a hash of a Hashable object and its type
func HashObj(h Hashable) (Digest, error) {
	rep, err := HashRep(h)
	if err != nil {
		return Digest{}, err
	}
	return Hash(rep), nil
}

// RandBytes fills the provided structure with a set of random bytes
func RandBytes(buf []byte) {
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
}
