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
	"crypto/ed25519"
	"encoding/hex"
	"os"
	"strings"

	"github.com/EastAgile/0l-txs/data/basics"
)

// Sizes of ed25519 key material and signatures.
const (
	SeedSize       = ed25519.SeedSize
	PublicKeySize  = ed25519.PublicKeySize
	PrivateKeySize = ed25519.PrivateKeySize
	SignatureSize  = ed25519.SignatureSize
)

// ed25519SingleKeyScheme is the authentication scheme byte appended to a public key
// when deriving its authentication key.
const ed25519SingleKeyScheme byte = 0x00

type (
	// Seed is the 32 bytes an ed25519 key pair is derived from. This is what
	// wallets and key files call the private key.
	Seed [SeedSize]byte

	// PublicKey is an ed25519 public key.
	PublicKey [PublicKeySize]byte

	// Signature is an ed25519 signature.
	Signature [SignatureSize]byte

	// SignatureVerifier is the public half of a signing key pair.
	SignatureVerifier = PublicKey
)

// SignatureSecrets are used by an entity to produce unforgeable signatures over
// a message.
type SignatureSecrets struct {
	SignatureVerifier
	sk ed25519.PrivateKey
}

// GenerateSignatureSecrets creates SignatureSecrets from a source of entropy.
func GenerateSignatureSecrets(seed Seed) *SignatureSecrets {
	sk := ed25519.NewKeyFromSeed(seed[:])
	s := &SignatureSecrets{sk: sk}
	copy(s.SignatureVerifier[:], sk.Public().(ed25519.PublicKey))
	return s
}

// GenerateNewSignatureSecrets creates SignatureSecrets from a fresh random seed.
func GenerateNewSignatureSecrets() *SignatureSecrets {
	var seed Seed
	RandBytes(seed[:])
	return GenerateSignatureSecrets(seed)
}

// ParsePrivateKey decodes hex key material, with or without a 0x prefix. Either the
// 32-byte seed or the 64-byte expanded key (seed followed by public key) is accepted;
// for the latter the embedded public key must match the seed.
func ParsePrivateKey(text string) (*SignatureSecrets, error) {
	return parsePrivateKey("", text)
}

// LoadPrivateKeyFile reads a private key in the ParsePrivateKey format from a file.
func LoadPrivateKeyFile(path string) (*SignatureSecrets, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, makeInvalidKeyErrorf(path, "%v", err)
	}
	return parsePrivateKey(path, string(contents))
}

func parsePrivateKey(source, text string) (*SignatureSecrets, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(strings.TrimPrefix(text, "0x"), "0X")
	if text == "" {
		return nil, makeInvalidKeyErrorf(source, "empty key")
	}
	raw, err := hex.DecodeString(text)
	if err != nil {
		return nil, makeInvalidKeyErrorf(source, "not hex encoded: %v", err)
	}
	var seed Seed
	switch len(raw) {
	case SeedSize:
		copy(seed[:], raw)
		return GenerateSignatureSecrets(seed), nil
	case PrivateKeySize:
		copy(seed[:], raw[:SeedSize])
		s := GenerateSignatureSecrets(seed)
		if string(s.SignatureVerifier[:]) != string(raw[SeedSize:]) {
			return nil, makeInvalidKeyErrorf(source, "public key half does not match the seed")
		}
		return s, nil
	default:
		return nil, makeInvalidKeyErrorf(source, "expected %d or %d bytes, got %d", SeedSize, PrivateKeySize, len(raw))
	}
}

// Seed returns the seed the secrets were derived from.
func (s *SignatureSecrets) Seed() Seed {
	var seed Seed
	copy(seed[:], s.sk.Seed())
	return seed
}

// Sign produces a cryptographic Signature of a Hashable message, given
// cryptographic secrets.
func (s *SignatureSecrets) Sign(message Hashable) (Signature, error) {
	rep, err := HashRep(message)
	if err != nil {
		return Signature{}, err
	}
	return s.SignBytes(rep), nil
}

// SignBytes signs a message directly, without first hashing.
// Caller is responsible for domain separation.
func (s *SignatureSecrets) SignBytes(message []byte) Signature {
	var sig Signature
	copy(sig[:], ed25519.Sign(s.sk, message))
	return sig
}

// AuthenticationKey derives the authentication key of a single ed25519 public key. For a
// freshly created account this is also its address.
func AuthenticationKey(pk PublicKey) basics.Address {
	buf := make([]byte, 0, PublicKeySize+1)
	buf = append(buf, pk[:]...)
	buf = append(buf, ed25519SingleKeyScheme)
	return basics.Address(Hash(buf))
}

// String returns the public key as 0x-prefixed hex.
func (pk PublicKey) String() string {
	return "0x" + hex.EncodeToString(pk[:])
}

// String returns the signature as 0x-prefixed hex.
func (sig Signature) String() string {
	return "0x" + hex.EncodeToString(sig[:])
}

// Blank tests to see if the given signature contains only zeros
func (sig *Signature) Blank() bool {
	return *sig == Signature{}
}

// MarshalBCS encodes the public key as a length-prefixed byte vector.
func (pk PublicKey) MarshalBCS() ([]byte, error) {
	return append([]byte{PublicKeySize}, pk[:]...), nil
}

// MarshalBCS encodes the signature as a length-prefixed byte vector.
func (sig Signature) MarshalBCS() ([]byte, error) {
	return append([]byte{SignatureSize}, sig[:]...), nil
}
