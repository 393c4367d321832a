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

package protocol

// HashID is a domain separation prefix for an object type that might be hashed or signed.
// The chain hashes the salt itself (SHA3-256 of the HashID) and prepends that digest to the
// BCS bytes of the object, so a signature over a raw transaction can never be replayed as a
// signature over any other object type.
type HashID string

// Hash IDs for specific object types, in lexicographic order to avoid dups.
const (
	RawTransaction HashID = "APTOS::RawTransaction"
	Transaction    HashID = "APTOS::Transaction"
)
