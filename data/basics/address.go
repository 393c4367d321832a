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

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
)

// AddressLength is the byte length of an account address.
const AddressLength = 32

type (
	// Address is a unique identifier of an account, and the publisher of Move modules.
	Address [AddressLength]byte
)

// Well known addresses.
var (
	// ZeroAddress is the all-zero address 0x0.
	ZeroAddress = Address{}
	// CoreCodeAddress publishes the framework modules (0x1).
	CoreCodeAddress = Address{AddressLength - 1: 0x1}
)

// ParseAddress parses a 0x-prefixed hex address. Short forms such as 0x1 are left-padded
// with zeros. At most 64 hex digits are accepted.
func ParseAddress(s string) (Address, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return Address{}, fmt.Errorf("address %q must start with 0x", s)
	}
	digits := s[2:]
	if len(digits) == 0 {
		return Address{}, fmt.Errorf("address %q has no hex digits", s)
	}
	if len(digits) > 2*AddressLength {
		return Address{}, fmt.Errorf("address %q is longer than %d bytes", s, AddressLength)
	}
	if len(digits)%2 != 0 {
		digits = "0" + digits
	}
	decoded, err := hex.DecodeString(digits)
	if err != nil {
		return Address{}, fmt.Errorf("address %q is not valid hex: %v", s, err)
	}
	var addr Address
	copy(addr[AddressLength-len(decoded):], decoded)
	return addr, nil
}

// IsSpecial reports whether the address is one of 0x0 through 0xf, which are
// displayed in short form.
func (addr Address) IsSpecial() bool {
	return bytes.Equal(addr[:AddressLength-1], ZeroAddress[:AddressLength-1]) && addr[AddressLength-1] < 0x10
}

// IsZero checks if an address is the zero value.
func (addr Address) IsZero() bool {
	return addr == ZeroAddress
}

// String returns the canonical representation: short form for special addresses,
// all 64 hex digits otherwise.
func (addr Address) String() string {
	if addr.IsSpecial() {
		return fmt.Sprintf("0x%x", addr[AddressLength-1])
	}
	return addr.StringLong()
}

// StringLong returns all 64 hex digits with a 0x prefix.
func (addr Address) StringLong() string {
	return "0x" + hex.EncodeToString(addr[:])
}

// MarshalText returns the address string as an array of bytes
func (addr Address) MarshalText() ([]byte, error) {
	return []byte(addr.String()), nil
}

// UnmarshalText initializes the Address from an array of bytes.
func (addr *Address) UnmarshalText(text []byte) error {
	address, err := ParseAddress(string(text))
	if err == nil {
		*addr = address
		return nil
	}
	return err
}

// MarshalBCS writes the address as its 32 raw bytes, without a length prefix.
func (addr Address) MarshalBCS() ([]byte, error) {
	out := make([]byte, AddressLength)
	copy(out, addr[:])
	return out, nil
}
