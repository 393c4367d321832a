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

import (
	"fmt"
	"strconv"
	"strings"
)

// ChainID identifies the network a transaction is valid on. It is part of every raw
// transaction, so a transaction signed for one network cannot be replayed on another.
type ChainID uint8

// Named chains known to the node software.
const (
	Mainnet ChainID = 1
	Testnet ChainID = 2
	Devnet  ChainID = 3
	Testing ChainID = 4
)

var chainNames = map[string]ChainID{
	"mainnet": Mainnet,
	"testnet": Testnet,
	"devnet":  Devnet,
	"testing": Testing,
}

// ParseChainID accepts either a chain name or its numeric id.
func ParseChainID(s string) (ChainID, error) {
	s = strings.TrimSpace(s)
	if id, ok := chainNames[strings.ToLower(s)]; ok {
		return id, nil
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("unknown chain id %q: %w", s, err)
	}
	if n == 0 {
		return 0, fmt.Errorf("chain id 0 is reserved")
	}
	return ChainID(n), nil
}

func (c ChainID) String() string {
	for name, id := range chainNames {
		if id == c {
			return name
		}
	}
	return strconv.Itoa(int(c))
}
