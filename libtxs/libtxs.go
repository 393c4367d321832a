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

package libtxs

import (
	"time"

	"github.com/EastAgile/0l-txs/config"
	"github.com/EastAgile/0l-txs/logging"
	"github.com/EastAgile/0l-txs/protocol"
)

// Clock returns the current wall time. Builders take one so expirations are testable.
type Clock func() time.Time

// Builder assembles entry function transactions and view calls from their textual
// form. A Builder holds no mutable state and is safe for concurrent use.
type Builder struct {
	cfg   config.Local
	abis  ABISource
	clock Clock
	log   logging.Logger
}

// MakeBuilder creates a Builder using cfg for gas and expiration defaults. abis may be
// nil, in which case argument types are always inferred from the literals.
func MakeBuilder(cfg config.Local, abis ABISource, log logging.Logger) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.Base()
	}
	return &Builder{
		cfg:   cfg,
		abis:  abis,
		clock: time.Now,
		log:   log,
	}, nil
}

// WithClock returns a copy of the builder that reads the time from clock.
func (b *Builder) WithClock(clock Clock) *Builder {
	nb := *b
	nb.clock = clock
	return &nb
}

// chainID picks the explicit chain id, or the configured one.
func (b *Builder) chainID(explicit protocol.ChainID) (protocol.ChainID, error) {
	if explicit != 0 {
		return explicit, nil
	}
	if b.cfg.ChainID != 0 {
		return protocol.ChainID(b.cfg.ChainID), nil
	}
	return 0, errNoChainID
}
