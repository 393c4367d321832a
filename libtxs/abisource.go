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
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/algorand/go-deadlock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/EastAgile/0l-txs/data/abi"
	"github.com/EastAgile/0l-txs/data/transactions"
	"github.com/EastAgile/0l-txs/protocol"
)

// ErrABINotFound is returned by an ABISource that has no document for a module.
var ErrABINotFound = errors.New("module ABI not found")

// ABISource supplies published module ABIs, typically fetched from a node.
type ABISource interface {
	ModuleABI(ctx context.Context, module transactions.ModuleID) (abi.MoveModuleABI, error)
}

// FileABISource reads module ABIs from a directory holding one <address>__<module>.json
// file per module. Imported documents are stored as the bare ABI object in canonical JSON.
type FileABISource struct {
	Dir string
}

// ModuleABIFilename returns the file name FileABISource uses for module. Addresses
// never contain '_', so the first "__" separates the address from the module name.
func ModuleABIFilename(module transactions.ModuleID) string {
	return module.Address.String() + "__" + module.Name + ".json"
}

func (s FileABISource) path(module transactions.ModuleID) string {
	return filepath.Join(s.Dir, ModuleABIFilename(module))
}

// ModuleABI implements ABISource.
func (s FileABISource) ModuleABI(ctx context.Context, module transactions.ModuleID) (abi.MoveModuleABI, error) {
	if err := ctx.Err(); err != nil {
		return abi.MoveModuleABI{}, err
	}
	lf, err := newLockedFile(s.path(module))
	if err != nil {
		return abi.MoveModuleABI{}, err
	}
	data, err := lf.read()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return abi.MoveModuleABI{}, fmt.Errorf("%s: %w", module, ErrABINotFound)
		}
		return abi.MoveModuleABI{}, err
	}
	parsed, err := abi.ParseModuleABI(data)
	if err != nil {
		return abi.MoveModuleABI{}, fmt.Errorf("%s: %w", s.path(module), err)
	}
	if parsed.Name != module.Name {
		return abi.MoveModuleABI{}, fmt.Errorf("%s: holds module %s, not %s", s.path(module), parsed.Name, module.Name)
	}
	return parsed, nil
}

// ImportModuleABI validates a module ABI document and stores it in the directory under
// the name derived from its own address and module name. changed is false when an
// equivalent document was already stored, in which case nothing is written.
func (s FileABISource) ImportModuleABI(data []byte) (module transactions.ModuleID, changed bool, err error) {
	parsed, err := abi.ParseModuleABI(data)
	if err != nil {
		return transactions.ModuleID{}, false, err
	}
	module, err = checkModuleABI(parsed)
	if err != nil {
		return transactions.ModuleID{}, false, err
	}

	existing, err := s.ModuleABI(context.Background(), module)
	if err == nil && cmp.Equal(existing, parsed, cmpopts.EquateEmpty()) {
		return module, false, nil
	}

	if err := os.MkdirAll(s.Dir, 0700); err != nil {
		return transactions.ModuleID{}, false, err
	}
	lf, err := newLockedFile(s.path(module))
	if err != nil {
		return transactions.ModuleID{}, false, err
	}
	if err := lf.write(protocol.EncodeJSON(&parsed), 0600); err != nil {
		return transactions.ModuleID{}, false, err
	}
	return module, true, nil
}

// checkModuleABI compiles every exposed function of a module and returns its id.
func checkModuleABI(parsed abi.MoveModuleABI) (transactions.ModuleID, error) {
	module, err := transactions.ParseModuleID(parsed.Address + "::" + parsed.Name)
	if err != nil {
		return transactions.ModuleID{}, err
	}
	for _, fn := range parsed.ExposedFunctions {
		if _, err := fn.Compile(); err != nil {
			return transactions.ModuleID{}, fmt.Errorf("%s: %w", module, err)
		}
	}
	return module, nil
}

// StaticABISource serves a fixed set of module ABIs.
type StaticABISource map[transactions.ModuleID]abi.MoveModuleABI

// MakeStaticABISource parses module ABI documents into a StaticABISource.
func MakeStaticABISource(documents ...[]byte) (StaticABISource, error) {
	source := make(StaticABISource, len(documents))
	for _, data := range documents {
		parsed, err := abi.ParseModuleABI(data)
		if err != nil {
			return nil, err
		}
		module, err := checkModuleABI(parsed)
		if err != nil {
			return nil, err
		}
		source[module] = parsed
	}
	return source, nil
}

// ModuleABI implements ABISource.
func (s StaticABISource) ModuleABI(ctx context.Context, module transactions.ModuleID) (abi.MoveModuleABI, error) {
	parsed, ok := s[module]
	if !ok {
		return abi.MoveModuleABI{}, fmt.Errorf("%s: %w", module, ErrABINotFound)
	}
	return parsed, nil
}

// ABICache memoizes the ABIs returned by an underlying source. Lookups that fail are
// not cached.
type ABICache struct {
	source ABISource

	mu      deadlock.Mutex
	modules map[transactions.ModuleID]abi.MoveModuleABI
}

// MakeABICache wraps source with a cache.
func MakeABICache(source ABISource) *ABICache {
	return &ABICache{
		source:  source,
		modules: make(map[transactions.ModuleID]abi.MoveModuleABI),
	}
}

// ModuleABI implements ABISource.
func (c *ABICache) ModuleABI(ctx context.Context, module transactions.ModuleID) (abi.MoveModuleABI, error) {
	c.mu.Lock()
	cached, ok := c.modules[module]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	fetched, err := c.source.ModuleABI(ctx, module)
	if err != nil {
		return abi.MoveModuleABI{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.modules[module] = fetched
	return fetched, nil
}
