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

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/EastAgile/0l-txs/data/abi"
	"github.com/EastAgile/0l-txs/data/transactions"
	"github.com/EastAgile/0l-txs/libtxs"
)

func init() {
	abiCmd.AddCommand(abiImportCmd)
	abiCmd.AddCommand(abiShowCmd)
}

var abiCmd = &cobra.Command{
	Use:   "abi",
	Short: "Manage the module ABIs used to type arguments",
	Args:  validateNoPosArgsFn,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.HelpFunc()(cmd, args)
	},
}

// abiImportLockFilename serializes imports into one ABI directory.
const abiImportLockFilename = "import.lock"

func ensureABIDirectory() libtxs.FileABISource {
	cfg := ensureConfig()
	return libtxs.FileABISource{Dir: cfg.ResolveABIDirectory(resolveDataDir())}
}

var abiImportCmd = &cobra.Command{
	Use:   "import [file]...",
	Short: "Save module ABI documents (node module JSON) into the abi directory",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		source := ensureABIDirectory()
		if err := os.MkdirAll(source.Dir, 0700); err != nil {
			reportErrorf(errorABIDirectory, source.Dir, err)
		}
		fileLock := flock.New(filepath.Join(source.Dir, abiImportLockFilename))
		locked, err := fileLock.TryLock()
		if err != nil {
			reportErrorf(errorABIDirectory, source.Dir, err)
		}
		if !locked {
			reportErrorf(errorABIImportRunning, source.Dir)
		}
		defer fileLock.Unlock()

		for _, filename := range args {
			data, err := readFile(filename)
			if err != nil {
				reportErrorf(errorReadFile, filename, err)
			}
			module, changed, err := source.ImportModuleABI(data)
			if err != nil {
				reportErrorf(errorReadABI, filename, err)
			}
			if !changed {
				reportInfof(infoABIUnchanged, module)
				continue
			}
			reportInfof(infoABIImported, module, source.Dir)
		}
	},
}

// describeFunction renders a function declaration on one line.
func describeFunction(fn abi.FunctionABI) string {
	var sb strings.Builder
	if fn.IsEntry {
		sb.WriteString("entry ")
	}
	if fn.IsView {
		sb.WriteString("#[view] ")
	}
	sb.WriteString(fn.Name)
	if fn.NumTypeParams > 0 {
		params := make([]string, fn.NumTypeParams)
		for i := range params {
			params[i] = abi.MakeGenericType(uint16(i)).String()
		}
		sb.WriteString("<" + strings.Join(params, ", ") + ">")
	}
	sb.WriteString("(" + joinTypes(fn.Params) + ")")
	if len(fn.Returns) > 0 {
		sb.WriteString(": " + joinTypes(fn.Returns))
	}
	return sb.String()
}

func joinTypes(types []abi.TypeTag) string {
	s := make([]string, len(types))
	for i, t := range types {
		s[i] = t.String()
	}
	return strings.Join(s, ", ")
}

var abiShowCmd = &cobra.Command{
	Use:   "show <address>::<module>",
	Short: "List the functions of a saved module ABI",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		module, err := transactions.ParseModuleID(args[0])
		if err != nil {
			reportErrorf(errorReadABI, args[0], err)
		}
		parsed, err := ensureABIDirectory().ModuleABI(context.Background(), module)
		if err != nil {
			reportErrorf(errorReadABI, args[0], err)
		}
		for _, fn := range parsed.ExposedFunctions {
			compiled, err := fn.Compile()
			if err != nil {
				reportErrorf(errorReadABI, args[0], err)
			}
			reportInfoln(describeFunction(compiled))
		}
	},
}
