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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/algorand/go-deadlock"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/EastAgile/0l-txs/config"
	"github.com/EastAgile/0l-txs/libtxs"
	"github.com/EastAgile/0l-txs/logging"
	"github.com/EastAgile/0l-txs/protocol"
)

var log = logging.Base()

var dataDir string

var logLevel string

var versionCheck bool

// stdoutFilenameValue and stdinFileNameValue name the standard streams in file flags.
const stdoutFilenameValue = "-"
const stdinFileNameValue = "-"

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(licenseCmd)
	rootCmd.Flags().BoolVarP(&versionCheck, "version", "v", false, "Display current build version and exit")

	// transaction.go
	rootCmd.AddCommand(generateTransactionCmd)

	// transfer.go
	rootCmd.AddCommand(transferCoinsCmd)

	// view.go
	rootCmd.AddCommand(viewCmd)

	// account.go
	rootCmd.AddCommand(generateLocalAccountCmd)

	// args.go
	rootCmd.AddCommand(encodeArgsCmd)

	// abi.go
	rootCmd.AddCommand(abiCmd)

	// config.go
	rootCmd.AddCommand(initConfigCmd)

	rootCmd.PersistentFlags().StringVarP(&dataDir, "datadir", "d", "", "Data directory holding config.json and the abi directory (default $TXS_DATA, or the current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level (panic, fatal, error, warn, info, debug)")
}

var rootCmd = &cobra.Command{
	Use:   "txs",
	Short: "Build, sign and inspect Move transactions offline",
	Long:  `txs turns a function id, type arguments and Move literals into a BCS encoded, ed25519 signed transaction, and builds and decodes view function calls. It never contacts a node: sender state is passed on the command line.`,
	Args:  validateNoPosArgsFn,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(ensureConfig())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeLogOutput()
	},
	Run: func(cmd *cobra.Command, args []string) {
		if versionCheck {
			fmt.Println(config.FormatVersionAndLicense())
			return
		}
		cmd.HelpFunc()(cmd, args)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the build version",
	Args:  validateNoPosArgsFn,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.FormatVersionAndLicense())
	},
}

var licenseCmd = &cobra.Command{
	Use:   "license",
	Short: "Display license information",
	Args:  validateNoPosArgsFn,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.GetLicenseInfo())
	},
}

func validateNoPosArgsFn(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return errors.New(errorNoPositionalArgs)
	}
	return nil
}

func resolveDataDir() string {
	if dataDir != "" {
		return dataDir
	}
	if env := os.Getenv("TXS_DATA"); env != "" {
		return env
	}
	return "."
}

// loadConfig reads config.json from dir. A missing file gives the defaults.
func loadConfig(dir string) (config.Local, error) {
	cfg, err := config.LoadConfigFromDisk(dir)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return config.GetDefaultLocal(), nil
	}
	return cfg, err
}

func ensureConfig() config.Local {
	cfg, err := loadConfig(resolveDataDir())
	if err != nil {
		reportErrorf(errorConfig, err)
	}
	return cfg
}

var logOutput io.WriteCloser

func setupLogging(cfg config.Local) {
	log.SetLevel(logging.Level(cfg.BaseLoggerDebugLevel))
	if logLevel != "" {
		lvl, err := logging.ParseLevel(logLevel)
		if err != nil {
			reportErrorf(errorLogLevel, logLevel, err)
		}
		log.SetLevel(lvl)
	}
	if cfg.LogFormatJSON {
		log.SetJSONFormatter()
	}
	if cfg.LogFileName != "" {
		live := filepath.Join(resolveDataDir(), cfg.LogFileName)
		writer, err := logging.MakeCyclicFileWriter(live, live+".archive", cfg.LogSizeLimit)
		if err != nil {
			reportErrorf(errorLogFile, live, err)
		}
		log.SetOutput(writer)
		logOutput = writer
	}
	setupDeadlockDetection(cfg)
}

// setupDeadlockDetection configures the deadlock detector guarding the ABI cache.
func setupDeadlockDetection(cfg config.Local) {
	switch {
	case cfg.DeadlockDetection > 0:
		deadlock.Opts.Disable = false
	case cfg.DeadlockDetection < 0:
		deadlock.Opts.Disable = true
	default:
		deadlock.Opts.Disable = config.DefaultDeadlock != "enable"
	}
	if !deadlock.Opts.Disable {
		deadlock.Opts.DeadlockTimeout = time.Second * time.Duration(cfg.DeadlockDetectionThreshold)
		deadlock.Opts.LogBuf = logWriter{log}
	}
}

// logWriter forwards the deadlock detector's report to the logger.
type logWriter struct {
	logging.Logger
}

func (w logWriter) Write(p []byte) (int, error) {
	w.Logger.Error(string(p))
	return len(p), nil
}

// abiSourceFor gives the ABI source used by the builder: a single module document when
// abiFile is set, otherwise the configured ABI directory.
func abiSourceFor(cfg config.Local, abiFile string) (libtxs.ABISource, error) {
	if abiFile != "" {
		data, err := readFile(abiFile)
		if err != nil {
			return nil, err
		}
		source, err := libtxs.MakeStaticABISource(data)
		if err != nil {
			return nil, err
		}
		return source, nil
	}
	dir := cfg.ResolveABIDirectory(resolveDataDir())
	if dir == "" {
		return nil, nil
	}
	return libtxs.MakeABICache(libtxs.FileABISource{Dir: dir}), nil
}

func ensureBuilder(cfg config.Local, abiFile string) *libtxs.Builder {
	source, err := abiSourceFor(cfg, abiFile)
	if err != nil {
		reportErrorf(errorReadABI, abiFile, err)
	}
	b, err := libtxs.MakeBuilder(cfg, source, log)
	if err != nil {
		reportErrorf(errorConfig, err)
	}
	return b
}

func closeLogOutput() {
	if logOutput != nil {
		logOutput.Close()
	}
}

var (
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
)

func reportInfoln(args ...interface{}) {
	fmt.Println(args...)
}

func reportInfof(format string, args ...interface{}) {
	fmt.Println(infoColor.Sprintf(format, args...))
}

func reportWarnf(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, warnColor.Sprintf("Warning: "+format, args...))
}

func reportErrorf(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, errorColor.Sprintf(format, args...))
	closeLogOutput()
	os.Exit(1)
}

// writeJSON renders obj with the canonical JSON handle, followed by a newline.
func writeJSON(w io.Writer, obj interface{}) error {
	if err := protocol.NewJSONEncoder(w).Encode(obj); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// writeFile is a wrapper of os.WriteFile which considers the special
// case of stdout filename
func writeFile(filename string, data []byte, perm os.FileMode) error {
	if filename == stdoutFilenameValue {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(filename, data, perm)
}

// readFile is a wrapper of os.ReadFile which considers the
// special case of stdin filename
func readFile(filename string) ([]byte, error) {
	if filename == stdinFileNameValue {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(filename)
}
