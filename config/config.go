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

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/EastAgile/0l-txs/util/codecs"
)

// Local holds the per-data-directory settings of the transaction tools. Zero values in
// a config file are allowed: fields missing from the file keep their defaults.
type Local struct {
	// Version tracks the current version of the defaults so we can migrate old -> new
	Version uint32

	// MaxGasAmount is the gas budget used when a transaction does not name one.
	MaxGasAmount uint64

	// GasUnitPrice is the price per gas unit, in octas, used when a transaction does
	// not name one.
	GasUnitPrice uint64

	// ExpirationWindowSeconds is how long after construction a transaction stays valid.
	ExpirationWindowSeconds uint64

	// ChainID is the chain transactions are built for. 0 means it must be supplied on
	// every invocation.
	ChainID uint8

	// ABIDirectory holds module ABI documents named <address>::<module>.json, used to
	// type arguments. Relative paths are resolved against the data directory.
	ABIDirectory string

	// BaseLoggerDebugLevel is the logrus level: 0 panic, 1 fatal, 2 error, 3 warn,
	// 4 info, 5 debug.
	BaseLoggerDebugLevel uint32

	// LogFormatJSON switches log output to JSON lines.
	LogFormatJSON bool

	// LogFileName, when set, sends logs to this file in the data directory instead
	// of stderr. The file is archived to LogFileName.archive when it reaches
	// LogSizeLimit bytes.
	LogFileName  string
	LogSizeLimit uint64

	// DeadlockDetection: 1 enables, -1 disables, 0 leaves the build default.
	DeadlockDetection int

	// DeadlockDetectionThreshold is the lock wait, in seconds, reported as a deadlock.
	DeadlockDetectionThreshold int
}

// ConfigVersion is the version of the current defaults.
const ConfigVersion = uint32(1)

var defaultLocal = Local{
	Version:                    ConfigVersion,
	MaxGasAmount:               2000000,
	GasUnitPrice:               100,
	ExpirationWindowSeconds:    30,
	ChainID:                    0,
	ABIDirectory:               "abi",
	BaseLoggerDebugLevel:       3,
	LogFormatJSON:              false,
	LogFileName:                "",
	LogSizeLimit:               1073741824,
	DeadlockDetection:          0,
	DeadlockDetectionThreshold: 30,
}

// ConfigFilename is the name of the config.json file where we store per-data-directory settings
const ConfigFilename = "config.json"

// GetDefaultLocal returns a copy of the current defaultLocal config
func GetDefaultLocal() Local {
	return defaultLocal
}

// LoadConfigFromDisk returns a Local config structure based on merging the defaults
// with settings loaded from the config file from the custom dir.  If the custom file
// cannot be loaded, the default config is returned (with the error from loading the
// custom file).
func LoadConfigFromDisk(custom string) (c Local, err error) {
	return loadConfigFromFile(filepath.Join(custom, ConfigFilename))
}

func loadConfigFromFile(configFile string) (c Local, err error) {
	c = defaultLocal
	c, err = mergeConfigFromFile(configFile, c)
	if err != nil {
		return
	}
	err = c.Validate()
	return
}

func mergeConfigFromFile(configpath string, source Local) (Local, error) {
	err := codecs.LoadObjectFromFile(configpath, &source)
	return source, err
}

// Validate checks settings that would otherwise produce transactions the chain rejects.
func (cfg Local) Validate() error {
	if cfg.MaxGasAmount == 0 {
		return fmt.Errorf("MaxGasAmount must be positive")
	}
	if cfg.GasUnitPrice == 0 {
		return fmt.Errorf("GasUnitPrice must be positive")
	}
	if cfg.ExpirationWindowSeconds == 0 {
		return fmt.Errorf("ExpirationWindowSeconds must be positive")
	}
	if cfg.LogFileName != "" && cfg.LogSizeLimit == 0 {
		return fmt.Errorf("LogSizeLimit must be positive when LogFileName is set")
	}
	if cfg.BaseLoggerDebugLevel > 5 {
		return fmt.Errorf("BaseLoggerDebugLevel %d out of range 0-5", cfg.BaseLoggerDebugLevel)
	}
	return nil
}

// ResolveABIDirectory returns the ABI directory, relative to the data directory
// unless it is absolute.
func (cfg Local) ResolveABIDirectory(dataDir string) string {
	if cfg.ABIDirectory == "" || filepath.IsAbs(cfg.ABIDirectory) {
		return cfg.ABIDirectory
	}
	return filepath.Join(dataDir, cfg.ABIDirectory)
}

// SaveToDisk writes the Local settings into a root/ConfigFilename file
func (cfg Local) SaveToDisk(root string) error {
	configpath := filepath.Join(root, ConfigFilename)
	filename := os.ExpandEnv(configpath)
	return cfg.SaveToFile(filename)
}

// SaveToFile saves the config to a specific filename, allowing overriding the default name
func (cfg Local) SaveToFile(filename string) error {
	var alwaysInclude []string
	alwaysInclude = append(alwaysInclude, "Version")
	return codecs.SaveNonDefaultValuesToFile(filename, cfg, defaultLocal, alwaysInclude, true)
}
