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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EastAgile/0l-txs/test/partitiontest"
)

func TestDefaultLocal(t *testing.T) {
	partitiontest.PartitionTest(t)

	cfg := GetDefaultLocal()
	require.Equal(t, uint64(2000000), cfg.MaxGasAmount)
	require.Equal(t, uint64(100), cfg.GasUnitPrice)
	require.Equal(t, uint64(30), cfg.ExpirationWindowSeconds)
	require.Equal(t, uint8(0), cfg.ChainID)
	require.Equal(t, uint32(3), cfg.BaseLoggerDebugLevel)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFromDiskMissing(t *testing.T) {
	partitiontest.PartitionTest(t)

	cfg, err := LoadConfigFromDisk(t.TempDir())
	require.True(t, os.IsNotExist(err))
	require.Equal(t, GetDefaultLocal(), cfg)
}

func TestLoadConfigMergesDefaults(t *testing.T) {
	partitiontest.PartitionTest(t)

	dir := t.TempDir()
	content := `{"GasUnitPrice": 150, "ChainID": 1}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFilename), []byte(content), 0600))

	cfg, err := LoadConfigFromDisk(dir)
	require.NoError(t, err)
	require.Equal(t, uint64(150), cfg.GasUnitPrice)
	require.Equal(t, uint8(1), cfg.ChainID)
	require.Equal(t, GetDefaultLocal().MaxGasAmount, cfg.MaxGasAmount)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	partitiontest.PartitionTest(t)

	for _, content := range []string{
		`{"GasUnitPrice": 0}`,
		`{"MaxGasAmount": 0}`,
		`{"BaseLoggerDebugLevel": 9}`,
		`{"NoSuchField": 1}`,
		`{"ChainID": 300}`,
		`not json`,
	} {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFilename), []byte(content), 0600))
		_, err := LoadConfigFromDisk(dir)
		require.Error(t, err, content)
	}
}

func TestSaveToDiskRoundTrip(t *testing.T) {
	partitiontest.PartitionTest(t)

	dir := t.TempDir()
	cfg := GetDefaultLocal()
	cfg.MaxGasAmount = 5000
	cfg.ChainID = 4
	require.NoError(t, cfg.SaveToDisk(dir))

	content, err := os.ReadFile(filepath.Join(dir, ConfigFilename))
	require.NoError(t, err)
	require.Contains(t, string(content), "MaxGasAmount")
	require.Contains(t, string(content), "Version")
	require.NotContains(t, string(content), "GasUnitPrice")

	loaded, err := LoadConfigFromDisk(dir)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestResolveABIDirectory(t *testing.T) {
	partitiontest.PartitionTest(t)

	cfg := GetDefaultLocal()
	require.Equal(t, filepath.Join("/data", "abi"), cfg.ResolveABIDirectory("/data"))
	cfg.ABIDirectory = "/abs/abi"
	require.Equal(t, "/abs/abi", cfg.ResolveABIDirectory("/data"))
	cfg.ABIDirectory = ""
	require.Equal(t, "", cfg.ResolveABIDirectory("/data"))
}

func TestVersionString(t *testing.T) {
	partitiontest.PartitionTest(t)

	v := GetCurrentVersion()
	require.Equal(t, VersionMajor, v.Major)
	require.Contains(t, FormatVersionAndLicense(), v.String())
}
