// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/assetvault/codec"
	"github.com/ava-labs/assetvault/pebble"
)

func TestDefaults(t *testing.T) {
	require := require.New(t)

	c, err := New(nil)
	require.NoError(err)
	require.Equal(codec.MustParseAddress(DefaultProgramID), c.GetProgramID())
	require.Equal(logging.Info, c.LogLevel)
	require.Equal(defaultDataDir, c.DataDir)
	require.True(c.Pebble.Sync)
	require.False(c.Trace.Enabled)
}

func TestOverrides(t *testing.T) {
	require := require.New(t)
	programID := codec.Address{1, 2, 3}

	c, err := New([]byte(`{"programID":"` + programID.String() + `","logLevel":"debug","dataDir":"/tmp/v","pebble":{"sync":false}}`))
	require.NoError(err)
	require.Equal(programID, c.GetProgramID())
	require.Equal(logging.Debug, c.LogLevel)
	require.Equal("/tmp/v", c.DataDir)
	require.False(c.Pebble.Sync)
	// Unset nested fields keep their defaults.
	require.Equal(pebble.NewDefaultConfig().MaxOpenFiles, c.Pebble.MaxOpenFiles)
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name string
		b    string
	}{
		{
			name: "malformed json",
			b:    "{",
		},
		{
			name: "bad program id",
			b:    `{"programID":"not-base58-0OIl"}`,
		},
		{
			name: "non-positive validity window",
			b:    `{"validityWindow":0}`,
		},
		{
			name: "invalid trace sample rate",
			b:    `{"trace":{"enabled":true,"traceSampleRate":2}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New([]byte(tt.b))
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	require := require.New(t)
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(os.WriteFile(path, []byte(`{"validityWindow":5000}`), 0o600))

	c, err := Load(path)
	require.NoError(err)
	require.Equal(int64(5000), c.ValidityWindow)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(err, os.ErrNotExist)
}
