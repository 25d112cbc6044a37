// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ava-labs/assetvault/codec"
	"github.com/ava-labs/assetvault/pebble"
	"github.com/ava-labs/assetvault/trace"
)

const (
	// DefaultProgramID is the identity the vault address is derived under
	// unless configured otherwise.
	DefaultProgramID = "hovazRyg1bRYjcb9qtyhYWCzx8CNNgeUDf3BqTzMym1"

	defaultDataDir        = ".assetvault"
	defaultValidityWindow = 60_000 // ms
)

type Config struct {
	ProgramID      string `json:"programID"`
	ValidityWindow int64  `json:"validityWindow"`

	// Storage
	DataDir string        `json:"dataDir"`
	Pebble  pebble.Config `json:"pebble"`

	// Logging
	LogLevel logging.Level `json:"logLevel"`
	// LogDir enables rotated file logging when set.
	LogDir string `json:"logDir"`

	// Tracing
	Trace trace.Config `json:"trace"`

	programID codec.Address
}

func New(b []byte) (*Config, error) {
	c := &Config{}
	c.setDefault()
	if len(b) > 0 {
		if err := json.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config %s: %w", string(b), err)
		}
	}
	programID, err := codec.ParseAddress(c.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid program ID %q", err, c.ProgramID)
	}
	c.programID = programID
	if c.ValidityWindow <= 0 {
		return nil, fmt.Errorf("%w: validity window must be positive", ErrInvalidConfig)
	}
	if err := c.Trace.Verify(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads the config at [path]. An empty [path] yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return New(nil)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(b)
}

func (c *Config) setDefault() {
	c.ProgramID = DefaultProgramID
	c.ValidityWindow = defaultValidityWindow
	c.DataDir = defaultDataDir
	c.Pebble = pebble.NewDefaultConfig()
	c.LogLevel = logging.Info
	c.Trace = trace.NewDefaultConfig()
	c.Trace.Agent = "vault-cli"
}

func (c *Config) GetProgramID() codec.Address {
	return c.programID
}
