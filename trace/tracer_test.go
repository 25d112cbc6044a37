// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisabledTracer(t *testing.T) {
	require := require.New(t)

	config := NewDefaultConfig()
	tracer, err := New(&config)
	require.NoError(err)
	_, span := tracer.Start(context.Background(), "VM.Submit")
	require.False(span.IsRecording())
	span.End()
	require.NoError(tracer.Close())
}

func TestEnabledTracer(t *testing.T) {
	require := require.New(t)

	config := NewDefaultConfig()
	config.Enabled = true
	config.Version = "v0.0.1"
	tracer, err := New(&config)
	require.NoError(err)
	_, span := tracer.Start(context.Background(), "VM.Submit")
	require.True(span.IsRecording())
	span.End()
}

func TestConfigVerify(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		err    error
	}{
		{
			name:   "disabled skips checks",
			modify: func(c *Config) { c.Enabled = false; c.TraceSampleRate = 7 },
		},
		{
			name:   "valid",
			modify: func(*Config) {},
		},
		{
			name:   "sample rate above one",
			modify: func(c *Config) { c.TraceSampleRate = 1.5 },
			err:    ErrInvalidConfig,
		},
		{
			name:   "negative sample rate",
			modify: func(c *Config) { c.TraceSampleRate = -0.1 },
			err:    ErrInvalidConfig,
		},
		{
			name:   "missing app name",
			modify: func(c *Config) { c.AppName = "" },
			err:    ErrInvalidConfig,
		},
		{
			name:   "non http endpoint",
			modify: func(c *Config) { c.Endpoint = "udp://localhost:9411" },
			err:    ErrInvalidConfig,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := NewDefaultConfig()
			config.Enabled = true
			tt.modify(&config)
			require.ErrorIs(t, config.Verify(), tt.err)
		})
	}
}
