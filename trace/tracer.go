// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/ava-labs/avalanchego/trace"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/sdk/resource"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	exportTimeout = 10 * time.Second
	// Longer than [exportTimeout] so in-flight exports finish first.
	shutdownTimeout = 15 * time.Second

	DefaultEndpoint = "http://localhost:9411/api/v2/spans"
	DefaultAppName  = "assetvault"
)

type Config struct {
	Enabled bool `json:"enabled"`

	// Fraction of transactions to sample, clamped to [0, 1].
	TraceSampleRate float64 `json:"traceSampleRate"`

	// Zipkin collector the spans are exported to.
	Endpoint string `json:"endpoint"`

	AppName string `json:"appName"`
	Agent   string `json:"agent"`
	Version string `json:"version"`
}

func NewDefaultConfig() Config {
	return Config{
		TraceSampleRate: 1,
		Endpoint:        DefaultEndpoint,
		AppName:         DefaultAppName,
		Agent:           DefaultAppName,
	}
}

// Verify checks the fields an enabled tracer depends on.
func (c *Config) Verify() error {
	if !c.Enabled {
		return nil
	}
	if len(c.AppName) == 0 {
		return fmt.Errorf("%w: missing app name", ErrInvalidConfig)
	}
	if c.TraceSampleRate < 0 || c.TraceSampleRate > 1 {
		return fmt.Errorf("%w: sample rate %f not in [0, 1]", ErrInvalidConfig, c.TraceSampleRate)
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: endpoint %q is not http(s)", ErrInvalidConfig, c.Endpoint)
	}
	return nil
}

type tracer struct {
	oteltrace.Tracer

	tp *sdktrace.TracerProvider
}

func (t *tracer) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return t.tp.Shutdown(ctx)
}

// New returns a zipkin-backed tracer, or a no-op one when tracing is
// disabled.
func New(config *Config) (trace.Tracer, error) {
	if !config.Enabled {
		return &noOpTracer{
			Tracer: noop.NewTracerProvider().Tracer(config.AppName),
		}, nil
	}
	if err := config.Verify(); err != nil {
		return nil, err
	}

	exporter, err := zipkin.New(config.Endpoint)
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithExportTimeout(exportTimeout)),
		sdktrace.WithResource(
			resource.NewWithAttributes(
				semconv.SchemaURL,
				attribute.String("version", config.Version),
				semconv.ServiceNameKey.String(config.Agent),
			),
		),
		sdktrace.WithSampler(sdktrace.TraceIDRatioBased(config.TraceSampleRate)),
	)
	return &tracer{
		Tracer: tp.Tracer(config.AppName),
		tp:     tp,
	}, nil
}
