// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"github.com/ava-labs/avalanchego/trace"

	oteltrace "go.opentelemetry.io/otel/trace"
)

var _ trace.Tracer = (*noOpTracer)(nil)

// noOpTracer records nothing. Spans it starts report !IsRecording.
type noOpTracer struct {
	oteltrace.Tracer
}

func (*noOpTracer) Close() error {
	return nil
}
