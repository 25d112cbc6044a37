// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package event

import (
	"context"
	"sync"
)

var _ Subscription[struct{}] = (*Recorder[struct{}])(nil)

// Recorder keeps every event it accepts, in order.
type Recorder[T any] struct {
	l      sync.Mutex
	events []T
	closed bool
}

func (r *Recorder[T]) Accept(_ context.Context, t T) error {
	r.l.Lock()
	defer r.l.Unlock()

	if r.closed {
		return ErrClosed
	}
	r.events = append(r.events, t)
	return nil
}

func (r *Recorder[T]) Close() error {
	r.l.Lock()
	defer r.l.Unlock()

	r.closed = true
	return nil
}

func (r *Recorder[T]) Events() []T {
	r.l.Lock()
	defer r.l.Unlock()

	return append([]T(nil), r.events...)
}
