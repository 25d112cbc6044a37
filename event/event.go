// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package event fans accepted transaction results out to subscribers.
package event

import (
	"context"
	"errors"
)

var (
	_ Subscription[struct{}] = SubscriptionFunc[struct{}]{}
	_ Subscription[struct{}] = (*Filter[struct{}])(nil)
)

// Subscription consumes events. Both methods return fatal errors only.
type Subscription[T any] interface {
	Accept(ctx context.Context, t T) error
	Close() error
}

type SubscriptionFunc[T any] struct {
	AcceptF func(ctx context.Context, t T) error
}

func (s SubscriptionFunc[T]) Accept(ctx context.Context, t T) error {
	return s.AcceptF(ctx, t)
}

func (SubscriptionFunc[_]) Close() error {
	return nil
}

// Filter forwards to Next only the events Match accepts.
type Filter[T any] struct {
	Match func(T) bool
	Next  Subscription[T]
}

func (f *Filter[T]) Accept(ctx context.Context, t T) error {
	if !f.Match(t) {
		return nil
	}
	return f.Next.Accept(ctx, t)
}

func (f *Filter[T]) Close() error {
	return f.Next.Close()
}

// NotifyAll delivers [e] to every subscription, even after one fails.
func NotifyAll[T any](ctx context.Context, e T, subs ...Subscription[T]) error {
	var errs []error
	for _, sub := range subs {
		if err := sub.Accept(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func CloseAll[T any](subs ...Subscription[T]) error {
	var errs []error
	for _, sub := range subs {
		if err := sub.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
