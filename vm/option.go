// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"github.com/ava-labs/avalanchego/utils/timer/mockable"

	"github.com/ava-labs/assetvault/chain"
	"github.com/ava-labs/assetvault/event"
	"github.com/ava-labs/assetvault/token"
)

type Option func(*VM)

// WithResultSubscriptions notifies [subs] of every accepted transaction.
func WithResultSubscriptions(subs ...event.Subscription[*chain.Result]) Option {
	return func(vm *VM) {
		vm.subscriptions = append(vm.subscriptions, subs...)
	}
}

func WithTokenProgram(program token.Program) Option {
	return func(vm *VM) {
		vm.tokenProgram = program
	}
}

// WithClock overrides the clock transaction expiries are checked against.
func WithClock(clock *mockable.Clock) Option {
	return func(vm *VM) {
		vm.clock = clock
	}
}
