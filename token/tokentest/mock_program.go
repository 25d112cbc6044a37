// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tokentest

import (
	"context"

	"github.com/ava-labs/assetvault/codec"
	"github.com/ava-labs/assetvault/state"
	"github.com/ava-labs/assetvault/token"
)

var _ token.Program = (*MockProgram)(nil)

// MockProgram delegates every call it has a hook for to [token.Standard].
type MockProgram struct {
	OnTransfer func(from codec.Address, to codec.Address, amount uint64, authority token.Authority) (uint64, uint64, error)

	Transfers int
}

func (*MockProgram) InitializeMint(ctx context.Context, mu state.Mutable, mint codec.Address, authority codec.Address, decimals uint8) error {
	return token.Standard{}.InitializeMint(ctx, mu, mint, authority, decimals)
}

func (*MockProgram) InitializeAccount(ctx context.Context, mu state.Mutable, account codec.Address, mint codec.Address, owner codec.Address) error {
	return token.Standard{}.InitializeAccount(ctx, mu, account, mint, owner)
}

func (*MockProgram) MintTo(ctx context.Context, mu state.Mutable, mint codec.Address, account codec.Address, amount uint64, authority token.Authority) (uint64, error) {
	return token.Standard{}.MintTo(ctx, mu, mint, account, amount, authority)
}

func (m *MockProgram) Transfer(ctx context.Context, mu state.Mutable, from codec.Address, to codec.Address, amount uint64, authority token.Authority) (uint64, uint64, error) {
	m.Transfers++
	if m.OnTransfer != nil {
		return m.OnTransfer(from, to, amount, authority)
	}
	return token.Standard{}.Transfer(ctx, mu, from, to, amount, authority)
}
