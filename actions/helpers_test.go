// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/assetvault/chain"
	"github.com/ava-labs/assetvault/chain/chaintest"
	"github.com/ava-labs/assetvault/codec"
	"github.com/ava-labs/assetvault/codec/codectest"
	"github.com/ava-labs/assetvault/identity"
	"github.com/ava-labs/assetvault/state"
	"github.com/ava-labs/assetvault/storage"
	"github.com/ava-labs/assetvault/token"
)

var programID = codec.MustParseAddress("hovazRyg1bRYjcb9qtyhYWCzx8CNNgeUDf3BqTzMym1")

func newRules(program token.Program) chain.Rules {
	return &chain.StaticRules{
		ProgramID:      programID,
		TokenProgram:   program,
		ValidityWindow: 60_000,
	}
}

// fixture is an initialized vault holding [vaultBalance] of [mint], and a
// depositor holding [depositorBalance] of the same mint.
type fixture struct {
	vault   codec.Address
	manager codec.Address

	mint      codec.Address
	otherMint codec.Address

	depositor        codec.Address
	depositorAccount codec.Address
	vaultAccount     codec.Address
	managerAccount   codec.Address
	// foreignAccount is owned by the depositor but holds [otherMint].
	foreignAccount codec.Address
}

func newFixture(t *testing.T, depositorBalance uint64, vaultBalance uint64) (*fixture, *chaintest.InMemoryStore) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()

	vault, _, err := identity.VaultAddress(programID)
	require.NoError(err)
	f := &fixture{
		vault:            vault,
		manager:          codectest.NewRandomAddress(),
		mint:             codectest.NewRandomAddress(),
		otherMint:        codectest.NewRandomAddress(),
		depositor:        codectest.NewRandomAddress(),
		depositorAccount: codectest.NewRandomAddress(),
		vaultAccount:     codectest.NewRandomAddress(),
		managerAccount:   codectest.NewRandomAddress(),
		foreignAccount:   codectest.NewRandomAddress(),
	}
	require.NoError(storage.SetVault(ctx, store, vault, &storage.VaultRecord{Manager: f.manager}))
	require.NoError(storage.SetMint(ctx, store, f.mint, &storage.Mint{
		Authority: f.manager,
		Supply:    depositorBalance + vaultBalance,
	}))
	require.NoError(storage.SetMint(ctx, store, f.otherMint, &storage.Mint{Authority: f.manager}))
	for addr, acct := range map[codec.Address]*storage.TokenAccount{
		f.depositorAccount: {Mint: f.mint, Owner: f.depositor, Amount: depositorBalance},
		f.vaultAccount:     {Mint: f.mint, Owner: vault, Amount: vaultBalance},
		f.managerAccount:   {Mint: f.mint, Owner: f.manager},
		f.foreignAccount:   {Mint: f.otherMint, Owner: f.depositor, Amount: depositorBalance},
	} {
		require.NoError(storage.SetTokenAccount(ctx, store, addr, acct))
	}
	return f, store
}

func balanceOf(ctx context.Context, t *testing.T, im state.Immutable, addr codec.Address) uint64 {
	acct, exists, err := storage.GetTokenAccount(ctx, im, addr)
	require.NoError(t, err)
	require.True(t, exists)
	return acct.Amount
}
