// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/assetvault/chain/chaintest"
	"github.com/ava-labs/assetvault/codec"
	"github.com/ava-labs/assetvault/codec/codectest"
	"github.com/ava-labs/assetvault/identity"
	"github.com/ava-labs/assetvault/state"
	"github.com/ava-labs/assetvault/token"
	"github.com/ava-labs/assetvault/token/tokentest"
)

func TestWithdrawTokens(t *testing.T) {
	rules := newRules(token.Standard{})

	unchanged := func(f *fixture) func(context.Context, *testing.T, state.Mutable) {
		return func(ctx context.Context, t *testing.T, mu state.Mutable) {
			require.Equal(t, uint64(500), balanceOf(ctx, t, mu, f.vaultAccount))
			require.Equal(t, uint64(0), balanceOf(ctx, t, mu, f.managerAccount))
		}
	}

	tests := []struct {
		name   string
		build  func(f *fixture) *WithdrawTokens
		actor  func(f *fixture) codec.Address
		output *WithdrawTokensResult
		err    error
		check  func(f *fixture) func(context.Context, *testing.T, state.Mutable)
	}{
		{
			name: "Withdraws",
			build: func(f *fixture) *WithdrawTokens {
				return &WithdrawTokens{Amount: 200, Vault: f.vault, VaultAccount: f.vaultAccount, Destination: f.managerAccount}
			},
			output: &WithdrawTokensResult{Amount: 200, VaultBalance: 300, DestinationBalance: 200},
			check: func(f *fixture) func(context.Context, *testing.T, state.Mutable) {
				return func(ctx context.Context, t *testing.T, mu state.Mutable) {
					require.Equal(t, uint64(300), balanceOf(ctx, t, mu, f.vaultAccount))
					require.Equal(t, uint64(200), balanceOf(ctx, t, mu, f.managerAccount))
				}
			},
		},
		{
			name: "EntireBalance",
			build: func(f *fixture) *WithdrawTokens {
				return &WithdrawTokens{Amount: 500, Vault: f.vault, VaultAccount: f.vaultAccount, Destination: f.managerAccount}
			},
			output: &WithdrawTokensResult{Amount: 500, VaultBalance: 0, DestinationBalance: 500},
		},
		{
			name: "AnyDestination",
			build: func(f *fixture) *WithdrawTokens {
				return &WithdrawTokens{Amount: 5, Vault: f.vault, VaultAccount: f.vaultAccount, Destination: f.depositorAccount}
			},
			output: &WithdrawTokensResult{Amount: 5, VaultBalance: 495, DestinationBalance: 5},
		},
		{
			name: "NotManager",
			build: func(f *fixture) *WithdrawTokens {
				return &WithdrawTokens{Amount: 200, Vault: f.vault, VaultAccount: f.vaultAccount, Destination: f.managerAccount}
			},
			actor: func(f *fixture) codec.Address { return f.depositor },
			err:   ErrNotManager,
			check: unchanged,
		},
		{
			name: "ReferencedVaultMismatch",
			build: func(f *fixture) *WithdrawTokens {
				return &WithdrawTokens{Amount: 200, Vault: codectest.NewRandomAddress(), VaultAccount: f.vaultAccount, Destination: f.managerAccount}
			},
			err:   ErrVaultRecordMismatch,
			check: unchanged,
		},
		{
			name: "SourceNotOwnedByVault",
			build: func(f *fixture) *WithdrawTokens {
				return &WithdrawTokens{Amount: 1, Vault: f.vault, VaultAccount: f.depositorAccount, Destination: f.managerAccount}
			},
			err:   ErrVaultAccountNotOwned,
			check: unchanged,
		},
		{
			name: "MintMismatch",
			build: func(f *fixture) *WithdrawTokens {
				return &WithdrawTokens{Amount: 1, Vault: f.vault, VaultAccount: f.vaultAccount, Destination: f.foreignAccount}
			},
			err:   ErrMintMismatch,
			check: unchanged,
		},
		{
			name: "InsufficientBalance",
			build: func(f *fixture) *WithdrawTokens {
				return &WithdrawTokens{Amount: 501, Vault: f.vault, VaultAccount: f.vaultAccount, Destination: f.managerAccount}
			},
			err:   token.ErrInsufficientBalance,
			check: unchanged,
		},
	}

	for _, tt := range tests {
		f, store := newFixture(t, 0, 500)
		actor := f.manager
		if tt.actor != nil {
			actor = tt.actor(f)
		}
		test := chaintest.ActionTest{
			Name:        tt.name,
			Action:      tt.build(f),
			Rules:       rules,
			State:       store,
			Actor:       actor,
			ExpectedErr: tt.err,
		}
		if tt.output != nil {
			test.ExpectedOutputs = tt.output
		}
		if tt.check != nil {
			test.Assertion = tt.check(f)
		}
		test.Run(context.Background(), t)
	}
}

func TestWithdrawTokensAuthorizationErrors(t *testing.T) {
	for _, err := range []error{
		ErrNotManager,
		ErrVaultRecordMismatch,
		ErrVaultAccountNotOwned,
		ErrManagerNotSigner,
	} {
		require.ErrorIs(t, err, ErrAuthorization)
		require.NotErrorIs(t, err, ErrValidation)
	}
}

func TestWithdrawTokensSignsAsVault(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	f, store := newFixture(t, 0, 500)

	var authority token.Authority
	program := &tokentest.MockProgram{
		OnTransfer: func(_ codec.Address, _ codec.Address, _ uint64, a token.Authority) (uint64, uint64, error) {
			authority = a
			return 0, 0, a.Authorize(f.vault)
		},
	}
	_, err := (&WithdrawTokens{
		Amount:       1,
		Vault:        f.vault,
		VaultAccount: f.vaultAccount,
		Destination:  f.managerAccount,
	}).Execute(ctx, newRules(program), store, f.manager)
	require.NoError(err)

	signer, ok := authority.(*identity.Signer)
	require.True(ok)
	require.Equal(f.vault, signer.Address())
	// A signer is rebuilt for every withdrawal and never reused.
	require.ErrorIs(signer.Authorize(f.vault), identity.ErrSignerConsumed)
}

func TestWithdrawTokensNotInitialized(t *testing.T) {
	require := require.New(t)
	f, _ := newFixture(t, 0, 500)

	_, err := (&WithdrawTokens{
		Amount:       1,
		Vault:        f.vault,
		VaultAccount: f.vaultAccount,
		Destination:  f.managerAccount,
	}).Execute(context.Background(), newRules(token.Standard{}), chaintest.NewInMemoryStore(), f.manager)
	require.ErrorIs(err, ErrNoManager)
	require.ErrorIs(err, ErrAuthorization)
	require.NotErrorIs(err, ErrValidation)
}
