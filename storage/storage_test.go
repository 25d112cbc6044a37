// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/assetvault/codec/codectest"
	"github.com/ava-labs/assetvault/keys"
	"github.com/ava-labs/assetvault/state"
	"github.com/ava-labs/assetvault/tstate"
)

func TestKeysAreDistinctAndValid(t *testing.T) {
	require := require.New(t)
	addr := codectest.NewRandomAddress()

	vk := VaultKey(addr)
	mk := MintKey(addr)
	ak := TokenAccountKey(addr)
	tk := TxKey(ids.GenerateTestID())

	for _, k := range [][]byte{vk, mk, ak, tk} {
		require.True(keys.Valid(k))
	}
	require.NotEqual(vk, mk)
	require.NotEqual(mk, ak)
	require.Equal(vaultPrefix, vk[0])
	require.Equal(tokenAccountPrefix, ak[0])

	chunks, ok := keys.MaxChunks(ak)
	require.True(ok)
	require.Equal(TokenAccountChunks, chunks)
}

func TestVaultRecordLayout(t *testing.T) {
	require := require.New(t)
	manager := codectest.NewRandomAddress()

	b, err := (&VaultRecord{Manager: manager}).Marshal()
	require.NoError(err)
	require.Len(b, VaultRecordSize)
	require.Equal(accountDiscriminator("VaultData"), b[:discriminatorLen])
	require.Equal(manager[:], b[discriminatorLen:])

	r, err := UnmarshalVaultRecord(b)
	require.NoError(err)
	require.Equal(manager, r.Manager)
}

func TestUnmarshalVaultRecordRejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
	}{
		{
			name: "empty",
			b:    nil,
		},
		{
			name: "short",
			b:    make([]byte, VaultRecordSize-1),
		},
		{
			name: "wrong discriminator",
			b:    make([]byte, VaultRecordSize),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalVaultRecord(tt.b)
			require.ErrorIs(t, err, ErrInvalidRecord)
		})
	}
}

func newView(ks ...[]byte) *tstate.TStateView {
	scope := state.Keys{}
	for _, k := range ks {
		scope.Add(string(k), state.All)
	}
	return tstate.New(len(ks)).NewView(scope, map[string][]byte{})
}

func TestVaultRoundTripThroughState(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	vault := codectest.NewRandomAddress()
	manager := codectest.NewRandomAddress()
	view := newView(VaultKey(vault))

	_, exists, err := GetVault(ctx, view, vault)
	require.NoError(err)
	require.False(exists)

	require.NoError(SetVault(ctx, view, vault, &VaultRecord{Manager: manager}))
	r, exists, err := GetVault(ctx, view, vault)
	require.NoError(err)
	require.True(exists)
	require.Equal(manager, r.Manager)
}

func TestTokenRecordsThroughState(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mintAddr := codectest.NewRandomAddress()
	acctAddr := codectest.NewRandomAddress()
	view := newView(MintKey(mintAddr), TokenAccountKey(acctAddr))

	_, exists, err := GetMint(ctx, view, mintAddr)
	require.NoError(err)
	require.False(exists)

	mint := &Mint{Authority: codectest.NewRandomAddress(), Supply: 1000, Decimals: 9}
	require.NoError(SetMint(ctx, view, mintAddr, mint))
	gotMint, exists, err := GetMint(ctx, view, mintAddr)
	require.NoError(err)
	require.True(exists)
	require.Equal(mint, gotMint)

	acct := &TokenAccount{Mint: mintAddr, Owner: codectest.NewRandomAddress(), Amount: 500}
	require.NoError(SetTokenAccount(ctx, view, acctAddr, acct))
	gotAcct, exists, err := GetTokenAccount(ctx, view, acctAddr)
	require.NoError(err)
	require.True(exists)
	require.Equal(acct, gotAcct)
}

func TestStoreTx(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	id := ids.GenerateTestID()
	view := newView(TxKey(id))

	seen, err := HasTx(ctx, view, id)
	require.NoError(err)
	require.False(seen)

	require.NoError(StoreTx(ctx, view, id))
	seen, err = HasTx(ctx, view, id)
	require.NoError(err)
	require.True(seen)
}
