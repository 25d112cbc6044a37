// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/near/borsh-go"

	"github.com/ava-labs/assetvault/codec"
	"github.com/ava-labs/assetvault/state"
)

// Mint describes a fungible token.
type Mint struct {
	Authority codec.Address
	Supply    uint64
	Decimals  uint8
}

// TokenAccount holds a balance of a single mint on behalf of [Owner]. Only
// [Owner] can authorize moving funds out of it.
type TokenAccount struct {
	Mint   codec.Address
	Owner  codec.Address
	Amount uint64
}

func GetMint(
	ctx context.Context,
	im state.Immutable,
	addr codec.Address,
) (*Mint, bool, error) {
	var m Mint
	exists, err := getRecord(ctx, im, MintKey(addr), &m)
	if !exists || err != nil {
		return nil, exists, err
	}
	return &m, true, nil
}

func SetMint(
	ctx context.Context,
	mu state.Mutable,
	addr codec.Address,
	m *Mint,
) error {
	return setRecord(ctx, mu, MintKey(addr), *m)
}

func GetTokenAccount(
	ctx context.Context,
	im state.Immutable,
	addr codec.Address,
) (*TokenAccount, bool, error) {
	var a TokenAccount
	exists, err := getRecord(ctx, im, TokenAccountKey(addr), &a)
	if !exists || err != nil {
		return nil, exists, err
	}
	return &a, true, nil
}

func SetTokenAccount(
	ctx context.Context,
	mu state.Mutable,
	addr codec.Address,
	a *TokenAccount,
) error {
	return setRecord(ctx, mu, TokenAccountKey(addr), *a)
}

func getRecord(ctx context.Context, im state.Immutable, key []byte, dest any) (bool, error) {
	v, err := im.GetValue(ctx, key)
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := borsh.Deserialize(dest, v); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return true, nil
}

func setRecord(ctx context.Context, mu state.Mutable, key []byte, record any) error {
	v, err := borsh.Serialize(record)
	if err != nil {
		return err
	}
	return mu.Insert(ctx, key, v)
}

// HasTx reports whether the transaction [id] was already accepted.
func HasTx(ctx context.Context, im state.Immutable, id ids.ID) (bool, error) {
	_, err := im.GetValue(ctx, TxKey(id))
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// StoreTx marks the transaction [id] as accepted.
func StoreTx(ctx context.Context, mu state.Mutable, id ids.ID) error {
	return mu.Insert(ctx, TxKey(id), []byte{1})
}
