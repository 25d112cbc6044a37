// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import (
	"context"
	"fmt"

	smath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/ava-labs/assetvault/codec"
	"github.com/ava-labs/assetvault/state"
	"github.com/ava-labs/assetvault/storage"
)

var _ Program = Standard{}

// Program is the token ledger that vault operations delegate balance moves
// to. Callers must include the keys of every account they pass in their
// declared state keys.
type Program interface {
	InitializeMint(ctx context.Context, mu state.Mutable, mint codec.Address, authority codec.Address, decimals uint8) error
	InitializeAccount(ctx context.Context, mu state.Mutable, account codec.Address, mint codec.Address, owner codec.Address) error
	MintTo(ctx context.Context, mu state.Mutable, mint codec.Address, account codec.Address, amount uint64, authority Authority) (uint64, error)
	Transfer(ctx context.Context, mu state.Mutable, from codec.Address, to codec.Address, amount uint64, authority Authority) (uint64, uint64, error)
}

// Standard keeps mints and accounts in [storage].
type Standard struct{}

func (Standard) InitializeMint(
	ctx context.Context,
	mu state.Mutable,
	mint codec.Address,
	authority codec.Address,
	decimals uint8,
) error {
	_, exists, err := storage.GetMint(ctx, mu, mint)
	if err != nil {
		return err
	}
	if exists {
		return ErrMintExists
	}
	return storage.SetMint(ctx, mu, mint, &storage.Mint{
		Authority: authority,
		Decimals:  decimals,
	})
}

func (Standard) InitializeAccount(
	ctx context.Context,
	mu state.Mutable,
	account codec.Address,
	mint codec.Address,
	owner codec.Address,
) error {
	_, exists, err := storage.GetMint(ctx, mu, mint)
	if err != nil {
		return err
	}
	if !exists {
		return ErrMintNotFound
	}
	_, exists, err = storage.GetTokenAccount(ctx, mu, account)
	if err != nil {
		return err
	}
	if exists {
		return ErrAccountExists
	}
	return storage.SetTokenAccount(ctx, mu, account, &storage.TokenAccount{
		Mint:  mint,
		Owner: owner,
	})
}

// MintTo creates [amount] new tokens in [account] and returns its new balance.
func (Standard) MintTo(
	ctx context.Context,
	mu state.Mutable,
	mint codec.Address,
	account codec.Address,
	amount uint64,
	authority Authority,
) (uint64, error) {
	m, exists, err := storage.GetMint(ctx, mu, mint)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrMintNotFound
	}
	acct, err := getAccount(ctx, mu, account)
	if err != nil {
		return 0, err
	}
	if acct.Mint != mint {
		return 0, ErrMintMismatch
	}
	if err := authority.Authorize(m.Authority); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	supply, err := smath.Add(m.Supply, amount)
	if err != nil {
		return 0, err
	}
	balance, err := smath.Add(acct.Amount, amount)
	if err != nil {
		return 0, err
	}
	m.Supply = supply
	acct.Amount = balance
	if err := storage.SetMint(ctx, mu, mint, m); err != nil {
		return 0, err
	}
	if err := storage.SetTokenAccount(ctx, mu, account, acct); err != nil {
		return 0, err
	}
	return balance, nil
}

// Transfer moves [amount] from [from] to [to] once [authority] approves the
// owner of [from]. It returns the resulting balances of both accounts. Nothing
// is written when it fails.
func (Standard) Transfer(
	ctx context.Context,
	mu state.Mutable,
	from codec.Address,
	to codec.Address,
	amount uint64,
	authority Authority,
) (uint64, uint64, error) {
	src, err := getAccount(ctx, mu, from)
	if err != nil {
		return 0, 0, err
	}
	dst, err := getAccount(ctx, mu, to)
	if err != nil {
		return 0, 0, err
	}
	if src.Mint != dst.Mint {
		return 0, 0, ErrMintMismatch
	}
	if err := authority.Authorize(src.Owner); err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	if src.Amount < amount {
		return 0, 0, fmt.Errorf("%w: have %d, need %d", ErrInsufficientBalance, src.Amount, amount)
	}
	if from == to {
		return src.Amount, dst.Amount, nil
	}
	srcBalance, err := smath.Sub(src.Amount, amount)
	if err != nil {
		return 0, 0, err
	}
	dstBalance, err := smath.Add(dst.Amount, amount)
	if err != nil {
		return 0, 0, err
	}
	src.Amount = srcBalance
	dst.Amount = dstBalance
	if err := storage.SetTokenAccount(ctx, mu, from, src); err != nil {
		return 0, 0, err
	}
	if err := storage.SetTokenAccount(ctx, mu, to, dst); err != nil {
		return 0, 0, err
	}
	return srcBalance, dstBalance, nil
}

func getAccount(ctx context.Context, im state.Immutable, addr codec.Address) (*storage.TokenAccount, error) {
	acct, exists, err := storage.GetTokenAccount(ctx, im, addr)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, addr)
	}
	return acct, nil
}
