// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/assetvault/chain"
	"github.com/ava-labs/assetvault/codec"
	"github.com/ava-labs/assetvault/identity"
	"github.com/ava-labs/assetvault/state"
	"github.com/ava-labs/assetvault/storage"
	"github.com/ava-labs/assetvault/token"
)

var _ chain.Action = (*DepositTokens)(nil)

// DepositTokens moves [Amount] from a token account owned by the signer into
// the token account of the vault.
type DepositTokens struct {
	Amount           uint64        `json:"amount"`
	DepositorAccount codec.Address `json:"depositorAccount"`
	VaultAccount     codec.Address `json:"vaultAccount"`
}

func (*DepositTokens) GetTypeID() uint8 {
	return DepositTokensID
}

func (d *DepositTokens) StateKeys(_ codec.Address, r chain.Rules) state.Keys {
	keys := state.Keys{
		string(storage.TokenAccountKey(d.DepositorAccount)): state.Write,
		string(storage.TokenAccountKey(d.VaultAccount)):     state.Write,
	}
	if vault, _, err := identity.VaultAddress(r.GetProgramID()); err == nil {
		keys.Add(string(storage.VaultKey(vault)), state.Read)
	}
	return keys
}

func (d *DepositTokens) Execute(
	ctx context.Context,
	r chain.Rules,
	mu state.Mutable,
	actor codec.Address,
) (codec.Typed, error) {
	vault, _, err := identity.VaultAddress(r.GetProgramID())
	if err != nil {
		return nil, err
	}
	_, exists, err := storage.GetVault(ctx, mu, vault)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrVaultNotInitialized
	}

	src, err := getTokenAccount(ctx, mu, d.DepositorAccount)
	if err != nil {
		return nil, err
	}
	dst, err := getTokenAccount(ctx, mu, d.VaultAccount)
	if err != nil {
		return nil, err
	}
	if src.Owner != actor {
		return nil, ErrNotAccountOwner
	}
	if src.Mint != dst.Mint {
		return nil, ErrMintMismatch
	}
	if dst.Owner != vault {
		return nil, ErrNotVaultAccount
	}

	depositorBalance, vaultBalance, err := r.GetTokenProgram().Transfer(
		ctx,
		mu,
		d.DepositorAccount,
		d.VaultAccount,
		d.Amount,
		token.Actor(actor),
	)
	if err != nil {
		return nil, err
	}
	return &DepositTokensResult{
		Amount:           d.Amount,
		DepositorBalance: depositorBalance,
		VaultBalance:     vaultBalance,
	}, nil
}

func (d *DepositTokens) Marshal(p *codec.Packer) {
	p.PackUint64(d.Amount)
	p.PackAddress(d.DepositorAccount)
	p.PackAddress(d.VaultAccount)
}

func UnmarshalDepositTokens(p *codec.Packer) (chain.Action, error) {
	var deposit DepositTokens
	deposit.Amount = p.UnpackUint64(false)
	p.UnpackAddress(true, &deposit.DepositorAccount)
	p.UnpackAddress(true, &deposit.VaultAccount)
	return &deposit, p.Err()
}
