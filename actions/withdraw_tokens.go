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
)

var _ chain.Action = (*WithdrawTokens)(nil)

// WithdrawTokens moves [Amount] out of the token account of the vault. The
// signer must be the recorded manager; the transfer itself is authorized by
// the vault address.
type WithdrawTokens struct {
	Amount uint64 `json:"amount"`
	// Vault must be the address derived from the program ID.
	Vault        codec.Address `json:"vault"`
	VaultAccount codec.Address `json:"vaultAccount"`
	Destination  codec.Address `json:"destination"`
}

func (*WithdrawTokens) GetTypeID() uint8 {
	return WithdrawTokensID
}

func (w *WithdrawTokens) StateKeys(_ codec.Address, r chain.Rules) state.Keys {
	keys := state.Keys{
		string(storage.TokenAccountKey(w.VaultAccount)): state.Write,
		string(storage.TokenAccountKey(w.Destination)):  state.Write,
	}
	if vault, _, err := identity.VaultAddress(r.GetProgramID()); err == nil {
		keys.Add(string(storage.VaultKey(vault)), state.Read)
	}
	return keys
}

func (w *WithdrawTokens) Execute(
	ctx context.Context,
	r chain.Rules,
	mu state.Mutable,
	actor codec.Address,
) (codec.Typed, error) {
	programID := r.GetProgramID()
	vault, bump, err := identity.VaultAddress(programID)
	if err != nil {
		return nil, err
	}
	if w.Vault != vault {
		return nil, ErrVaultRecordMismatch
	}
	record, exists, err := storage.GetVault(ctx, mu, vault)
	if err != nil {
		return nil, err
	}
	// No record means no manager, so no signer may withdraw.
	if !exists {
		return nil, ErrNoManager
	}
	if record.Manager != actor {
		return nil, ErrNotManager
	}

	src, err := getTokenAccount(ctx, mu, w.VaultAccount)
	if err != nil {
		return nil, err
	}
	dst, err := getTokenAccount(ctx, mu, w.Destination)
	if err != nil {
		return nil, err
	}
	if src.Owner != vault {
		return nil, ErrVaultAccountNotOwned
	}
	if src.Mint != dst.Mint {
		return nil, ErrMintMismatch
	}

	signer, err := identity.SignAs(programID, bump, []byte(identity.VaultSeed))
	if err != nil {
		return nil, err
	}
	vaultBalance, destinationBalance, err := r.GetTokenProgram().Transfer(
		ctx,
		mu,
		w.VaultAccount,
		w.Destination,
		w.Amount,
		signer,
	)
	if err != nil {
		return nil, err
	}
	return &WithdrawTokensResult{
		Amount:             w.Amount,
		VaultBalance:       vaultBalance,
		DestinationBalance: destinationBalance,
	}, nil
}

func (w *WithdrawTokens) Marshal(p *codec.Packer) {
	p.PackUint64(w.Amount)
	p.PackAddress(w.Vault)
	p.PackAddress(w.VaultAccount)
	p.PackAddress(w.Destination)
}

func UnmarshalWithdrawTokens(p *codec.Packer) (chain.Action, error) {
	var withdraw WithdrawTokens
	withdraw.Amount = p.UnpackUint64(false)
	p.UnpackAddress(true, &withdraw.Vault)
	p.UnpackAddress(true, &withdraw.VaultAccount)
	p.UnpackAddress(true, &withdraw.Destination)
	return &withdraw, p.Err()
}
