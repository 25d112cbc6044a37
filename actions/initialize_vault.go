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

var _ chain.Action = (*InitializeVault)(nil)

// InitializeVault records [Manager] as the only identity allowed to withdraw
// from the vault. The manager must sign the transaction.
type InitializeVault struct {
	// Vault must be the address derived from the program ID.
	Vault   codec.Address `json:"vault"`
	Manager codec.Address `json:"manager"`
}

func (*InitializeVault) GetTypeID() uint8 {
	return InitializeVaultID
}

func (*InitializeVault) StateKeys(_ codec.Address, r chain.Rules) state.Keys {
	vault, _, err := identity.VaultAddress(r.GetProgramID())
	if err != nil {
		return state.Keys{}
	}
	return state.Keys{
		string(storage.VaultKey(vault)): state.Allocate | state.Write,
	}
}

func (i *InitializeVault) Execute(
	ctx context.Context,
	r chain.Rules,
	mu state.Mutable,
	actor codec.Address,
) (codec.Typed, error) {
	vault, bump, err := identity.VaultAddress(r.GetProgramID())
	if err != nil {
		return nil, err
	}
	if i.Manager != actor {
		return nil, ErrManagerNotSigner
	}
	if i.Vault != vault {
		return nil, ErrInvalidVaultAddress
	}
	_, exists, err := storage.GetVault(ctx, mu, vault)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyInitialized
	}
	if err := storage.SetVault(ctx, mu, vault, &storage.VaultRecord{Manager: i.Manager}); err != nil {
		return nil, err
	}
	return &InitializeVaultResult{
		Vault:   vault,
		Bump:    bump,
		Manager: i.Manager,
	}, nil
}

func (i *InitializeVault) Marshal(p *codec.Packer) {
	p.PackAddress(i.Vault)
	p.PackAddress(i.Manager)
}

func UnmarshalInitializeVault(p *codec.Packer) (chain.Action, error) {
	var init InitializeVault
	p.UnpackAddress(true, &init.Vault)
	p.UnpackAddress(true, &init.Manager)
	return &init, p.Err()
}
