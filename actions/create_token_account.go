// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/assetvault/chain"
	"github.com/ava-labs/assetvault/codec"
	"github.com/ava-labs/assetvault/state"
	"github.com/ava-labs/assetvault/storage"
	"github.com/ava-labs/assetvault/token"
)

var _ chain.Action = (*CreateTokenAccount)(nil)

// CreateTokenAccount opens the associated token account of [Owner] for
// [Mint]. Anyone may open an account for anyone, including for the vault.
type CreateTokenAccount struct {
	Owner codec.Address `json:"owner"`
	Mint  codec.Address `json:"mint"`
}

func (*CreateTokenAccount) GetTypeID() uint8 {
	return CreateTokenAccountID
}

func (c *CreateTokenAccount) StateKeys(codec.Address, chain.Rules) state.Keys {
	keys := state.Keys{
		string(storage.MintKey(c.Mint)): state.Read,
	}
	if account, err := token.AssociatedAddress(c.Owner, c.Mint); err == nil {
		keys.Add(string(storage.TokenAccountKey(account)), state.Allocate|state.Write)
	}
	return keys
}

func (c *CreateTokenAccount) Execute(
	ctx context.Context,
	r chain.Rules,
	mu state.Mutable,
	_ codec.Address,
) (codec.Typed, error) {
	account, err := token.AssociatedAddress(c.Owner, c.Mint)
	if err != nil {
		return nil, err
	}
	if err := r.GetTokenProgram().InitializeAccount(ctx, mu, account, c.Mint, c.Owner); err != nil {
		return nil, err
	}
	return &CreateTokenAccountResult{Account: account}, nil
}

func (c *CreateTokenAccount) Marshal(p *codec.Packer) {
	p.PackAddress(c.Owner)
	p.PackAddress(c.Mint)
}

func UnmarshalCreateTokenAccount(p *codec.Packer) (chain.Action, error) {
	var create CreateTokenAccount
	p.UnpackAddress(true, &create.Owner)
	p.UnpackAddress(true, &create.Mint)
	return &create, p.Err()
}
