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

var _ chain.Action = (*CreateMint)(nil)

// CreateMint creates a mint whose authority is the signer. [Nonce] lets one
// authority create several mints.
type CreateMint struct {
	Decimals uint8  `json:"decimals"`
	Nonce    uint64 `json:"nonce"`
}

func (*CreateMint) GetTypeID() uint8 {
	return CreateMintID
}

func (c *CreateMint) StateKeys(actor codec.Address, _ chain.Rules) state.Keys {
	mint, err := token.MintAddress(actor, c.Nonce)
	if err != nil {
		return state.Keys{}
	}
	return state.Keys{
		string(storage.MintKey(mint)): state.Allocate | state.Write,
	}
}

func (c *CreateMint) Execute(
	ctx context.Context,
	r chain.Rules,
	mu state.Mutable,
	actor codec.Address,
) (codec.Typed, error) {
	mint, err := token.MintAddress(actor, c.Nonce)
	if err != nil {
		return nil, err
	}
	if err := r.GetTokenProgram().InitializeMint(ctx, mu, mint, actor, c.Decimals); err != nil {
		return nil, err
	}
	return &CreateMintResult{Mint: mint}, nil
}

func (c *CreateMint) Marshal(p *codec.Packer) {
	p.PackByte(c.Decimals)
	p.PackUint64(c.Nonce)
}

func UnmarshalCreateMint(p *codec.Packer) (chain.Action, error) {
	var create CreateMint
	create.Decimals = p.UnpackByte()
	create.Nonce = p.UnpackUint64(false)
	return &create, p.Err()
}
