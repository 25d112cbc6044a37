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

var _ chain.Action = (*MintTokens)(nil)

// MintTokens creates [Amount] new tokens in the token account [To]. Only the
// mint authority may sign it.
type MintTokens struct {
	Mint   codec.Address `json:"mint"`
	To     codec.Address `json:"to"`
	Amount uint64        `json:"amount"`
}

func (*MintTokens) GetTypeID() uint8 {
	return MintTokensID
}

func (m *MintTokens) StateKeys(codec.Address, chain.Rules) state.Keys {
	return state.Keys{
		string(storage.MintKey(m.Mint)):       state.Write,
		string(storage.TokenAccountKey(m.To)): state.Write,
	}
}

func (m *MintTokens) Execute(
	ctx context.Context,
	r chain.Rules,
	mu state.Mutable,
	actor codec.Address,
) (codec.Typed, error) {
	balance, err := r.GetTokenProgram().MintTo(ctx, mu, m.Mint, m.To, m.Amount, token.Actor(actor))
	if err != nil {
		return nil, err
	}
	return &MintTokensResult{Balance: balance}, nil
}

func (m *MintTokens) Marshal(p *codec.Packer) {
	p.PackAddress(m.Mint)
	p.PackAddress(m.To)
	p.PackUint64(m.Amount)
}

func UnmarshalMintTokens(p *codec.Packer) (chain.Action, error) {
	var mint MintTokens
	p.UnpackAddress(true, &mint.Mint)
	p.UnpackAddress(true, &mint.To)
	mint.Amount = p.UnpackUint64(true)
	return &mint, p.Err()
}
