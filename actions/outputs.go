// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "github.com/ava-labs/assetvault/codec"

var (
	_ codec.Typed = (*InitializeVaultResult)(nil)
	_ codec.Typed = (*DepositTokensResult)(nil)
	_ codec.Typed = (*WithdrawTokensResult)(nil)
	_ codec.Typed = (*CreateMintResult)(nil)
	_ codec.Typed = (*CreateTokenAccountResult)(nil)
	_ codec.Typed = (*MintTokensResult)(nil)
)

type InitializeVaultResult struct {
	Vault   codec.Address `json:"vault"`
	Bump    uint8         `json:"bump"`
	Manager codec.Address `json:"manager"`
}

func (*InitializeVaultResult) GetTypeID() uint8 {
	return InitializeVaultID
}

type DepositTokensResult struct {
	Amount           uint64 `json:"amount"`
	DepositorBalance uint64 `json:"depositorBalance"`
	VaultBalance     uint64 `json:"vaultBalance"`
}

func (*DepositTokensResult) GetTypeID() uint8 {
	return DepositTokensID
}

type WithdrawTokensResult struct {
	Amount             uint64 `json:"amount"`
	VaultBalance       uint64 `json:"vaultBalance"`
	DestinationBalance uint64 `json:"destinationBalance"`
}

func (*WithdrawTokensResult) GetTypeID() uint8 {
	return WithdrawTokensID
}

type CreateMintResult struct {
	Mint codec.Address `json:"mint"`
}

func (*CreateMintResult) GetTypeID() uint8 {
	return CreateMintID
}

type CreateTokenAccountResult struct {
	Account codec.Address `json:"account"`
}

func (*CreateTokenAccountResult) GetTypeID() uint8 {
	return CreateTokenAccountID
}

type MintTokensResult struct {
	Balance uint64 `json:"balance"`
}

func (*MintTokensResult) GetTypeID() uint8 {
	return MintTokensID
}
