// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

// Note: Registry will error during initialization if a duplicate ID is assigned. We explicitly assign IDs to avoid accidental remapping.
const (
	InitializeVaultID uint8 = 0
	DepositTokensID   uint8 = 1
	WithdrawTokensID  uint8 = 2

	CreateMintID         uint8 = 3
	CreateTokenAccountID uint8 = 4
	MintTokensID         uint8 = 5
)
