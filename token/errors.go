// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import "errors"

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrOwnerMismatch       = errors.New("actor does not own account")
	ErrMintMismatch        = errors.New("account mint mismatch")
	ErrAccountNotFound     = errors.New("token account not found")
	ErrAccountExists       = errors.New("token account already exists")
	ErrMintNotFound        = errors.New("mint not found")
	ErrMintExists          = errors.New("mint already exists")
)
