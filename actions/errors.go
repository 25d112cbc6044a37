// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the kind of every error caused by accounts that do
	// not relate to each other the way an operation requires.
	ErrValidation = errors.New("validation error")

	// ErrAuthorization is the kind of every error caused by a caller that
	// may not perform an operation.
	ErrAuthorization = errors.New("authorization error")

	ErrAlreadyInitialized  = fmt.Errorf("%w: vault already initialized", ErrValidation)
	ErrVaultNotInitialized = fmt.Errorf("%w: vault is not initialized", ErrValidation)
	ErrInvalidVaultAddress = fmt.Errorf("%w: vault address is not the derived vault address", ErrValidation)
	ErrAccountNotFound     = fmt.Errorf("%w: token account not found", ErrValidation)
	ErrNotAccountOwner     = fmt.Errorf("%w: signer does not own source account", ErrValidation)
	ErrMintMismatch        = fmt.Errorf("%w: accounts hold different mints", ErrValidation)
	ErrNotVaultAccount     = fmt.Errorf("%w: destination is not owned by the vault", ErrValidation)

	ErrManagerNotSigner     = fmt.Errorf("%w: manager did not sign", ErrAuthorization)
	ErrNotManager           = fmt.Errorf("%w: signer is not the vault manager", ErrAuthorization)
	ErrNoManager            = fmt.Errorf("%w: vault has no manager", ErrAuthorization)
	ErrVaultRecordMismatch  = fmt.Errorf("%w: referenced vault is not the derived vault", ErrAuthorization)
	ErrVaultAccountNotOwned = fmt.Errorf("%w: source is not owned by the vault", ErrAuthorization)
)
