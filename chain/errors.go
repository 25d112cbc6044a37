// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "errors"

var (
	ErrInvalidObject     = errors.New("invalid object")
	ErrNoActions         = errors.New("transaction has no actions")
	ErrTooManyActions    = errors.New("too many actions")
	ErrTimestampTooLate  = errors.New("timestamp too late")
	ErrTimestampTooEarly = errors.New("timestamp too early")
	ErrAuthFailed        = errors.New("auth failed")
	ErrDuplicateTx       = errors.New("duplicate transaction")
	ErrNotSigned         = errors.New("transaction is not signed")
)
