// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package identity

import (
	"errors"
	"fmt"
)

var (
	// ErrDerivation is the kind of every error that prevents an address
	// from being derived. It indicates a configuration problem, not a
	// runtime condition.
	ErrDerivation = errors.New("derivation error")

	ErrMaxSeedsExceeded      = fmt.Errorf("%w: too many seeds", ErrDerivation)
	ErrMaxSeedLengthExceeded = fmt.Errorf("%w: seed is too long", ErrDerivation)
	ErrOnCurve               = fmt.Errorf("%w: address must fall off the curve", ErrDerivation)
	ErrNoViableBump          = fmt.Errorf("%w: unable to find a viable program address bump seed", ErrDerivation)

	ErrSignerConsumed = errors.New("signer has already authorized a transfer")
	ErrSignerMismatch = errors.New("signer does not own account")
)
