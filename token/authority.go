// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import "github.com/ava-labs/assetvault/codec"

// Authority approves moving funds out of an account. Keyed accounts are
// approved by the transaction signer; program-owned accounts by an
// [identity.Signer].
type Authority interface {
	Authorize(owner codec.Address) error
}

type actorAuthority codec.Address

// Actor returns the [Authority] of a transaction signed by [addr].
func Actor(addr codec.Address) Authority {
	return actorAuthority(addr)
}

func (a actorAuthority) Authorize(owner codec.Address) error {
	if codec.Address(a) != owner {
		return ErrOwnerMismatch
	}
	return nil
}
