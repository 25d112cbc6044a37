// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package identity

import "github.com/ava-labs/assetvault/codec"

// Signer authorizes a single transfer out of an account owned by a program
// address. Signers are rebuilt from their seeds by the operation that needs
// them and are never stored.
type Signer struct {
	address codec.Address
	used    bool
}

// SignAs rebuilds the program address of [seeds] and [bump] and returns a
// [Signer] for it.
func SignAs(programID codec.Address, bump uint8, seeds ...[]byte) (*Signer, error) {
	withBump := make([][]byte, len(seeds), len(seeds)+1)
	copy(withBump, seeds)
	withBump = append(withBump, []byte{bump})

	addr, err := CreateProgramAddress(withBump, programID)
	if err != nil {
		return nil, err
	}
	return &Signer{address: addr}, nil
}

func (s *Signer) Address() codec.Address {
	return s.address
}

// Authorize consumes the signer on behalf of an account owned by [owner].
func (s *Signer) Authorize(owner codec.Address) error {
	if s.used {
		return ErrSignerConsumed
	}
	if owner != s.address {
		return ErrSignerMismatch
	}
	s.used = true
	return nil
}
