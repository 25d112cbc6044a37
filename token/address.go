// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import (
	"encoding/binary"

	"github.com/ava-labs/assetvault/codec"
	"github.com/ava-labs/assetvault/consts"
	"github.com/ava-labs/assetvault/identity"
)

var (
	ProgramID           = codec.MustParseAddress("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	AssociatedProgramID = codec.MustParseAddress("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL")
)

const mintSeed = "mint"

// AssociatedAddress is the canonical token account of [owner] for [mint].
func AssociatedAddress(owner codec.Address, mint codec.Address) (codec.Address, error) {
	addr, _, err := identity.FindProgramAddress(
		[][]byte{owner[:], ProgramID[:], mint[:]},
		AssociatedProgramID,
	)
	return addr, err
}

// MintAddress derives the address of the [nonce]th mint created by
// [authority].
func MintAddress(authority codec.Address, nonce uint64) (codec.Address, error) {
	n := make([]byte, consts.Uint64Len)
	binary.BigEndian.PutUint64(n, nonce)
	addr, _, err := identity.FindProgramAddress(
		[][]byte{[]byte(mintSeed), authority[:], n},
		ProgramID,
	)
	return addr, err
}
