// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package identity derives program addresses: account addresses that are
// computed from a set of seeds and the identity of the program that owns
// them. A program address never has a corresponding private key, so the
// only way to authorize a transfer out of an account it owns is through a
// [Signer] built by the owning program.
package identity

import (
	"errors"

	"github.com/ava-labs/avalanchego/utils/hashing"

	"github.com/ava-labs/assetvault/codec"
	"github.com/ava-labs/assetvault/consts"
	"github.com/ava-labs/assetvault/crypto/ed25519"
)

const (
	MaxSeeds   = 16
	MaxSeedLen = 32

	// VaultSeed is the fixed label the vault address is derived from.
	VaultSeed = "vault"
)

var programAddressMarker = []byte("ProgramDerivedAddress")

// CreateProgramAddress hashes [seeds] together with [programID]. It fails
// with [ErrOnCurve] if the result is a valid ed25519 public key.
func CreateProgramAddress(seeds [][]byte, programID codec.Address) (codec.Address, error) {
	if len(seeds) > MaxSeeds {
		return codec.EmptyAddress, ErrMaxSeedsExceeded
	}
	size := codec.AddressLen + len(programAddressMarker)
	for _, seed := range seeds {
		if len(seed) > MaxSeedLen {
			return codec.EmptyAddress, ErrMaxSeedLengthExceeded
		}
		size += len(seed)
	}

	buf := make([]byte, 0, size)
	for _, seed := range seeds {
		buf = append(buf, seed...)
	}
	buf = append(buf, programID[:]...)
	buf = append(buf, programAddressMarker...)

	h := hashing.ComputeHash256Array(buf)
	if ed25519.IsOnCurve(h[:]) {
		return codec.EmptyAddress, ErrOnCurve
	}
	return codec.Address(h), nil
}

// FindProgramAddress returns the canonical program address for [seeds]: the
// first address that falls off the curve when a bump seed counting down
// from 255 is appended to [seeds]. The result only depends on [seeds] and
// [programID].
func FindProgramAddress(seeds [][]byte, programID codec.Address) (codec.Address, uint8, error) {
	if len(seeds) >= MaxSeeds {
		return codec.EmptyAddress, 0, ErrMaxSeedsExceeded
	}
	bumpSeed := []byte{consts.MaxUint8}
	withBump := make([][]byte, len(seeds), len(seeds)+1)
	copy(withBump, seeds)
	withBump = append(withBump, bumpSeed)

	for bump := int(consts.MaxUint8); bump >= 0; bump-- {
		bumpSeed[0] = uint8(bump)
		addr, err := CreateProgramAddress(withBump, programID)
		if err == nil {
			return addr, uint8(bump), nil
		}
		if !errors.Is(err, ErrOnCurve) {
			return codec.EmptyAddress, 0, err
		}
	}
	return codec.EmptyAddress, 0, ErrNoViableBump
}

// VaultAddress derives the address of the vault owned by [programID].
func VaultAddress(programID codec.Address) (codec.Address, uint8, error) {
	return FindProgramAddress([][]byte{[]byte(VaultSeed)}, programID)
}
