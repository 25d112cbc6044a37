// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"

	"github.com/mr-tron/base58"
)

const AddressLen = 32

// Address is the 32 byte identity of an account. Addresses of keyed accounts
// are ed25519 public keys; program-derived addresses are hashes that fall off
// the curve.
type Address [AddressLen]byte

var EmptyAddress = Address{}

// ToAddress copies [b] into an [Address]. It fails unless [b] is exactly
// [AddressLen] bytes.
func ToAddress(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressLen {
		return a, fmt.Errorf("%w: found address of length %d", ErrInvalidSize, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// ParseAddress decodes the base58 representation of an address.
func ParseAddress(s string) (Address, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return EmptyAddress, err
	}
	return ToAddress(b)
}

// MustParseAddress is [ParseAddress] for compile-time constants.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return base58.Encode(a[:])
}

// MarshalText returns the base58 representation of a.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses a base58-encoded address.
func (a *Address) UnmarshalText(input []byte) error {
	parsed, err := ParseAddress(string(input))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
