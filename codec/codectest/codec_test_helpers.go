// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codectest

import (
	"crypto/rand"

	"github.com/ava-labs/assetvault/codec"
)

// NewRandomAddress returns a random address
// for use during testing
func NewRandomAddress() codec.Address {
	var a codec.Address
	if _, err := rand.Read(a[:]); err != nil {
		panic(err)
	}
	return a
}
