// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/assetvault/codec"
	"github.com/ava-labs/assetvault/consts"
)

const BaseSize = consts.Uint64Len * 2

type Base struct {
	// Timestamp is the expiry of the transaction (inclusive), in
	// milliseconds.
	Timestamp int64 `json:"timestamp"`

	// Nonce distinguishes otherwise identical transactions from the same
	// actor.
	Nonce uint64 `json:"nonce"`
}

func (b *Base) Execute(r Rules, timestamp int64) error {
	switch {
	case b.Timestamp < timestamp:
		return ErrTimestampTooLate
	case b.Timestamp > timestamp+r.GetValidityWindow():
		return ErrTimestampTooEarly
	default:
		return nil
	}
}

func (b *Base) Marshal(p *codec.Packer) {
	p.PackInt64(b.Timestamp)
	p.PackUint64(b.Nonce)
}

func UnmarshalBase(p *codec.Packer) (*Base, error) {
	var base Base
	base.Timestamp = p.UnpackInt64(true)
	base.Nonce = p.UnpackUint64(false)
	return &base, p.Err()
}
