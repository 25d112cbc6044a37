// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	ByteLen   = 1
	IDLen     = 32
	IntLen    = 4
	Uint16Len = 2
	Uint64Len = 8
	MaxUint8  = ^uint8(0)
	MaxUint16 = ^uint16(0)
	MaxUint64 = ^uint64(0)
	MaxInt    = int(^uint(0) >> 1)

	// NetworkSizeLimit is the largest encoded transaction accepted.
	NetworkSizeLimit = 2_044_723
)
