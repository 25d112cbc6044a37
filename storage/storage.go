// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/assetvault/codec"
	"github.com/ava-labs/assetvault/consts"
	"github.com/ava-labs/assetvault/keys"
)

// State
// 0x0/ (vault)
//   -> [vault address] => discriminator|manager
// 0x1/ (mints)
//   -> [mint address] => authority|supply|decimals
// 0x2/ (token accounts)
//   -> [account address] => mint|owner|amount
// 0x3/ (accepted transactions)
//   -> [txID] => accepted

const (
	vaultPrefix byte = iota
	mintPrefix
	tokenAccountPrefix
	txPrefix
)

const (
	VaultChunks        uint16 = 1
	MintChunks         uint16 = 1
	TokenAccountChunks uint16 = 2
	TxChunks           uint16 = 1
)

func addressKey(prefix byte, addr codec.Address, chunks uint16) []byte {
	k := make([]byte, 0, consts.ByteLen+codec.AddressLen+consts.Uint16Len)
	k = append(k, prefix)
	k = append(k, addr[:]...)
	return keys.EncodeChunks(k, chunks)
}

// [vaultPrefix] + [address]
func VaultKey(addr codec.Address) []byte {
	return addressKey(vaultPrefix, addr, VaultChunks)
}

// [mintPrefix] + [address]
func MintKey(addr codec.Address) []byte {
	return addressKey(mintPrefix, addr, MintChunks)
}

// [tokenAccountPrefix] + [address]
func TokenAccountKey(addr codec.Address) []byte {
	return addressKey(tokenAccountPrefix, addr, TokenAccountChunks)
}

// [txPrefix] + [txID]
func TxKey(id ids.ID) []byte {
	k := make([]byte, 0, consts.ByteLen+consts.IDLen+consts.Uint16Len)
	k = append(k, txPrefix)
	k = append(k, id[:]...)
	return keys.EncodeChunks(k, TxChunks)
}
