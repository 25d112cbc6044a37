// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/hashing"
	"github.com/near/borsh-go"

	"github.com/ava-labs/assetvault/codec"
	"github.com/ava-labs/assetvault/state"
)

const discriminatorLen = 8

// VaultRecordSize is the discriminator followed by the manager.
const VaultRecordSize = discriminatorLen + codec.AddressLen

var vaultDiscriminator = accountDiscriminator("VaultData")

// VaultRecord binds the derived vault address to its manager.
type VaultRecord struct {
	// Manager is the only identity allowed to withdraw from the vault.
	Manager codec.Address
}

func accountDiscriminator(name string) []byte {
	h := hashing.ComputeHash256([]byte("account:" + name))
	return h[:discriminatorLen]
}

func (r *VaultRecord) Marshal() ([]byte, error) {
	b, err := borsh.Serialize(*r)
	if err != nil {
		return nil, err
	}
	v := make([]byte, 0, VaultRecordSize)
	v = append(v, vaultDiscriminator...)
	return append(v, b...), nil
}

func UnmarshalVaultRecord(b []byte) (*VaultRecord, error) {
	if len(b) != VaultRecordSize {
		return nil, fmt.Errorf("%w: vault record has length %d", ErrInvalidRecord, len(b))
	}
	if !bytes.Equal(b[:discriminatorLen], vaultDiscriminator) {
		return nil, fmt.Errorf("%w: vault record has wrong discriminator", ErrInvalidRecord)
	}
	var r VaultRecord
	if err := borsh.Deserialize(&r, b[discriminatorLen:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return &r, nil
}

// GetVault returns the record stored at [addr] and whether it exists.
func GetVault(
	ctx context.Context,
	im state.Immutable,
	addr codec.Address,
) (*VaultRecord, bool, error) {
	v, err := im.GetValue(ctx, VaultKey(addr))
	if errors.Is(err, database.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	r, err := UnmarshalVaultRecord(v)
	if err != nil {
		return nil, false, err
	}
	return r, true, nil
}

func SetVault(
	ctx context.Context,
	mu state.Mutable,
	addr codec.Address,
	r *VaultRecord,
) error {
	v, err := r.Marshal()
	if err != nil {
		return err
	}
	return mu.Insert(ctx, VaultKey(addr), v)
}
