// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/assetvault/codec"
	"github.com/ava-labs/assetvault/state"
	"github.com/ava-labs/assetvault/storage"
)

func getTokenAccount(ctx context.Context, im state.Immutable, addr codec.Address) (*storage.TokenAccount, error) {
	acct, exists, err := storage.GetTokenAccount(ctx, im, addr)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrAccountNotFound
	}
	return acct, nil
}
