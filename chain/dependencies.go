// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"

	"github.com/ava-labs/assetvault/codec"
	"github.com/ava-labs/assetvault/state"
	"github.com/ava-labs/assetvault/token"
)

// Rules are the deployment constants every action executes against.
type Rules interface {
	// GetProgramID is the identity the vault address is derived under.
	GetProgramID() codec.Address
	GetTokenProgram() token.Program
	// GetValidityWindow is how far in the future (in milliseconds) a
	// transaction may expire.
	GetValidityWindow() int64
}

type Action interface {
	codec.Typed

	// StateKeys is the full set of keys [Execute] may touch when invoked by
	// [actor]. Execution fails on any access outside of it.
	StateKeys(actor codec.Address, r Rules) state.Keys

	// Execute applies the action. If it returns an error, the transaction
	// it belongs to is discarded along with every write made so far.
	Execute(
		ctx context.Context,
		r Rules,
		mu state.Mutable,
		actor codec.Address,
	) (codec.Typed, error)

	Marshal(p *codec.Packer)
}

type Auth interface {
	codec.Typed

	// Verify checks that the signature covers [msg].
	Verify(ctx context.Context, msg []byte) error

	// Actor is the identity the actions of the transaction execute as.
	Actor() codec.Address

	Marshal(p *codec.Packer)
}

type AuthFactory interface {
	Sign(msg []byte) (Auth, error)
	Address() codec.Address
}

type (
	ActionRegistry = *codec.TypeParser[Action]
	AuthRegistry   = *codec.TypeParser[Auth]
)
