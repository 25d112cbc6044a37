// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/assetvault/actions"
	"github.com/ava-labs/assetvault/auth"
	"github.com/ava-labs/assetvault/chain"
	"github.com/ava-labs/assetvault/codec"
)

var (
	ActionParser *codec.TypeParser[chain.Action]
	AuthParser   *codec.TypeParser[chain.Auth]
)

// Setup types
func init() {
	ActionParser = codec.NewTypeParser[chain.Action]()
	AuthParser = codec.NewTypeParser[chain.Auth]()

	errs := &wrappers.Errs{}
	errs.Add(
		// When registering new actions, ALWAYS make sure to append at the end.
		ActionParser.Register(actions.InitializeVaultID, actions.UnmarshalInitializeVault),
		ActionParser.Register(actions.DepositTokensID, actions.UnmarshalDepositTokens),
		ActionParser.Register(actions.WithdrawTokensID, actions.UnmarshalWithdrawTokens),
		ActionParser.Register(actions.CreateMintID, actions.UnmarshalCreateMint),
		ActionParser.Register(actions.CreateTokenAccountID, actions.UnmarshalCreateTokenAccount),
		ActionParser.Register(actions.MintTokensID, actions.UnmarshalMintTokens),

		// When registering new auth, ALWAYS make sure to append at the end.
		AuthParser.Register(auth.ED25519ID, auth.UnmarshalED25519),
	)
	if errs.Errored() {
		panic(errs.Err)
	}
}
