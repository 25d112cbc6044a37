// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/assetvault/codec"
	"github.com/ava-labs/assetvault/token"
)

var _ Rules = (*StaticRules)(nil)

type StaticRules struct {
	ProgramID      codec.Address
	TokenProgram   token.Program
	ValidityWindow int64
}

func (r *StaticRules) GetProgramID() codec.Address {
	return r.ProgramID
}

func (r *StaticRules) GetTokenProgram() token.Program {
	return r.TokenProgram
}

func (r *StaticRules) GetValidityWindow() int64 {
	return r.ValidityWindow
}
