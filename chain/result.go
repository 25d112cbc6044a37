// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/assetvault/codec"
)

// Result is the outcome of an accepted transaction. Rejected transactions
// produce an error instead and leave no trace in state.
type Result struct {
	TxID  ids.ID
	Actor codec.Address

	// Outputs holds one entry per action, in order.
	Outputs []codec.Typed
}
