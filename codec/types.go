// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

// Typed is implemented by everything that is serialized behind a type
// prefix (actions, auth and their outputs).
type Typed interface {
	GetTypeID() uint8
}
