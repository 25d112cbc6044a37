// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import "errors"

var ErrInvalidConfig = errors.New("invalid trace config")
