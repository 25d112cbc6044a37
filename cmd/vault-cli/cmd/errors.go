// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import "errors"

var (
	ErrInvalidArgs       = errors.New("invalid args")
	ErrMissingSubcommand = errors.New("must specify a subcommand")
	ErrMissingKey        = errors.New("no key found, run \"key generate\" first")
	ErrKeyExists         = errors.New("key already exists")
	ErrNotFound          = errors.New("not found")
)
