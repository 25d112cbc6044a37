// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "vault-cli" operates a custodial token vault backed by a local database.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/ava-labs/assetvault/cmd/vault-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		color.Red("vault-cli failed: %v", err)
		os.Exit(1)
	}
	os.Exit(0)
}
