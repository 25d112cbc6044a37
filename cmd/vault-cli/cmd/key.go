// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ava-labs/assetvault/auth"
	"github.com/ava-labs/assetvault/crypto/ed25519"
	"github.com/ava-labs/assetvault/utils"
)

var keyCmd = &cobra.Command{
	Use: "key",
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

var genKeyCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates a new ed25519 key",
	RunE: func(*cobra.Command, []string) error {
		path, err := keyPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil {
			return ErrKeyExists
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		priv, err := ed25519.GeneratePrivateKey()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(priv.Hex()), fsModeWrite); err != nil {
			return err
		}
		utils.Outf(
			"{{green}}created address:{{/}} %s {{yellow}}(%s){{/}}\n",
			auth.NewED25519Address(priv.PublicKey()),
			path,
		)
		return nil
	},
}

var addressKeyCmd = &cobra.Command{
	Use:   "address",
	Short: "Prints the address of the key",
	RunE: func(*cobra.Command, []string) error {
		priv, err := loadKey()
		if err != nil {
			return err
		}
		utils.Outf("{{yellow}}address:{{/}} %s\n", auth.NewED25519Address(priv.PublicKey()))
		return nil
	},
}
