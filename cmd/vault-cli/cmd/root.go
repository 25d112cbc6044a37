// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "vault-cli" operates a custodial token vault backed by a local database.
package cmd

import (
	"github.com/spf13/cobra"
)

const fsModeWrite = 0o600

var (
	configFile     string
	privateKeyFile string

	mintAddress  string
	ownerAddress string
	toAddress    string
	amount       uint64
	decimals     uint8
	nonce        uint64

	rootCmd = &cobra.Command{
		Use:        "vault-cli",
		Short:      "Custodial token vault CLI",
		SuggestFor: []string{"vault-cli", "vaultcli"},
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		keyCmd,
		vaultCmd,
		tokenCmd,
	)
	rootCmd.PersistentFlags().StringVar(
		&configFile,
		"config",
		"",
		"config file path",
	)
	rootCmd.PersistentFlags().StringVar(
		&privateKeyFile,
		"key",
		"",
		"private key file path (defaults to <dataDir>/key.hex)",
	)

	// key
	keyCmd.AddCommand(
		genKeyCmd,
		addressKeyCmd,
	)

	// vault
	vaultCmd.AddCommand(
		addressVaultCmd,
		initVaultCmd,
		showVaultCmd,
		depositVaultCmd,
		withdrawVaultCmd,
	)
	for _, c := range []*cobra.Command{depositVaultCmd, withdrawVaultCmd} {
		c.Flags().StringVar(&mintAddress, "mint", "", "mint of the vault token account")
		c.Flags().Uint64Var(&amount, "amount", 0, "amount of tokens")
	}
	withdrawVaultCmd.Flags().StringVar(&toAddress, "to", "", "destination token account (defaults to the associated account of the key)")

	// token
	tokenCmd.AddCommand(
		createMintCmd,
		createAccountCmd,
		mintTokensCmd,
		balanceCmd,
	)
	createMintCmd.Flags().Uint8Var(&decimals, "decimals", 9, "decimals of the mint")
	createMintCmd.Flags().Uint64Var(&nonce, "nonce", 0, "distinguishes mints created by the same key")
	for _, c := range []*cobra.Command{createAccountCmd, mintTokensCmd, balanceCmd} {
		c.Flags().StringVar(&mintAddress, "mint", "", "mint address")
		c.Flags().StringVar(&ownerAddress, "owner", "", "account owner (an address, or \"vault\"; defaults to the key)")
	}
	mintTokensCmd.Flags().Uint64Var(&amount, "amount", 0, "amount of tokens")
}

func Execute() error {
	defer closeHandler()
	return rootCmd.Execute()
}
