// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ava-labs/assetvault/actions"
	"github.com/ava-labs/assetvault/auth"
	"github.com/ava-labs/assetvault/codec"
	"github.com/ava-labs/assetvault/token"
	"github.com/ava-labs/assetvault/utils"
)

var tokenCmd = &cobra.Command{
	Use: "token",
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

var createMintCmd = &cobra.Command{
	Use:   "create-mint",
	Short: "Creates a mint with the key as authority",
	RunE: func(*cobra.Command, []string) error {
		v, err := openVM()
		if err != nil {
			return err
		}
		priv, err := loadKey()
		if err != nil {
			return err
		}
		result, err := submit(context.Background(), v, auth.NewED25519Factory(priv), &actions.CreateMint{
			Decimals: decimals,
			Nonce:    nonce,
		})
		if err != nil {
			return err
		}
		utils.Outf("{{green}}created mint:{{/}} %s\n", result.Outputs[0].(*actions.CreateMintResult).Mint)
		return nil
	},
}

var createAccountCmd = &cobra.Command{
	Use:   "create-account",
	Short: "Opens the associated token account of an owner",
	RunE: func(*cobra.Command, []string) error {
		v, err := openVM()
		if err != nil {
			return err
		}
		priv, err := loadKey()
		if err != nil {
			return err
		}
		factory := auth.NewED25519Factory(priv)
		owner, err := parseOwner(v, ownerAddress, factory.Address())
		if err != nil {
			return err
		}
		mint, err := codec.ParseAddress(mintAddress)
		if err != nil {
			return err
		}
		result, err := submit(context.Background(), v, factory, &actions.CreateTokenAccount{
			Owner: owner,
			Mint:  mint,
		})
		if err != nil {
			return err
		}
		utils.Outf("{{green}}created account:{{/}} %s\n", result.Outputs[0].(*actions.CreateTokenAccountResult).Account)
		return nil
	},
}

var mintTokensCmd = &cobra.Command{
	Use:   "mint",
	Short: "Mints tokens to the associated token account of an owner",
	RunE: func(*cobra.Command, []string) error {
		v, err := openVM()
		if err != nil {
			return err
		}
		priv, err := loadKey()
		if err != nil {
			return err
		}
		factory := auth.NewED25519Factory(priv)
		owner, err := parseOwner(v, ownerAddress, factory.Address())
		if err != nil {
			return err
		}
		mint, err := codec.ParseAddress(mintAddress)
		if err != nil {
			return err
		}
		account, err := token.AssociatedAddress(owner, mint)
		if err != nil {
			return err
		}
		result, err := submit(context.Background(), v, factory, &actions.MintTokens{
			Mint:   mint,
			To:     account,
			Amount: amount,
		})
		if err != nil {
			return err
		}
		utils.Outf("{{green}}balance:{{/}} %d\n", result.Outputs[0].(*actions.MintTokensResult).Balance)
		return nil
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Prints the balance of the associated token account of an owner",
	RunE: func(*cobra.Command, []string) error {
		v, err := openVM()
		if err != nil {
			return err
		}
		var key codec.Address
		if len(ownerAddress) == 0 {
			priv, err := loadKey()
			if err != nil {
				return err
			}
			key = auth.NewED25519Address(priv.PublicKey())
		}
		owner, err := parseOwner(v, ownerAddress, key)
		if err != nil {
			return err
		}
		mint, err := codec.ParseAddress(mintAddress)
		if err != nil {
			return err
		}
		account, err := token.AssociatedAddress(owner, mint)
		if err != nil {
			return err
		}
		acct, exists, err := v.GetTokenAccount(context.Background(), account)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}
		utils.Outf(
			"{{yellow}}account:{{/}} %s {{yellow}}owner:{{/}} %s {{yellow}}balance:{{/}} %d\n",
			account,
			acct.Owner,
			acct.Amount,
		)
		return nil
	},
}
