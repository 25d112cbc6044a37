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
	"github.com/ava-labs/assetvault/vm"
)

var vaultCmd = &cobra.Command{
	Use: "vault",
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

var addressVaultCmd = &cobra.Command{
	Use:   "address",
	Short: "Prints the derived vault address and its bump",
	RunE: func(*cobra.Command, []string) error {
		v, err := openVM()
		if err != nil {
			return err
		}
		vault, bump, err := v.VaultAddress()
		if err != nil {
			return err
		}
		utils.Outf("{{yellow}}vault:{{/}} %s {{yellow}}bump:{{/}} %d\n", vault, bump)
		return nil
	},
}

var initVaultCmd = &cobra.Command{
	Use:   "init",
	Short: "Initializes the vault with the key as manager",
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
		vault, _, err := v.VaultAddress()
		if err != nil {
			return err
		}
		result, err := submit(context.Background(), v, factory, &actions.InitializeVault{
			Vault:   vault,
			Manager: factory.Address(),
		})
		if err != nil {
			return err
		}
		out := result.Outputs[0].(*actions.InitializeVaultResult)
		utils.Outf("{{green}}initialized vault:{{/}} %s {{green}}manager:{{/}} %s\n", out.Vault, out.Manager)
		return nil
	},
}

var showVaultCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints the vault record",
	RunE: func(*cobra.Command, []string) error {
		v, err := openVM()
		if err != nil {
			return err
		}
		vault, bump, err := v.VaultAddress()
		if err != nil {
			return err
		}
		record, exists, err := v.GetVault(context.Background())
		if err != nil {
			return err
		}
		if !exists {
			utils.Outf("{{red}}vault %s is not initialized{{/}}\n", vault)
			return nil
		}
		utils.Outf(
			"{{yellow}}vault:{{/}} %s {{yellow}}bump:{{/}} %d {{yellow}}manager:{{/}} %s\n",
			vault,
			bump,
			record.Manager,
		)
		return nil
	},
}

// vaultAccounts returns the associated token accounts of the key and of the
// vault for the --mint flag.
func vaultAccounts(v *vm.VM, key codec.Address) (codec.Address, codec.Address, codec.Address, error) {
	if len(mintAddress) == 0 {
		return codec.EmptyAddress, codec.EmptyAddress, codec.EmptyAddress, ErrInvalidArgs
	}
	mint, err := codec.ParseAddress(mintAddress)
	if err != nil {
		return codec.EmptyAddress, codec.EmptyAddress, codec.EmptyAddress, err
	}
	vault, _, err := v.VaultAddress()
	if err != nil {
		return codec.EmptyAddress, codec.EmptyAddress, codec.EmptyAddress, err
	}
	keyAccount, err := token.AssociatedAddress(key, mint)
	if err != nil {
		return codec.EmptyAddress, codec.EmptyAddress, codec.EmptyAddress, err
	}
	vaultAccount, err := token.AssociatedAddress(vault, mint)
	if err != nil {
		return codec.EmptyAddress, codec.EmptyAddress, codec.EmptyAddress, err
	}
	return vault, keyAccount, vaultAccount, nil
}

var depositVaultCmd = &cobra.Command{
	Use:   "deposit",
	Short: "Deposits tokens from the key into the vault",
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
		_, keyAccount, vaultAccount, err := vaultAccounts(v, factory.Address())
		if err != nil {
			return err
		}
		result, err := submit(context.Background(), v, factory, &actions.DepositTokens{
			Amount:           amount,
			DepositorAccount: keyAccount,
			VaultAccount:     vaultAccount,
		})
		if err != nil {
			return err
		}
		out := result.Outputs[0].(*actions.DepositTokensResult)
		utils.Outf(
			"{{green}}deposited:{{/}} %d {{green}}balance:{{/}} %d {{green}}vault balance:{{/}} %d\n",
			out.Amount,
			out.DepositorBalance,
			out.VaultBalance,
		)
		return nil
	},
}

var withdrawVaultCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Withdraws tokens from the vault (manager only)",
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
		vault, destination, vaultAccount, err := vaultAccounts(v, factory.Address())
		if err != nil {
			return err
		}
		if len(toAddress) > 0 {
			destination, err = codec.ParseAddress(toAddress)
			if err != nil {
				return err
			}
		}
		result, err := submit(context.Background(), v, factory, &actions.WithdrawTokens{
			Amount:       amount,
			Vault:        vault,
			VaultAccount: vaultAccount,
			Destination:  destination,
		})
		if err != nil {
			return err
		}
		out := result.Outputs[0].(*actions.WithdrawTokensResult)
		utils.Outf(
			"{{green}}withdrew:{{/}} %d {{green}}vault balance:{{/}} %d {{green}}destination balance:{{/}} %d\n",
			out.Amount,
			out.VaultBalance,
			out.DestinationBalance,
		)
		return nil
	},
}
