package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func suspendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suspend [account-number]",
		Short: "Suspend an active account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return toggleSuspension(cmd, args[0], false)
		},
	}
}

func unsuspendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unsuspend [account-number]",
		Short: "Restore a suspended account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return toggleSuspension(cmd, args[0], true)
		},
	}
}

// toggleSuspension flips the account's suspension after checking its
// current state matches fromSuspended, so "suspend" never silently
// restores and vice versa.
func toggleSuspension(cmd *cobra.Command, accountNumber string, fromSuspended bool) error {
	accounts, _, err := wire.Accounts.Accounts(cmd.Context())
	if err != nil {
		return err
	}

	for _, account := range accounts {
		if account.AccountNumber != accountNumber {
			continue
		}
		if account.Suspended() != fromSuspended {
			if fromSuspended {
				return fmt.Errorf("account %s is not suspended", accountNumber)
			}
			return fmt.Errorf("account %s is already suspended", accountNumber)
		}

		_, message, err := wire.Accounts.ToggleSuspension(cmd.Context(), accounts, accountNumber)
		if err != nil {
			return err
		}
		if message == "" {
			if fromSuspended {
				message = "Account restored"
			} else {
				message = "Account suspended"
			}
		}
		fmt.Println(message)
		return nil
	}
	return fmt.Errorf("account %q not found", accountNumber)
}
