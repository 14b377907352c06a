package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func packagesCmd() *cobra.Command {
	var setID int64

	cmd := &cobra.Command{
		Use:   "packages [account-number]",
		Short: "List or change an account's package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := findAccount(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if setID > 0 {
				message, err := wire.Accounts.ChangePackage(cmd.Context(), account, setID)
				if err != nil {
					return err
				}
				if message == "" {
					message = "Package changed"
				}
				fmt.Println(message)
				return nil
			}

			packages, _, err := wire.Accounts.Packages(cmd.Context(), account)
			if err != nil {
				return err
			}
			if len(packages) == 0 {
				fmt.Println("No packages available.")
				return nil
			}
			for _, pkg := range packages {
				fmt.Printf("%d\t%s\n", pkg.ID, pkg.Label())
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&setID, "set", 0, "switch the account to this package id")
	return cmd
}
