package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func wifiCmd() *cobra.Command {
	var (
		name     string
		password string
	)

	cmd := &cobra.Command{
		Use:   "wifi [account-number]",
		Short: "Change an account's WiFi name and password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := findAccount(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if password == "" {
				fmt.Fprint(os.Stderr, "New WiFi password: ")
				raw, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(os.Stderr)
				if err != nil {
					return err
				}
				password = string(raw)
			}

			message, err := wire.Accounts.ChangeWiFi(cmd.Context(), account, name, password)
			if err != nil {
				return err
			}
			if message == "" {
				message = "WiFi updated"
			}
			fmt.Println(message)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "new WiFi network name")
	cmd.Flags().StringVarP(&password, "password", "p", "", "new WiFi password (prompted when omitted)")
	cmd.MarkFlagRequired("name")
	return cmd
}
