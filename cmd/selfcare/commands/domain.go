package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func domainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "domain [portal-domain]",
		Short: "Register your provider's portal domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, message, err := wire.Tenant.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if message == "" {
				message = "Domain registered"
			}
			fmt.Printf("%s: %s\n", message, resolved)
			return nil
		},
	}
}
