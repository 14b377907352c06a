package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func updateCmd() *cobra.Command {
	var apply bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Check for and install client updates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if wire.Updater == nil {
				return errors.New("no update manifest configured; set update.manifest_url")
			}

			release, available, err := wire.Updater.Check(cmd.Context())
			if err != nil {
				return err
			}
			if !available {
				fmt.Println("Already up to date.")
				return nil
			}

			fmt.Printf("Version %s is available.\n", release.Version)
			if !apply {
				fmt.Println("Run again with --apply to install it.")
				return nil
			}

			staged, err := wire.Updater.Fetch(cmd.Context(), release)
			if err != nil {
				return err
			}
			if err := wire.Updater.Apply(staged); err != nil {
				return err
			}
			fmt.Println("Update applied. Restart to finish.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "download and install the update")
	return cmd
}
