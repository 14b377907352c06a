package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func settingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Show the provider's branding settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := wire.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println("App name: ", settings.AppName)
			fmt.Println("Title:    ", settings.Title)
			fmt.Println("Slogan:   ", settings.Slogan)
			fmt.Println("Email:    ", settings.Email)
			fmt.Println("Telephone:", settings.Telephone)
			fmt.Println("Primary:  ", settings.PrimaryColor)
			fmt.Println("Tertiary: ", settings.TertiaryColor)
			fmt.Println("Logo:     ", settings.Logo)
			return nil
		},
	}
}
