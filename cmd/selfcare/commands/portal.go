package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"selfcare/internal/logging"
	"selfcare/internal/tui"
)

func portalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "portal",
		Short: "Open the interactive portal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Stderr log lines would corrupt the alternate screen, so the
			// UI runs with a silent logger.
			model := tui.New(wire, version, logging.Discard())
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}
