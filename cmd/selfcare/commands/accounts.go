package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"selfcare/internal/domain"
)

var (
	accountCardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	accountTitleStyle = lipgloss.NewStyle().Bold(true)
	suspendedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func accountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List your internet accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, _, err := wire.Accounts.Accounts(cmd.Context())
			if err != nil {
				return err
			}
			if len(accounts) == 0 {
				fmt.Println("No accounts found.")
				return nil
			}
			for _, account := range accounts {
				fmt.Println(renderAccount(account))
			}
			return nil
		},
	}
}

func renderAccount(account domain.Account) string {
	status := account.Status
	if account.Suspended() {
		status = suspendedStyle.Render(status)
	}
	body := accountTitleStyle.Render(account.AccountNumber) + "\n" +
		"Type:    " + account.AccountType + "\n" +
		"Package: " + account.Package + "\n" +
		"Expiry:  " + account.Expiry + "\n"
	if account.Balance != "" {
		body += "Balance: " + account.Balance + "\n"
	}
	body += "Status:  " + status
	return accountCardStyle.Render(body)
}
