package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"selfcare/internal/domain"
	"selfcare/internal/services/bootstrap"
)

// Messages delivered by commands. Every network outcome arrives as one of
// these; the err field carries the classified portal error when set.

type bootMsg struct{ decision bootstrap.Decision }

type settingsMsg struct {
	settings domain.AppSettings
	err      error
}

type resolvedMsg struct {
	domain  domain.Domain
	message string
	err     error
}

type loggedInMsg struct {
	message string
	err     error
}

type loggedOutMsg struct{ err error }

type accountsMsg struct {
	accounts []domain.Account
	message  string
	err      error
}

type packagesMsg struct {
	packages []domain.Package
	message  string
	err      error
}

// actionDoneMsg reports one of the account action flows finishing. When
// accounts is non-nil it replaces the in-memory sequence (suspension
// toggles update exactly one entry this way).
type actionDoneMsg struct {
	accounts []domain.Account
	message  string
	err      error
}

type updateDoneMsg struct{ err error }

func (m *Model) bootCmd() tea.Cmd {
	return func() tea.Msg {
		return bootMsg{decision: m.wire.Bootstrap.Run(context.Background())}
	}
}

func (m *Model) settingsCmd() tea.Cmd {
	return func() tea.Msg {
		settings, err := m.wire.Settings.Get(context.Background())
		return settingsMsg{settings: settings, err: err}
	}
}

func (m *Model) resolveCmd(input string) tea.Cmd {
	return func() tea.Msg {
		resolved, message, err := m.wire.Tenant.Resolve(context.Background(), input)
		return resolvedMsg{domain: resolved, message: message, err: err}
	}
}

func (m *Model) loginCmd(username, password string) tea.Cmd {
	return func() tea.Msg {
		message, err := m.wire.Auth.Login(context.Background(), username, password)
		return loggedInMsg{message: message, err: err}
	}
}

func (m *Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		return loggedOutMsg{err: m.wire.Auth.Logout()}
	}
}

func (m *Model) accountsCmd() tea.Cmd {
	return func() tea.Msg {
		accounts, message, err := m.wire.Accounts.Accounts(context.Background())
		return accountsMsg{accounts: accounts, message: message, err: err}
	}
}

func (m *Model) packagesCmd(account domain.Account) tea.Cmd {
	return func() tea.Msg {
		packages, message, err := m.wire.Accounts.Packages(context.Background(), account)
		return packagesMsg{packages: packages, message: message, err: err}
	}
}

func (m *Model) initiatePaymentCmd(accountNumber, telephone, amount string) tea.Cmd {
	return func() tea.Msg {
		message, err := m.wire.Accounts.InitiatePayment(context.Background(), accountNumber, telephone, amount)
		return actionDoneMsg{message: message, err: err}
	}
}

func (m *Model) confirmPaymentCmd(code string) tea.Cmd {
	return func() tea.Msg {
		message, err := m.wire.Accounts.ConfirmPayment(context.Background(), code)
		return actionDoneMsg{message: message, err: err}
	}
}

func (m *Model) changePackageCmd(account domain.Account, packageID int64) tea.Cmd {
	return func() tea.Msg {
		message, err := m.wire.Accounts.ChangePackage(context.Background(), account, packageID)
		return actionDoneMsg{message: message, err: err}
	}
}

func (m *Model) changeWiFiCmd(account domain.Account, name, password string) tea.Cmd {
	return func() tea.Msg {
		message, err := m.wire.Accounts.ChangeWiFi(context.Background(), account, name, password)
		return actionDoneMsg{message: message, err: err}
	}
}

func (m *Model) toggleSuspensionCmd(accounts []domain.Account, accountNumber string) tea.Cmd {
	return func() tea.Msg {
		updated, message, err := m.wire.Accounts.ToggleSuspension(context.Background(), accounts, accountNumber)
		return actionDoneMsg{accounts: updated, message: message, err: err}
	}
}

func (m *Model) applyUpdateCmd(release domain.Release) tea.Cmd {
	return func() tea.Msg {
		staged, err := m.wire.Updater.Fetch(context.Background(), release)
		if err != nil {
			return updateDoneMsg{err: err}
		}
		return updateDoneMsg{err: m.wire.Updater.Apply(staged)}
	}
}
