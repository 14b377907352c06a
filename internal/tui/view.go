package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the active screen.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n\n")

	switch m.screen {
	case screenBoot:
		b.WriteString(m.spinner.View() + " Starting up...")
	case screenUpdate:
		b.WriteString(m.updateView())
	case screenDomain:
		b.WriteString(m.domainView())
	case screenLogin:
		b.WriteString(m.loginView())
	case screenAccounts:
		b.WriteString(m.accountsView())
	}

	if m.errMsg != "" {
		b.WriteString("\n\n" + m.styles.Error.Render(m.errMsg))
	} else if m.status != "" {
		b.WriteString("\n\n" + m.styles.Status.Render(m.status))
	}

	b.WriteString("\n\n" + m.styles.Help.Render(m.helpLine()))
	return b.String()
}

func (m *Model) header() string {
	name := "Self-care Portal"
	if m.haveSettings && m.settings.AppName != "" {
		name = m.settings.AppName
	}
	head := m.styles.Header.Render(name)
	if m.haveSettings && m.settings.Slogan != "" {
		head += "  " + m.styles.Slogan.Render(m.settings.Slogan)
	}
	return head
}

func (m *Model) updateView() string {
	var b strings.Builder
	b.WriteString(m.styles.Label.Render("Update available") + "\n\n")
	b.WriteString(fmt.Sprintf("Version %s is ready to install.\n", m.release.Version))
	if m.release.Mandatory {
		b.WriteString("This update is required to continue.\n")
	}
	if m.busy {
		b.WriteString("\n" + m.spinner.View() + " Downloading...")
	} else {
		b.WriteString("\nPress enter to install, q to quit.")
	}
	return b.String()
}

func (m *Model) domainView() string {
	var b strings.Builder
	b.WriteString(m.styles.Label.Render("Enter your provider's domain") + "\n\n")
	b.WriteString(m.domainInput.View())
	if m.busy {
		b.WriteString("\n\n" + m.spinner.View() + " Checking domain...")
	}
	return b.String()
}

func (m *Model) loginView() string {
	var b strings.Builder
	b.WriteString(m.styles.Label.Render("Sign in") + "\n")
	if m.seededDomain != "" {
		b.WriteString(m.styles.Help.Render(string(m.seededDomain)) + "\n")
	}
	b.WriteString("\n" + m.userInput.View())
	b.WriteString("\n" + m.passInput.View())
	if m.busy {
		b.WriteString("\n\n" + m.spinner.View() + " Signing in...")
	}
	return b.String()
}

func (m *Model) accountsView() string {
	if m.dialog.active() {
		return m.dialogView()
	}

	if m.busy {
		return m.spinner.View() + " Loading accounts..."
	}
	if len(m.accounts) == 0 {
		return "No accounts found."
	}

	cards := make([]string, 0, len(m.accounts))
	for i, account := range m.accounts {
		var body strings.Builder
		body.WriteString(m.styles.CardTitle.Render(account.AccountNumber) + "\n")
		body.WriteString("Package: " + account.Package + "\n")
		body.WriteString("Expiry:  " + account.Expiry + "\n")
		if account.Balance != "" {
			body.WriteString("Balance: " + account.Balance + "\n")
		}
		if account.Suspended() {
			body.WriteString("Status:  " + m.styles.Suspended.Render(account.Status))
		} else {
			body.WriteString("Status:  " + account.Status)
		}

		style := m.styles.Card
		if i == m.cursor {
			style = m.styles.Selected
		}
		cards = append(cards, style.Render(body.String()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m *Model) dialogView() string {
	d := &m.dialog
	var b strings.Builder
	b.WriteString(m.styles.CardTitle.Render(d.title()) + "\n\n")

	switch d.kind {
	case dialogChangePackage:
		b.WriteString(m.packagePicker())
	case dialogSuspend:
		if d.account.Suspended() {
			b.WriteString("Restore service on this account?\n")
		} else {
			b.WriteString("Suspend service on this account?\n")
		}
	default:
		for i := range d.inputs {
			b.WriteString(d.inputs[i].View() + "\n")
		}
	}

	if d.busy {
		b.WriteString("\n" + m.spinner.View() + " Working...")
	}
	if d.err != "" {
		b.WriteString("\n" + m.styles.Error.Render(d.err))
	}
	return m.styles.Dialog.Render(b.String())
}

func (m *Model) packagePicker() string {
	d := &m.dialog
	if !d.pkgsLoaded {
		return m.spinner.View() + " Loading packages..."
	}
	if len(d.packages) == 0 {
		return "No packages available."
	}
	var b strings.Builder
	for i, pkg := range d.packages {
		marker := "  "
		if i == d.pkgCursor {
			marker = "> "
		}
		b.WriteString(marker + pkg.Label() + "\n")
	}
	return b.String()
}

func (m *Model) helpLine() string {
	if m.dialog.active() {
		return "enter submit · tab next field · esc close"
	}
	switch m.screen {
	case screenUpdate:
		return "enter install · q quit"
	case screenDomain:
		return "enter check domain · ctrl+c quit"
	case screenLogin:
		return "tab switch field · enter sign in · ctrl+c quit"
	case screenAccounts:
		return "↑/↓ select · p pay · c confirm · g package · w wifi · s suspend · r reload · o logout · q quit"
	}
	return ""
}
