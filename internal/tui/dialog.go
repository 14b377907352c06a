package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"selfcare/internal/domain"
)

// dialogKind tags the single active dialog on the account screen.
type dialogKind int

const (
	dialogNone dialogKind = iota
	dialogMakePayment
	dialogConfirmPayment
	dialogChangePackage
	dialogChangeWiFi
	dialogSuspend
)

// dialog is the active dialog's state. At most one dialog exists at a
// time; dialogNone means the account list has focus.
type dialog struct {
	kind    dialogKind
	account domain.Account

	inputs []textinput.Model
	focus  int

	// change-package state: the catalog is fetched fresh on every open.
	packages   []domain.Package
	pkgCursor  int
	pkgsLoaded bool

	busy bool
	err  string
}

func (d *dialog) active() bool { return d.kind != dialogNone }

// title names the dialog the way the portal does.
func (d *dialog) title() string {
	switch d.kind {
	case dialogMakePayment:
		return "MAKE PAYMENT FOR " + d.account.AccountNumber
	case dialogConfirmPayment:
		return "CONFIRM PAYMENT"
	case dialogChangePackage:
		return "CHANGE PACKAGE FOR " + d.account.AccountNumber
	case dialogChangeWiFi:
		return "CHANGE WIFI FOR " + d.account.AccountNumber
	case dialogSuspend:
		if d.account.Suspended() {
			return "UNSUSPEND ACCOUNT " + d.account.AccountNumber
		}
		return "SUSPEND ACCOUNT " + d.account.AccountNumber
	default:
		return ""
	}
}

func newInput(placeholder string, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 64
	if secret {
		in.EchoMode = textinput.EchoPassword
	}
	return in
}

// openDialog builds the dialog state for kind over the given account.
func openDialog(kind dialogKind, account domain.Account) dialog {
	d := dialog{kind: kind, account: account}
	switch kind {
	case dialogMakePayment:
		amount := newInput("Amount", false)
		amount.Focus()
		telephone := newInput("Telephone to pay from", false)
		d.inputs = []textinput.Model{amount, telephone}
	case dialogConfirmPayment:
		code := newInput("Mpesa transaction code", false)
		code.Focus()
		d.inputs = []textinput.Model{code}
	case dialogChangeWiFi:
		name := newInput("WiFi name", false)
		name.Focus()
		password := newInput("WiFi password", true)
		d.inputs = []textinput.Model{name, password}
	}
	return d
}

// cycleFocus moves focus to the next input field.
func (d *dialog) cycleFocus() {
	if len(d.inputs) < 2 {
		return
	}
	d.inputs[d.focus].Blur()
	d.focus = (d.focus + 1) % len(d.inputs)
	d.inputs[d.focus].Focus()
}
