package tui

import (
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"selfcare/internal/app"
	"selfcare/internal/domain"
	"selfcare/internal/portal"
	"selfcare/internal/services/bootstrap"
)

// screen identifies the visible top-level screen.
type screen int

const (
	screenBoot screen = iota
	screenUpdate
	screenDomain
	screenLogin
	screenAccounts
)

// Model is the bubbletea model for the whole session.
type Model struct {
	wire    *app.Wire
	log     *slog.Logger
	version string

	screen screen
	styles styles
	keys   keyMap

	settings     domain.AppSettings
	haveSettings bool

	// Domain resolution screen.
	domainInput textinput.Model

	// Login screen, pre-seeded with the resolved domain.
	userInput    textinput.Model
	passInput    textinput.Model
	loginFocus   int
	seededDomain domain.Domain

	// Account screen: the transient in-memory snapshot plus the single
	// active dialog.
	accounts []domain.Account
	cursor   int
	dialog   dialog

	// Update screen.
	release domain.Release

	spinner spinner.Model
	busy    bool
	status  string
	errMsg  string

	width  int
	height int
}

// New constructs the model over the wired app.
func New(wire *app.Wire, version string, log *slog.Logger) *Model {
	domainInput := newInput("tenant.example.com", false)
	domainInput.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		wire:        wire,
		log:         log,
		version:     version,
		screen:      screenBoot,
		styles:      defaultStyles(),
		keys:        defaultKeyMap(),
		domainInput: domainInput,
		userInput:   newInput("Username", false),
		passInput:   newInput("Password", true),
		spinner:     sp,
		busy:        true,
	}
}

// Init starts the bootstrap sequencer.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.bootCmd())
}

// Update routes messages to the active screen.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.busy && !m.dialog.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case bootMsg:
		return m.routeFromBoot(msg.decision)

	case settingsMsg:
		if msg.err != nil {
			// Branding is cosmetic; a failed fetch never blocks a flow.
			m.log.Warn("app settings fetch failed", "error", msg.err)
			return m, nil
		}
		m.settings = msg.settings
		m.haveSettings = true
		m.styles.applyBranding(msg.settings)
		return m, nil

	case resolvedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = portal.UserMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.message
		m.seededDomain = msg.domain
		m.screen = screenLogin
		m.loginFocus = 0
		m.userInput.Focus()
		return m, m.settingsCmd()

	case loggedInMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = portal.UserMessage(msg.err)
			return m, nil
		}
		// Reset navigation: login state is discarded, the account list
		// becomes the root and no back path reaches the login screen.
		m.errMsg = ""
		m.status = msg.message
		m.userInput.SetValue("")
		m.passInput.SetValue("")
		m.screen = screenAccounts
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.accountsCmd(), m.settingsCmd())

	case loggedOutMsg:
		if msg.err != nil {
			m.errMsg = portal.UserMessage(msg.err)
			return m, nil
		}
		m.accounts = nil
		m.dialog = dialog{}
		m.status = "Logged out."
		m.screen = screenLogin
		m.loginFocus = 0
		m.userInput.Focus()
		return m, nil

	case accountsMsg:
		m.busy = false
		if msg.err != nil {
			return m.routeFromAccountsError(msg.err)
		}
		m.errMsg = ""
		m.status = msg.message
		m.accounts = msg.accounts
		if m.cursor >= len(m.accounts) {
			m.cursor = 0
		}
		return m, nil

	case packagesMsg:
		m.dialog.busy = false
		if msg.err != nil {
			m.dialog.err = portal.UserMessage(msg.err)
			return m, nil
		}
		m.dialog.packages = msg.packages
		m.dialog.pkgsLoaded = true
		m.dialog.pkgCursor = 0
		return m, nil

	case actionDoneMsg:
		m.dialog.busy = false
		if msg.err != nil {
			m.dialog.err = portal.UserMessage(msg.err)
			return m, nil
		}
		if msg.accounts != nil {
			m.accounts = msg.accounts
		}
		m.status = msg.message
		m.dialog = dialog{}
		return m, nil

	case updateDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = portal.UserMessage(msg.err)
			return m, nil
		}
		m.status = "Update applied. Restart to finish."
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// routeFromBoot maps the bootstrap decision onto the first screen.
func (m *Model) routeFromBoot(decision bootstrap.Decision) (tea.Model, tea.Cmd) {
	m.busy = false
	switch decision.State {
	case bootstrap.RouteUpdate:
		m.screen = screenUpdate
		m.release = decision.Release
		return m, nil
	case bootstrap.RouteLogin:
		m.screen = screenLogin
		m.seededDomain = decision.Domain
		m.userInput.Focus()
		return m, m.settingsCmd()
	case bootstrap.RouteHome:
		m.screen = screenAccounts
		m.seededDomain = decision.Domain
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.accountsCmd(), m.settingsCmd())
	default:
		m.screen = screenDomain
		m.domainInput.Focus()
		return m, nil
	}
}

// routeFromAccountsError sends the user back to whichever screen
// establishes the missing precondition instead of dead-ending.
func (m *Model) routeFromAccountsError(err error) (tea.Model, tea.Cmd) {
	switch {
	case errors.Is(err, portal.ErrNoDomain):
		m.screen = screenDomain
		m.domainInput.Focus()
		return m, nil
	case errors.Is(err, portal.ErrNoToken):
		m.screen = screenLogin
		m.userInput.Focus()
		return m, nil
	default:
		m.errMsg = portal.UserMessage(err)
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.dialog.active() {
		return m.updateDialog(msg)
	}

	switch m.screen {
	case screenUpdate:
		return m.updateScreenKeys(msg)
	case screenDomain:
		return m.domainScreenKeys(msg)
	case screenLogin:
		return m.loginScreenKeys(msg)
	case screenAccounts:
		return m.accountScreenKeys(msg)
	}
	return m, nil
}

func (m *Model) updateScreenKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.applyUpdateCmd(m.release))
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) domainScreenKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) {
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.resolveCmd(m.domainInput.Value()))
	}
	var cmd tea.Cmd
	m.domainInput, cmd = m.domainInput.Update(msg)
	return m, cmd
}

func (m *Model) loginScreenKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextItem):
		if m.loginFocus == 0 {
			m.loginFocus = 1
			m.userInput.Blur()
			m.passInput.Focus()
		} else {
			m.loginFocus = 0
			m.passInput.Blur()
			m.userInput.Focus()
		}
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.loginCmd(m.userInput.Value(), m.passInput.Value()))
	}

	var cmd tea.Cmd
	if m.loginFocus == 0 {
		m.userInput, cmd = m.userInput.Update(msg)
	} else {
		m.passInput, cmd = m.passInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) accountScreenKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.accounts)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.accountsCmd())

	case key.Matches(msg, m.keys.Logout):
		return m, m.logoutCmd()

	case key.Matches(msg, m.keys.Confirm):
		m.dialog = openDialog(dialogConfirmPayment, domain.Account{})
		return m, nil
	}

	current, ok := m.selectedAccount()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Pay):
		m.dialog = openDialog(dialogMakePayment, current)
		return m, nil

	case key.Matches(msg, m.keys.Package):
		if current.Hotspot() {
			m.errMsg = "Package changes are not available for hotspot accounts."
			return m, nil
		}
		m.dialog = openDialog(dialogChangePackage, current)
		m.dialog.busy = true
		return m, tea.Batch(m.spinner.Tick, m.packagesCmd(current))

	case key.Matches(msg, m.keys.WiFi):
		if current.Hotspot() {
			m.errMsg = "WiFi changes are not available for hotspot accounts."
			return m, nil
		}
		m.dialog = openDialog(dialogChangeWiFi, current)
		return m, nil

	case key.Matches(msg, m.keys.Suspend):
		m.dialog = openDialog(dialogSuspend, current)
		return m, nil
	}
	return m, nil
}

func (m *Model) selectedAccount() (domain.Account, bool) {
	if len(m.accounts) == 0 || m.cursor < 0 || m.cursor >= len(m.accounts) {
		return domain.Account{}, false
	}
	return m.accounts[m.cursor], true
}

func (m *Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := &m.dialog

	if key.Matches(msg, m.keys.Cancel) {
		if !d.busy {
			m.dialog = dialog{}
		}
		return m, nil
	}
	// The busy flag is the only resubmission guard: while a request is in
	// flight every other key is ignored.
	if d.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextItem):
		d.cycleFocus()
		return m, nil

	case key.Matches(msg, m.keys.Up) && d.kind == dialogChangePackage:
		if d.pkgCursor > 0 {
			d.pkgCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down) && d.kind == dialogChangePackage:
		if d.pkgCursor < len(d.packages)-1 {
			d.pkgCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submitDialog()
	}

	if len(d.inputs) > 0 {
		var cmd tea.Cmd
		d.inputs[d.focus], cmd = d.inputs[d.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) submitDialog() (tea.Model, tea.Cmd) {
	d := &m.dialog
	d.err = ""

	switch d.kind {
	case dialogMakePayment:
		d.busy = true
		return m, tea.Batch(m.spinner.Tick,
			m.initiatePaymentCmd(d.account.AccountNumber, d.inputs[1].Value(), d.inputs[0].Value()))

	case dialogConfirmPayment:
		d.busy = true
		return m, tea.Batch(m.spinner.Tick, m.confirmPaymentCmd(d.inputs[0].Value()))

	case dialogChangePackage:
		if !d.pkgsLoaded || len(d.packages) == 0 {
			return m, nil
		}
		d.busy = true
		return m, tea.Batch(m.spinner.Tick,
			m.changePackageCmd(d.account, d.packages[d.pkgCursor].ID))

	case dialogChangeWiFi:
		d.busy = true
		return m, tea.Batch(m.spinner.Tick,
			m.changeWiFiCmd(d.account, d.inputs[0].Value(), d.inputs[1].Value()))

	case dialogSuspend:
		d.busy = true
		return m, tea.Batch(m.spinner.Tick,
			m.toggleSuspensionCmd(m.accounts, d.account.AccountNumber))
	}
	return m, nil
}

// Compile-time assertion that Model implements tea.Model.
var _ tea.Model = (*Model)(nil)
