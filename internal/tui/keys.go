package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the account screen bindings shown in the footer help line.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Reload   key.Binding
	Pay      key.Binding
	Confirm  key.Binding
	Package  key.Binding
	WiFi     key.Binding
	Suspend  key.Binding
	Logout   key.Binding
	Quit     key.Binding
	Submit   key.Binding
	Cancel   key.Binding
	NextItem key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "prev account")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "next account")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Pay:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "make payment")),
		Confirm:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "confirm payment")),
		Package:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "change package")),
		WiFi:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "change wifi")),
		Suspend:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "suspend/unsuspend")),
		Logout:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "logout")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		NextItem: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	}
}
