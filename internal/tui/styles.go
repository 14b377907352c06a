package tui

import (
	"github.com/charmbracelet/lipgloss"

	"selfcare/internal/domain"
)

// styles carries the lipgloss styles for the session. Tenant branding
// colors from AppSettings override the defaults once settings arrive.
type styles struct {
	Header    lipgloss.Style
	Slogan    lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	Selected  lipgloss.Style
	Suspended lipgloss.Style
	Dialog    lipgloss.Style
	Label     lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2E97C0")),
		Slogan:    lipgloss.NewStyle().Faint(true).Italic(true),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Help:      lipgloss.NewStyle().Faint(true),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		CardTitle: lipgloss.NewStyle().Bold(true),
		Selected:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#2E97C0")).Padding(0, 1),
		Suspended: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Dialog:    lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 2),
		Label:     lipgloss.NewStyle().Bold(true),
	}
}

// applyBranding recolors the styles with the tenant's palette.
func (s *styles) applyBranding(settings domain.AppSettings) {
	if settings.PrimaryColor != "" {
		primary := lipgloss.Color(settings.PrimaryColor)
		s.Header = s.Header.Foreground(primary)
		s.Selected = s.Selected.BorderForeground(primary)
	}
	if settings.TertiaryColor != "" {
		s.Dialog = s.Dialog.BorderForeground(lipgloss.Color(settings.TertiaryColor))
	}
}
