// Package styles holds the lipgloss styles shared by cck's developer
// commands. Hook output never goes through this package.
package styles

import "charm.land/lipgloss/v2"

// Style variables, rebuilt by Init whenever the theme changes.
var (
	TitleStyle   lipgloss.Style
	HeaderStyle  lipgloss.Style
	AccentStyle  lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	MutedStyle   lipgloss.Style
	NormalStyle  lipgloss.Style
	InfoStyle    lipgloss.Style

	// MatchStyle highlights characters matched by a fuzzy filter.
	MatchStyle lipgloss.Style
)

func init() {
	applyTheme(currentTheme)
}

func applyTheme(t Theme) {
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	AccentStyle = lipgloss.NewStyle().Foreground(t.Accent)
	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
	NormalStyle = lipgloss.NewStyle().Foreground(t.Normal)
	InfoStyle = lipgloss.NewStyle().Foreground(t.Info)
	MatchStyle = lipgloss.NewStyle().Foreground(t.Accent).Underline(true)
}
