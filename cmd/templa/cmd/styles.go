package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// palette holds the output styles. A disabled palette leaves text untouched.
type palette struct {
	enabled bool

	title      lipgloss.Style
	label      lipgloss.Style
	value      lipgloss.Style
	ok         lipgloss.Style
	errorLabel lipgloss.Style
	location   lipgloss.Style
	gutter     lipgloss.Style
	caret      lipgloss.Style
}

func newPalette(enabled bool) palette {
	return palette{
		enabled: enabled,

		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary),

		label: lipgloss.NewStyle().
			Foreground(colorPrimary),

		value: lipgloss.NewStyle().
			Foreground(colorAccent),

		ok: lipgloss.NewStyle().
			Foreground(colorSecondary),

		errorLabel: lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true),

		location: lipgloss.NewStyle().
			Bold(true),

		gutter: lipgloss.NewStyle().
			Foreground(colorMuted),

		caret: lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true),
	}
}

func (p palette) render(style lipgloss.Style, text string) string {
	if !p.enabled || text == "" {
		return text
	}
	return style.Render(text)
}
