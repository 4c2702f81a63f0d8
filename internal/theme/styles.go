package theme

import "github.com/charmbracelet/lipgloss"

// Timesheet styles
var (
	RunningStyle = lipgloss.NewStyle().
			Foreground(ColorRunning).
			Bold(true)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			TabWidth(lipgloss.NoTabConversion)

	TotalStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			TabWidth(lipgloss.NoTabConversion)
)

// Listing styles
var (
	AliasStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	IDStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	KeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	SecretStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// Paint renders s with style when enabled, and returns s untouched otherwise
func Paint(enabled bool, style lipgloss.Style, s string) string {
	if !enabled || s == "" {
		return s
	}
	return style.Render(s)
}
