package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name
	ColorSecondary Color = "86" // Cyan - aliases
)

// Timer state colors
const (
	ColorRunning Color = "2" // Green - running timer
	ColorStopped Color = "8" // Gray - stopped entry
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - totals
	ColorMuted     Color = "241" // Gray - separators, IDs
	ColorWarning   Color = "3"   // Yellow - masked secrets
)
