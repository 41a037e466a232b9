package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorAccent   = "170" // Purple/magenta fallback accent (settings may override)
	ColorInactive = "240" // Gray for inactive elements
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorDanger   = "196" // Red for the error display
	ColorWhite    = "255" // White
	ColorDark     = "235" // Dark for contrast
	ColorKey      = "252" // Button labels
)

// Common styles
var (
	// Display region
	DisplayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorInactive)).
			Padding(0, 1).
			Align(lipgloss.Right).
			Bold(true)

	ErrorDisplayStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDanger)).
				Bold(true)

	PendingOpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	// Keypad buttons
	ButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorKey)).
			Background(lipgloss.Color(ColorDark)).
			Padding(0, 1).
			Margin(0, 1, 0, 0)

	OperatorButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWhite)).
				Background(lipgloss.Color(ColorInactive)).
				Padding(0, 1).
				Margin(0, 1, 0, 0).
				Bold(true)

	// Tape pane
	TapeBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorInactive)).
			Padding(0, 1)

	TapeEntryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	// Footer help
	FooterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))
)

// AccentStyle returns the style for accent-colored elements (the armed
// operator button and the display value), using the configured color.
func AccentStyle(color string) lipgloss.Style {
	if color == "" {
		color = ColorAccent
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWhite)).
		Background(lipgloss.Color(color)).
		Padding(0, 1).
		Margin(0, 1, 0, 0).
		Bold(true)
}

// DisplayValueStyle returns the style for the displayed value.
func DisplayValueStyle(color string) lipgloss.Style {
	if color == "" {
		color = ColorAccent
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true)
}
