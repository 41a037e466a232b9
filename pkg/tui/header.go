package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Version is set from main with the build version.
var Version = "dev"

func renderHeader(width int) string {
	logo := "▀█▀ ▄▀█ █   █   █▄█ █▀█ ▄▀█ █▀▄\n" +
		" █  █▀█ █▄▄ █▄▄  █  █▀▀ █▀█ █▄▀"

	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	versionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim))

	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width)

	header := lipgloss.JoinVertical(
		lipgloss.Left,
		logoStyle.Render(logo),
		versionStyle.Render("v"+Version),
	)

	return headerPadding.Render(header)
}
