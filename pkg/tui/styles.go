package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorAccent  = lipgloss.Color("#06B6D4")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorWhite   = lipgloss.Color("#F9FAFB")
	colorInk     = lipgloss.Color("#1F2937")

	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	styleActiveBox = styleBox.
			BorderForeground(colorAccent)

	styleCursor = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleSelected = lipgloss.NewStyle().
			Underline(true)

	styleLabel = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	styleAlert = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorError).
			Bold(true).
			Padding(0, 1)

	styleSpinner = lipgloss.NewStyle().
			Foreground(colorPrimary)

	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// highlight paints text with an annotation color.
func highlight(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Foreground(colorInk)
}
