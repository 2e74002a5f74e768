package cli

import "github.com/charmbracelet/lipgloss"

// Styles for terminal output. lipgloss degrades to plain text when
// the output is not a TTY, so these are safe in scripts and CI.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00B894"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FDCB6E"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#D63031"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#636E72"))
)

// statusStyle maps an artifact status to its display style.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case "completed", "done":
		return successStyle
	case "in_progress", "in_review":
		return warningStyle
	case "blocked", "error":
		return errorStyle
	default:
		return mutedStyle
	}
}
