package cmd

import "github.com/charmbracelet/lipgloss"

// Styles shared by the template table and dialog output. The section banner
// reuses the header bar colors so the table reads as part of the dashboard.
var (
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	rowSavedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	failureStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203"))

	// manifest boxes frame each rendered template like a table cell
	manifestBox = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("250")).
			Padding(0, 1)

	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Width(12)
)
