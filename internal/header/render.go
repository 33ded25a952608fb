package header

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	barStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	brandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			MarginRight(4)

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("250")).
			Foreground(lipgloss.Color("255")).
			Padding(0, 1).
			MarginLeft(1)
)

// Render draws the header bar for v under the given brand name
func Render(v View, brand string) string {
	parts := []string{brandStyle.Render(brand)}

	if v.Toggle.Present() {
		parts = append(parts, buttonStyle.Render(v.Toggle.Label()))
	}

	switch v.Display {
	case DisplayLogout:
		parts = append(parts, buttonStyle.Render("Logout"))
	default:
		parts = append(parts, lipgloss.NewStyle().MarginLeft(1).Render(Logo()))
	}

	return barStyle.Render(lipgloss.JoinHorizontal(lipgloss.Center, parts...))
}
