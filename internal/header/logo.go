package header

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const logoRaw = `
╦ ╦╔═╗╦═╗╦╔═╔═╗╔═╗╔═╗╔═╗╔═╗╔═╗
║║║║ ║╠╦╝╠╩╗╚═╗╠═╝╠═╣║  ║╣ ╚═╗
╚╩╝╚═╝╩╚═╩ ╩╚═╝╩  ╩ ╩╚═╝╚═╝╚═╝
`

var (
	gradientStart = "#ff00ff" // neon magenta
	gradientEnd   = "#00ffff" // electric cyan
)

// Logo returns the brand logo painted with a horizontal gradient
func Logo() string {
	lines := strings.Split(strings.Trim(logoRaw, "\n"), "\n")

	maxWidth := 0
	for _, line := range lines {
		if w := len([]rune(line)); w > maxWidth {
			maxWidth = w
		}
	}

	startColor, _ := colorful.Hex(gradientStart)
	endColor, _ := colorful.Hex(gradientEnd)

	var result strings.Builder
	for n, line := range lines {
		for i, char := range []rune(line) {
			if char == ' ' {
				result.WriteRune(char)
				continue
			}
			t := float64(i) / float64(maxWidth)
			c := startColor.BlendLuv(endColor, t)
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
			result.WriteString(style.Render(string(char)))
		}
		if n < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
