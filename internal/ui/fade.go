package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

// fadeColor blends from toward to by opacity in Lab space.
func fadeColor(from, to string, opacity float64) string {
	a, err := colorful.Hex(from)
	if err != nil {
		return to
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return to
	}
	opacity = max(0, min(1, opacity))
	return a.BlendLab(b, opacity).Clamped().Hex()
}

// fade repaints rendered content in a single blended color. Terminals have no
// alpha channel, so a partially transparent collection is drawn as plain text
// tinted between the background and the text color. Full opacity returns the
// content untouched.
func fade(content string, theme Theme, opacity float64) string {
	if opacity >= 1 || content == "" {
		return content
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(fadeColor(theme.Background, theme.Text, opacity)))
	lines := strings.Split(ansi.Strip(content), "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}
