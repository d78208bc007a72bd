package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// helpModal shows every binding. Any key closes it.
type helpModal struct {
	help help.Model
	keys keyMap
}

func newHelpModal(keys keyMap) helpModal {
	h := help.New()
	h.ShowAll = true
	return helpModal{help: h, keys: keys}
}

func (h helpModal) Update(msg tea.Msg, _ keyMap) (Modal, tea.Cmd, bool) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return h, nil, true
	}
	return h, nil, false
}

func (h helpModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	h.help.Styles.FullKey = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Warning))
	h.help.Styles.FullDesc = styles.Text
	h.help.Styles.FullSeparator = styles.FaintText
	h.help.Width = max(width-8, 20)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")
	b.WriteString(h.help.View(h.keys))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("press any key to close"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
