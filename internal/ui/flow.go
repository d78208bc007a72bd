package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/display"
	"github.com/five82/roster/internal/roster"
)

// flowOptions controls how rendered panels wrap into rows.
type flowOptions struct {
	width  int
	hgap   int
	vgap   int
	center bool
}

func flowFor(style roster.Style, width int) flowOptions {
	switch style {
	case roster.StyleCard:
		return flowOptions{width: width, hgap: cardHGap, vgap: cardVGap, center: true}
	case roster.StyleBrick:
		return flowOptions{width: width, hgap: chipHGap}
	default:
		return flowOptions{width: width}
	}
}

// flow lays blocks out left to right, wrapping when the next block would
// exceed the width. A block wider than the row gets a row of its own.
func flow(blocks []string, opts flowOptions) string {
	if len(blocks) == 0 {
		return ""
	}
	var (
		rows    []string
		row     []string
		rowWide int
	)
	flush := func() {
		if len(row) == 0 {
			return
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top, row...)
		if opts.center && opts.width > 0 {
			line = lipgloss.PlaceHorizontal(opts.width, lipgloss.Center, line)
		}
		rows = append(rows, line)
		row, rowWide = nil, 0
	}

	gap := strings.Repeat(" ", opts.hgap)
	for _, b := range blocks {
		w := lipgloss.Width(b)
		need := w
		if len(row) > 0 {
			need += opts.hgap
		}
		if len(row) > 0 && opts.width > 0 && rowWide+need > opts.width {
			flush()
			need = w
		}
		if len(row) > 0 && opts.hgap > 0 {
			row = append(row, gap)
		}
		row = append(row, b)
		rowWide += need
	}
	flush()

	sep := "\n" + strings.Repeat("\n", opts.vgap)
	return strings.Join(rows, sep)
}

// renderCollection renders the visible panels of c with the flow for its style.
func renderCollection(c *display.Collection, width int) string {
	visible := c.Visible()
	if len(visible) == 0 {
		return ""
	}
	blocks := make([]string, 0, len(visible))
	for _, p := range visible {
		blocks = append(blocks, p.Render(width))
	}
	return flow(blocks, flowFor(c.Style(), width))
}
