package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

func TestFlow_WrapsAtWidth(t *testing.T) {
	got := flow([]string{"aaaa", "bbbb", "cccc"}, flowOptions{width: 10, hgap: 1, vgap: 1})
	want := "aaaa bbbb\n\ncccc"
	if got != want {
		t.Fatalf("flow = %q, want %q", got, want)
	}
}

func TestFlow_OversizedBlockGetsOwnRow(t *testing.T) {
	got := flow([]string{"ab", "0123456789ab", "cd"}, flowOptions{width: 8, hgap: 1})
	want := "ab\n0123456789ab\ncd"
	if got != want {
		t.Fatalf("flow = %q, want %q", got, want)
	}
}

func TestFlow_CentersRows(t *testing.T) {
	got := flow([]string{"aaaa", "bbbb", "cccc"}, flowOptions{width: 10, hgap: 1, center: true})
	for i, line := range strings.Split(got, "\n") {
		if w := lipgloss.Width(line); w != 10 {
			t.Fatalf("row %d width = %d, want 10: %q", i, w, line)
		}
	}
	if !strings.HasPrefix(strings.Split(got, "\n")[1], "   cccc") {
		t.Fatalf("last row not centered: %q", got)
	}
}

func TestFlow_Empty(t *testing.T) {
	if got := flow(nil, flowOptions{width: 10}); got != "" {
		t.Fatalf("flow(nil) = %q, want empty", got)
	}
}

func TestFadeColor(t *testing.T) {
	if got := fadeColor("#000000", "#ffffff", 0); got != "#000000" {
		t.Fatalf("fadeColor at 0 = %q, want #000000", got)
	}
	white, _ := colorful.Hex("#ffffff")
	for _, opacity := range []float64{1, 4} {
		c, err := colorful.Hex(fadeColor("#000000", "#ffffff", opacity))
		if err != nil {
			t.Fatalf("fadeColor returned invalid hex: %v", err)
		}
		if d := c.DistanceLab(white); d > 0.01 {
			t.Fatalf("fadeColor at %v is %v from white", opacity, d)
		}
	}
	if got := fadeColor("bogus", "#abcdef", 0.5); got != "#abcdef" {
		t.Fatalf("fadeColor invalid = %q, want target", got)
	}
}

func TestFade_KeepsText(t *testing.T) {
	theme := GetTheme("Slate")
	content := lipgloss.NewStyle().Bold(true).Render("peppy") + "\nmrekk"

	if got := fade(content, theme, 1); got != content {
		t.Fatalf("fade at full opacity changed content: %q", got)
	}
	if got := ansi.Strip(fade(content, theme, 0.4)); got != "peppy\nmrekk" {
		t.Fatalf("fade text = %q, want %q", got, "peppy\nmrekk")
	}
}
