package display

import (
	"strings"

	"github.com/five82/roster/internal/roster"
)

// Phase is the transition state of a collection.
type Phase int

const (
	PhaseEntering Phase = iota
	PhaseSteady
	PhaseExiting
	PhaseGone
)

func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseSteady:
		return "steady"
	case PhaseExiting:
		return "exiting"
	case PhaseGone:
		return "gone"
	default:
		return "unknown"
	}
}

// Collection is the set of panels produced by one rebuild.
type Collection struct {
	id     uint64
	style  roster.Style
	panels []Panel
	term   string

	phase    Phase
	opacity  float64
	velocity float64

	// exit bookkeeping; the collection is detached once both are set
	faded   bool
	settled bool
}

func newCollection(id uint64, style roster.Style, panels []Panel, term string) *Collection {
	c := &Collection{id: id, style: style, panels: panels, phase: PhaseEntering}
	c.SetSearchTerm(term)
	return c
}

// ID returns the token ID of the rebuild that produced the collection.
func (c *Collection) ID() uint64 { return c.id }

// Style returns the style the panels were built with.
func (c *Collection) Style() roster.Style { return c.style }

// Len returns the number of panels, visible or not.
func (c *Collection) Len() int { return len(c.panels) }

// Panels returns every panel in display order.
func (c *Collection) Panels() []Panel { return c.panels }

// Phase returns the current transition phase.
func (c *Collection) Phase() Phase { return c.phase }

// Opacity returns the animated opacity in [0, 1].
func (c *Collection) Opacity() float64 { return c.opacity }

// Collapsed reports whether an exiting collection has stopped occupying layout space.
func (c *Collection) Collapsed() bool { return c.phase == PhaseGone || (c.phase == PhaseExiting && c.settled) }

// SearchTerm returns the term the panels are currently filtered by.
func (c *Collection) SearchTerm() string { return c.term }

// SetSearchTerm toggles panel visibility so only panels whose display name
// contains term (case-insensitively) remain visible. It never rebuilds panels.
func (c *Collection) SetSearchTerm(term string) {
	c.term = term
	needle := strings.ToLower(term)
	for _, p := range c.panels {
		p.SetVisible(matches(p.Entity(), needle))
	}
}

// Visible returns the panels that pass the current search term.
func (c *Collection) Visible() []Panel {
	out := make([]Panel, 0, len(c.panels))
	for _, p := range c.panels {
		if p.Visible() {
			out = append(out, p)
		}
	}
	return out
}

func matches(e roster.Entity, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.DisplayName), needle)
}
