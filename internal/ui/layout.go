package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops secondary fields.
	LayoutCompactWidth = 100

	// LayoutWideWidth is the minimum width to show rebuild statistics.
	LayoutWideWidth = 140
)

// Chrome rows around the panel area: header, toolbar, footer.
const chromeHeight = 3

// Gaps between panels, per display style.
const (
	cardHGap = 2
	cardVGap = 1
	chipHGap = 1
)

// DefaultUIInterval is how often the UI checks the store for a new entity set.
const DefaultUIInterval = time.Second
