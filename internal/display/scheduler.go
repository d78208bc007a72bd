package display

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Scheduler delivers msg back to the program after d.
type Scheduler interface {
	After(d time.Duration, msg tea.Msg) tea.Cmd
}

// TickScheduler schedules with tea.Tick.
type TickScheduler struct{}

// After implements Scheduler.
func (TickScheduler) After(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// Timings configures the crossfade.
type Timings struct {
	FadeIn  time.Duration
	FadeOut time.Duration
	// Settle is how long a retiring collection keeps its layout space.
	Settle time.Duration
	FPS    int
}

// DefaultTimings returns the standard crossfade: a 200ms fade-in, a 100ms
// fade-out, and a 25ms settle delay, animated at 30 frames per second.
func DefaultTimings() Timings {
	return Timings{
		FadeIn:  200 * time.Millisecond,
		FadeOut: 100 * time.Millisecond,
		Settle:  25 * time.Millisecond,
		FPS:     30,
	}
}

func (t Timings) withDefaults() Timings {
	def := DefaultTimings()
	if t.FadeIn <= 0 {
		t.FadeIn = def.FadeIn
	}
	if t.FadeOut <= 0 {
		t.FadeOut = def.FadeOut
	}
	if t.Settle < 0 {
		t.Settle = def.Settle
	}
	if t.FPS <= 0 {
		t.FPS = def.FPS
	}
	return t
}

func (t Timings) frame() time.Duration {
	return time.Second / time.Duration(t.FPS)
}
