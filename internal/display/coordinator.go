package display

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/five82/roster/internal/roster"
)

// State is the coordinator's rebuild state.
type State int

const (
	StateIdle State = iota
	StateBuilding
	StateSwapping
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBuilding:
		return "building"
	case StateSwapping:
		return "swapping"
	default:
		return "unknown"
	}
}

// Stats counts rebuild outcomes since the coordinator was created.
type Stats struct {
	Started   int // builds launched
	Cancelled int // tokens invalidated before their build was consumed
	Discarded int // builds whose result was dropped because their token was superseded
	Installed int // collections swapped into the slot
	Failed    int // builds that returned an error
}

// Options configure a Coordinator.
type Options struct {
	Factory   PanelFactory
	Scheduler Scheduler    // defaults to TickScheduler
	Logger    *slog.Logger // nil discards
	Timings   Timings      // zero value uses DefaultTimings
	Context   context.Context
}

// Coordinator rebuilds the panel collection whenever the entity set or one of
// the group, sort, or style controls changes. It must only be driven from the
// Bubble Tea Update loop; the build itself runs inside a tea.Cmd and reports
// back with a message.
type Coordinator struct {
	id        int64
	ctx       context.Context
	controls  *Controls
	factory   PanelFactory
	scheduler Scheduler
	log       *slog.Logger
	timings   Timings
	fadeIn    harmonica.Spring
	fadeOut   harmonica.Spring

	entities []roster.Entity
	state    State
	token    *Token
	seq      uint64
	slot     Slot
	loading  bool

	animating bool
	closed    bool
	stats     Stats
}

var lastID int64

func nextID() int64 {
	return atomic.AddInt64(&lastID, 1)
}

// New creates a coordinator and subscribes it to controls.
func New(controls *Controls, opts Options) *Coordinator {
	if controls == nil {
		controls = NewControls()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = TickScheduler{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	timings := DefaultTimings()
	if opts.Timings != (Timings{}) {
		timings = opts.Timings.withDefaults()
	}

	c := &Coordinator{
		id:        nextID(),
		ctx:       opts.Context,
		controls:  controls,
		factory:   opts.Factory,
		scheduler: opts.Scheduler,
		log:       opts.Logger.With("component", "rebuild"),
		timings:   timings,
		fadeIn:    newFadeSpring(timings.FPS, timings.FadeIn.Seconds()),
		fadeOut:   newFadeSpring(timings.FPS, timings.FadeOut.Seconds()),
	}

	controls.Group.Subscribe(func(_, _ roster.Group) tea.Cmd { return c.Rebuild() })
	controls.Sort.Subscribe(func(_, _ roster.SortBy) tea.Cmd { return c.Rebuild() })
	controls.Style.Subscribe(func(_, _ roster.Style) tea.Cmd { return c.Rebuild() })
	controls.Search.Subscribe(func(_, term string) tea.Cmd {
		c.applySearch(term)
		return nil
	})
	return c
}

// newFadeSpring returns a critically damped spring that covers ~99% of the
// distance within seconds.
func newFadeSpring(fps int, seconds float64) harmonica.Spring {
	if seconds <= 0 {
		seconds = 0.1
	}
	return harmonica.NewSpring(harmonica.FPS(fps), 6.6/seconds, 1.0)
}

// Controls returns the controls the coordinator observes.
func (c *Coordinator) Controls() *Controls { return c.controls }

// State returns the current rebuild state.
func (c *Coordinator) State() State { return c.state }

// Loading reports whether the loading indicator should be visible.
func (c *Coordinator) Loading() bool { return c.loading }

// Current returns the live collection, or nil.
func (c *Coordinator) Current() *Collection { return c.slot.current }

// Retiring returns the collection being faded out, or nil.
func (c *Coordinator) Retiring() *Collection { return c.slot.retiring }

// Stats returns rebuild counters.
func (c *Coordinator) Stats() Stats { return c.stats }

// Entities returns the current entity set.
func (c *Coordinator) Entities() []roster.Entity { return c.entities }

// Counts returns the group populations of the current entity set.
func (c *Coordinator) Counts() roster.Counts { return roster.Count(c.entities) }

// SetEntities replaces the entity set and triggers a rebuild. Replacing the
// set always invalidates a build in flight, even when the new set is empty.
func (c *Coordinator) SetEntities(entities []roster.Entity) tea.Cmd {
	if c.closed {
		return nil
	}
	c.entities = roster.Clone(entities)
	if len(c.entities) == 0 && c.token != nil {
		c.cancelInFlight()
		c.loading = false
		c.state = c.restingState()
	}
	return c.Rebuild()
}

// Rebuild cancels any build in flight and starts a new one. Nothing happens
// while the entity set is empty; whatever is on screen stays.
func (c *Coordinator) Rebuild() tea.Cmd {
	if c.closed {
		return nil
	}
	if len(c.entities) == 0 {
		c.log.Debug("rebuild skipped, entity set is empty")
		return nil
	}
	if c.factory == nil {
		c.log.Error("rebuild skipped, no panel factory configured")
		return nil
	}

	c.cancelInFlight()

	c.seq++
	tok := newToken(c.ctx, c.seq)
	c.token = tok
	if !c.slot.Empty() {
		c.loading = true
	}
	c.state = StateBuilding
	c.stats.Started++

	req := buildRequest{
		entities: roster.Clone(c.entities),
		group:    c.controls.Group.Get(),
		sort:     c.controls.Sort.Get(),
		style:    c.controls.Style.Get(),
		term:     c.controls.Search.Get(),
	}
	c.log.Debug("rebuild started",
		"token", tok.ID(),
		"entities", len(req.entities),
		"group", req.group,
		"sort", req.sort,
		"style", req.style,
	)
	return buildCmd(c.id, tok, c.factory, req)
}

// Update consumes the coordinator's own messages and ignores everything else.
func (c *Coordinator) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case builtMsg:
		if msg.owner != c.id {
			return nil
		}
		return c.handleBuilt(msg)
	case transitionMsg:
		if msg.owner != c.id || c.closed {
			return nil
		}
		c.handleTransition(msg)
		return nil
	case frameMsg:
		if msg.owner != c.id {
			return nil
		}
		return c.handleFrame()
	}
	return nil
}

// Close cancels outstanding work and releases every panel. Messages that
// arrive afterwards are ignored.
func (c *Coordinator) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.cancelInFlight()
	c.loading = false
	c.slot.clear()
	c.state = StateIdle
}

func (c *Coordinator) cancelInFlight() {
	if c.token == nil {
		return
	}
	c.token.Cancel()
	c.stats.Cancelled++
	c.log.Debug("rebuild cancelled", "token", c.token.ID())
	c.token = nil
}

func (c *Coordinator) handleBuilt(msg builtMsg) tea.Cmd {
	if c.closed || c.token == nil || msg.token != c.token.ID() || c.token.Cancelled() {
		if msg.collection != nil {
			release(msg.collection.panels)
		}
		c.stats.Discarded++
		return nil
	}

	// The build is consumed; cancelling detaches its context from the parent.
	c.token.Cancel()
	c.token = nil
	c.loading = false

	if msg.err != nil {
		c.stats.Failed++
		c.log.Error("rebuild failed, keeping previous content", "token", msg.token, "error", msg.err)
		c.state = c.restingState()
		return nil
	}
	return c.swap(msg.collection)
}

func (c *Coordinator) swap(next *Collection) tea.Cmd {
	var cmds []tea.Cmd

	// At most one retiring collection: finish the old exit now.
	if c.slot.retiring != nil {
		c.slot.detach()
	}

	next.SetSearchTerm(c.controls.Search.Get())
	if demoted := c.slot.install(next); demoted != nil {
		cmds = append(cmds,
			c.scheduler.After(c.timings.FadeOut, transitionMsg{owner: c.id, collection: demoted.id, event: exitFaded}),
			c.scheduler.After(c.timings.Settle, transitionMsg{owner: c.id, collection: demoted.id, event: exitSettled}),
		)
	}
	cmds = append(cmds, c.scheduler.After(c.timings.FadeIn, transitionMsg{owner: c.id, collection: next.id, event: enterDone}))
	if cmd := c.animate(); cmd != nil {
		cmds = append(cmds, cmd)
	}

	c.state = c.restingState()
	c.stats.Installed++
	c.log.Debug("rebuild installed", "token", next.id, "panels", next.Len(), "style", next.style)
	return tea.Batch(cmds...)
}

func (c *Coordinator) handleTransition(msg transitionMsg) {
	switch msg.event {
	case enterDone:
		cur := c.slot.current
		if cur == nil || cur.id != msg.collection || cur.phase != PhaseEntering {
			return
		}
		cur.phase = PhaseSteady
		cur.opacity = 1
		cur.velocity = 0

	case exitFaded, exitSettled:
		r := c.slot.retiring
		if r == nil || r.id != msg.collection {
			return
		}
		if msg.event == exitFaded {
			r.faded = true
			r.opacity = 0
		} else {
			r.settled = true
		}
		if r.faded && r.settled {
			c.slot.detach()
			if c.state == StateSwapping {
				c.state = StateIdle
			}
		}
	}
}

func (c *Coordinator) handleFrame() tea.Cmd {
	c.animating = false
	if c.closed {
		return nil
	}
	if cur := c.slot.current; cur != nil && cur.phase == PhaseEntering {
		cur.opacity, cur.velocity = c.fadeIn.Update(cur.opacity, cur.velocity, 1)
		cur.opacity = clamp01(cur.opacity)
	}
	if r := c.slot.retiring; r != nil && !r.faded {
		r.opacity, r.velocity = c.fadeOut.Update(r.opacity, r.velocity, 0)
		r.opacity = clamp01(r.opacity)
	}
	return c.animate()
}

// animate schedules the next frame while a transition is running.
func (c *Coordinator) animate() tea.Cmd {
	if c.animating || !c.transitioning() {
		return nil
	}
	c.animating = true
	return c.scheduler.After(c.timings.frame(), frameMsg{owner: c.id})
}

func (c *Coordinator) transitioning() bool {
	if cur := c.slot.current; cur != nil && cur.phase == PhaseEntering {
		return true
	}
	return c.slot.retiring != nil
}

// restingState is the state to return to when no build is in flight.
func (c *Coordinator) restingState() State {
	if c.slot.retiring != nil {
		return StateSwapping
	}
	return StateIdle
}

func (c *Coordinator) applySearch(term string) {
	if c.closed || c.slot.current == nil {
		return
	}
	c.slot.current.SetSearchTerm(term)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Messages

type transitionEvent int

const (
	enterDone transitionEvent = iota
	exitFaded
	exitSettled
)

type transitionMsg struct {
	owner      int64
	collection uint64
	event      transitionEvent
}

type frameMsg struct {
	owner int64
}

type builtMsg struct {
	owner      int64
	token      uint64
	collection *Collection
	err        error
}

type buildRequest struct {
	entities []roster.Entity
	group    roster.Group
	sort     roster.SortBy
	style    roster.Style
	term     string
}

// Commands

// buildCmd runs the filter, sort, and panel construction off the Update loop.
// It only reads its arguments, never the coordinator.
func buildCmd(owner int64, tok *Token, factory PanelFactory, req buildRequest) tea.Cmd {
	return func() tea.Msg {
		col, err := build(tok, factory, req)
		if tok.Cancelled() {
			if col != nil {
				release(col.panels)
			}
			// Report back so the superseded build is counted as discarded.
			return builtMsg{owner: owner, token: tok.ID(), err: tok.Context().Err()}
		}
		return builtMsg{owner: owner, token: tok.ID(), collection: col, err: err}
	}
}

func build(tok *Token, factory PanelFactory, req buildRequest) (*Collection, error) {
	selected := roster.Sort(roster.Filter(req.entities, req.group), req.sort)

	panels := make([]Panel, 0, len(selected))
	for _, e := range selected {
		if tok.Cancelled() {
			release(panels)
			return nil, tok.Context().Err()
		}
		p, err := factory.NewPanel(e, req.style)
		if err != nil {
			release(panels)
			return nil, fmt.Errorf("build panel for entity %d: %w", e.ID, err)
		}
		panels = append(panels, p)
	}
	return newCollection(tok.ID(), req.style, panels, req.term), nil
}
