package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/config"
	"github.com/five82/roster/internal/display"
	"github.com/five82/roster/internal/roster"
	"github.com/five82/roster/internal/state"
)

// Options configures the UI.
type Options struct {
	Context  context.Context
	Store    *state.Store
	Config   config.Config
	Source   string        // feed URL or file path, shown in the header
	Logger   *slog.Logger  // nil discards
	PollTick time.Duration // how often the store is checked; zero uses DefaultUIInterval

	// PrefsPath is where a cycled theme is remembered. Empty disables saving.
	PrefsPath string

	// Scheduler overrides the transition timer source. Tests use it to drive
	// transitions without waiting on wall-clock ticks.
	Scheduler display.Scheduler
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx      context.Context
	store    *state.Store
	source   string
	log      *slog.Logger
	pollTick time.Duration
	prefs    string

	// Rendering
	theme   Theme
	rc      *renderContext
	factory *panelFactory

	// Roster
	controls *display.Controls
	coord    *display.Coordinator

	// Widgets
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	search   textinput.Model
	viewport viewport.Model

	// UI state
	width     int
	height    int
	ready     bool
	searching bool
	modal     Modal

	// Data state
	snapshot state.Snapshot
	version  uint64
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultUIInterval
	}

	cfg := opts.Config
	if cfg.CardWidth <= 0 {
		cfg.CardWidth = config.Default().CardWidth
	}

	theme := GetTheme(cfg.Theme)
	rc := newRenderContext(theme, cfg.CardWidth)
	factory := newPanelFactory(rc)

	controls := display.NewControlsFrom(cfg.View.Group, cfg.View.Sort, cfg.View.Style)
	coord := display.New(controls, display.Options{
		Factory:   factory,
		Scheduler: opts.Scheduler,
		Logger:    logger,
		Context:   ctx,
		Timings: display.Timings{
			FadeIn:  cfg.Transitions.FadeIn,
			FadeOut: cfg.Transitions.FadeOut,
			Settle:  cfg.Transitions.Settle,
			FPS:     cfg.Transitions.FPS,
		},
	})

	m := Model{
		ctx:      ctx,
		store:    opts.Store,
		source:   opts.Source,
		log:      logger.With("component", "ui"),
		pollTick: pollTick,
		prefs:    opts.PrefsPath,
		theme:    theme,
		rc:       rc,
		factory:  factory,
		controls: controls,
		coord:    coord,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		search:   textinput.New(),
	}
	m.search.Prompt = "/ "
	m.search.Placeholder = "search friends"
	m.search.CharLimit = 64
	m.applyTheme(theme)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.pollTick),
		m.spinner.Tick,
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true

	case tickMsg:
		cmd = m.handleTick()

	case snapshotMsg:
		cmd = m.handleSnapshot(state.Snapshot(msg))

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)

	default:
		cmd = m.coord.Update(msg)
		if m.searching {
			var inputCmd tea.Cmd
			m.search, inputCmd = m.search.Update(msg)
			cmd = tea.Batch(cmd, inputCmd)
		}
	}

	m.syncViewport()
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderToolbar(),
		m.viewport.View(),
		m.renderFooter(),
	)
}

// Close tears down the coordinator. Later rebuild messages are ignored.
func (m Model) Close() {
	m.coord.Close()
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		m.modal = modal
		if closed {
			m.modal = nil
		}
		return m, cmd
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.coord.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.modal = newHelpModal(m.keys)
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.applyTheme(GetTheme(NextTheme(m.theme.Name)))
		m.log.Info("theme changed", "theme", m.theme.Name)
		return m, savePrefsCmd(m.prefs, m.theme.Name, m.log)

	case key.Matches(msg, m.keys.NextGroup):
		return m, m.controls.Group.Set(m.controls.Group.Get().Next())
	case key.Matches(msg, m.keys.GroupAll):
		return m, m.controls.Group.Set(roster.GroupAll)
	case key.Matches(msg, m.keys.GroupOnline):
		return m, m.controls.Group.Set(roster.GroupOnline)
	case key.Matches(msg, m.keys.GroupOffline):
		return m, m.controls.Group.Set(roster.GroupOffline)

	case key.Matches(msg, m.keys.CycleSort):
		return m, m.controls.Sort.Set(m.controls.Sort.Get().Next())
	case key.Matches(msg, m.keys.CycleStyle):
		return m, m.controls.Style.Set(m.controls.Style.Get().Next())
	case key.Matches(msg, m.keys.Rebuild):
		return m, m.coord.Rebuild()

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.ClearSearch):
		return m.clearSearch()

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleSearchKey feeds the search box. Every edit updates the search control,
// which filters the installed collection in place without a rebuild.
func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.coord.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.ClearSearch):
		return m.clearSearch()
	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, tea.Batch(cmd, m.controls.Search.Set(m.search.Value()))
}

func (m Model) clearSearch() (Model, tea.Cmd) {
	m.searching = false
	m.search.Blur()
	m.search.SetValue("")
	return m, m.controls.Search.Set("")
}

func (m Model) handleTick() tea.Cmd {
	if m.ctx.Err() != nil {
		m.coord.Close()
		return tea.Quit
	}
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// handleSnapshot stores the latest snapshot and pushes the entity set to the
// coordinator when its version moved.
func (m *Model) handleSnapshot(snap state.Snapshot) tea.Cmd {
	m.snapshot = snap
	if !snap.HasData || snap.Version == m.version {
		return nil
	}
	m.version = snap.Version
	m.log.Debug("entity set changed", "version", snap.Version, "count", len(snap.Entities))
	return m.coord.SetEntities(snap.Entities)
}

func (m *Model) applyTheme(theme Theme) {
	m.theme = theme
	m.rc.setTheme(theme)

	styles := theme.Styles()
	m.spinner.Style = styles.AccentText.Background(lipgloss.Color(theme.Surface))
	m.help.Styles.ShortKey = styles.MutedText.Background(lipgloss.Color(theme.Surface))
	m.help.Styles.ShortDesc = styles.FaintText.Background(lipgloss.Color(theme.Surface))
	m.help.Styles.ShortSeparator = styles.FaintText.Background(lipgloss.Color(theme.Surface))
	m.search.PromptStyle = styles.AccentText
	m.search.TextStyle = styles.Text
	m.search.PlaceholderStyle = styles.FaintText
}

func (m *Model) resize() {
	height := max(m.height-chromeHeight, 1)
	if !m.ready {
		m.viewport = viewport.New(m.width, height)
		m.viewport.KeyMap = viewport.KeyMap{
			PageDown:     m.keys.PageDown,
			PageUp:       m.keys.PageUp,
			HalfPageDown: key.NewBinding(key.WithDisabled()),
			HalfPageUp:   key.NewBinding(key.WithDisabled()),
			Down:         m.keys.Down,
			Up:           m.keys.Up,
		}
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = height
	}
	m.help.Width = m.width
	m.search.Width = max(min(m.width/4, 40), 10)
}

// syncViewport re-renders the panel area. While a retiring collection still
// occupies layout it is drawn in place of the new one; once it collapses the
// current collection takes over the area.
func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderPanels(m.viewport.Width))
}

func (m Model) renderPanels(width int) string {
	styles := m.theme.Styles()

	coll := m.coord.Current()
	if r := m.coord.Retiring(); r != nil && !r.Collapsed() {
		coll = r
	}

	if coll == nil {
		switch {
		case m.coord.Loading(), m.coord.State() == display.StateBuilding:
			return styles.MutedText.Render(m.spinner.View() + " building roster...")
		case m.snapshot.HasData:
			return styles.FaintText.Render("No friends yet.")
		default:
			return styles.FaintText.Render("Waiting for the friends feed...")
		}
	}

	content := renderCollection(coll, width)
	if content == "" {
		if term := coll.SearchTerm(); term != "" {
			return styles.FaintText.Render("No friends match \"" + term + "\".")
		}
		return styles.FaintText.Render("Nobody in this group.")
	}
	return fade(content, m.theme, coll.Opacity())
}
