package ui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/roster/internal/config"
	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/roster"
	"github.com/five82/roster/internal/state"
)

// immediateScheduler fires transition timers without waiting.
type immediateScheduler struct{}

func (immediateScheduler) After(_ time.Duration, msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func rank(v int) *int { return &v }

func testEntities() []roster.Entity {
	now := time.Now()
	return []roster.Entity{
		{ID: 1, DisplayName: "peppy", Online: true, GlobalRank: rank(50), LastActivity: now},
		{ID: 2, DisplayName: "mrekk", Online: true, GlobalRank: rank(1), LastActivity: now.Add(-time.Hour)},
		{ID: 3, DisplayName: "Cookiezi", Online: false, LastActivity: now.Add(-48 * time.Hour)},
	}
}

func newTestModel(t *testing.T) (Model, *state.Store) {
	t.Helper()
	store := &state.Store{}
	m := New(Options{
		Context:   t.Context(),
		Store:     store,
		Config:    config.Default(),
		Source:    "test",
		Scheduler: immediateScheduler{},
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model), store
}

// drain runs cmd and feeds every resulting message back into the model in
// FIFO order, following batches.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(t, steps, 500, "message loop did not settle")
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		if msg == nil {
			continue
		}
		next, out := m.Update(msg)
		m = next.(Model)
		queue = append(queue, out)
	}
	return m
}

func press(m Model, k tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(k)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loaded(t *testing.T) Model {
	t.Helper()
	m, store := newTestModel(t)
	store.Update(testEntities(), nil)
	next, cmd := m.Update(snapshotMsg(store.Snapshot()))
	require.NotNil(t, cmd)
	return drain(t, next.(Model), cmd)
}

func visibleNames(m Model) []string {
	var names []string
	for _, p := range m.coord.Current().Visible() {
		names = append(names, p.Entity().DisplayName)
	}
	return names
}

func TestModel_SnapshotBuildsPanels(t *testing.T) {
	m := loaded(t)

	require.NotNil(t, m.coord.Current())
	assert.Equal(t, 3, m.coord.Current().Len())
	assert.Equal(t, int64(3), m.factory.Live())
	assert.Equal(t, []string{"peppy", "mrekk", "Cookiezi"}, visibleNames(m))

	view := ansi.Strip(m.View())
	for _, name := range []string{"peppy", "mrekk", "Cookiezi", "All 3", "Online 2", "Offline 1"} {
		assert.Contains(t, view, name)
	}
}

func TestModel_SameVersionDoesNotRebuild(t *testing.T) {
	m := loaded(t)
	started := m.coord.Stats().Started

	_, cmd := m.Update(snapshotMsg(m.store.Snapshot()))
	assert.Nil(t, cmd)
	assert.Equal(t, started, m.coord.Stats().Started)
}

func TestModel_GroupAndSortKeysRebuild(t *testing.T) {
	m := loaded(t)

	m, cmd := press(m, runes("2"))
	m = drain(t, m, cmd)
	assert.Equal(t, roster.GroupOnline, m.controls.Group.Get())
	assert.Equal(t, []string{"peppy", "mrekk"}, visibleNames(m))

	m, cmd = press(m, runes("s"))
	m = drain(t, m, cmd)
	assert.Equal(t, roster.SortRank, m.controls.Sort.Get())
	assert.Equal(t, []string{"mrekk", "peppy"}, visibleNames(m))

	m, cmd = press(m, tea.KeyMsg{Type: tea.KeyTab})
	m = drain(t, m, cmd)
	assert.Equal(t, roster.GroupOffline, m.controls.Group.Get())
	assert.Equal(t, []string{"Cookiezi"}, visibleNames(m))
}

func TestModel_SearchFiltersWithoutRebuild(t *testing.T) {
	m := loaded(t)
	started := m.coord.Stats().Started

	m, _ = press(m, runes("/"))
	require.True(t, m.searching)
	m, _ = press(m, runes("c"))
	m, _ = press(m, runes("O"))

	assert.Equal(t, "cO", m.controls.Search.Get())
	assert.Equal(t, []string{"Cookiezi"}, visibleNames(m))
	assert.Equal(t, started, m.coord.Stats().Started, "search must not rebuild")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.searching)
	assert.Equal(t, "cO", m.controls.Search.Get())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "", m.controls.Search.Get())
	assert.Len(t, visibleNames(m), 3)
}

func TestModel_NoMatchesMessage(t *testing.T) {
	m := loaded(t)
	m, _ = press(m, runes("/"))
	for _, r := range "zzz" {
		m, _ = press(m, runes(string(r)))
	}
	assert.Contains(t, ansi.Strip(m.View()), `No friends match "zzz"`)
}

func TestModel_StyleSwitchReleasesRetiredPanels(t *testing.T) {
	m := loaded(t)

	m, cmd := press(m, runes("v"))
	m = drain(t, m, cmd)

	assert.Equal(t, roster.StyleList, m.coord.Current().Style())
	assert.Nil(t, m.coord.Retiring())
	assert.Equal(t, int64(m.coord.Current().Len()), m.factory.Live())
	for _, p := range m.coord.Current().Panels() {
		_, ok := p.(*listPanel)
		assert.True(t, ok, "panel %T is not a list panel", p)
	}
}

func TestModel_QuitClosesCoordinator(t *testing.T) {
	m := loaded(t)

	m, cmd := press(m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, int64(0), m.factory.Live())
	assert.Nil(t, m.coord.Current())
}

func TestModel_ThemeCycleAndHelp(t *testing.T) {
	m := loaded(t)
	require.Equal(t, "Nightfox", m.theme.Name)

	m, _ = press(m, runes("T"))
	assert.Equal(t, "Kanagawa", m.theme.Name)
	assert.Equal(t, "Kanagawa", m.rc.theme.Name)

	m, _ = press(m, runes("?"))
	require.NotNil(t, m.modal)
	assert.Contains(t, ansi.Strip(m.View()), "Keyboard Shortcuts")

	m, _ = press(m, runes("x"))
	assert.Nil(t, m.modal)
}

func TestModel_ThemeCycleSavesPrefs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	m := New(Options{
		Context:   t.Context(),
		Store:     &state.Store{},
		Config:    config.Default(),
		Scheduler: immediateScheduler{},
		PrefsPath: path,
	})

	m, cmd := press(m, runes("T"))
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())

	p, err := prefs.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Kanagawa", p.Theme)
	assert.Equal(t, "Kanagawa", m.theme.Name)
}

func TestModel_EmptyFeedKeepsWaitingMessage(t *testing.T) {
	m, store := newTestModel(t)
	assert.Contains(t, ansi.Strip(m.View()), "Waiting for the friends feed")

	store.Update(nil, nil)
	next, cmd := m.Update(snapshotMsg(store.Snapshot()))
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.Contains(t, ansi.Strip(m.View()), "No friends yet")
}

func TestModel_HeaderShowsFeedErrors(t *testing.T) {
	m, store := newTestModel(t)
	store.Update(nil, errString("dial tcp: connection refused"))
	next, _ := m.Update(snapshotMsg(store.Snapshot()))
	m = next.(Model)

	header := ansi.Strip(m.renderHeader())
	assert.True(t, strings.Contains(header, "FEED OFFLINE"), "header = %q", header)
}

type errString string

func (e errString) Error() string { return string(e) }
