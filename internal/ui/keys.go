package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Controls
	NextGroup    key.Binding
	GroupAll     key.Binding
	GroupOnline  key.Binding
	GroupOffline key.Binding
	CycleSort    key.Binding
	CycleStyle   key.Binding
	Rebuild      key.Binding

	// Search
	Search      key.Binding
	Confirm     key.Binding
	ClearSearch key.Binding

	// Scrolling
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		NextGroup: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next group"),
		),
		GroupAll: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "All"),
		),
		GroupOnline: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Online"),
		),
		GroupOffline: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Offline"),
		),
		CycleSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Cycle sort"),
		),
		CycleStyle: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Cycle style"),
		),
		Rebuild: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Rebuild"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Keep search"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear search"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextGroup, k.CycleSort, k.CycleStyle, k.Search, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextGroup, k.GroupAll, k.GroupOnline, k.GroupOffline},
		{k.CycleSort, k.CycleStyle, k.Rebuild},
		{k.Search, k.Confirm, k.ClearSearch},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
