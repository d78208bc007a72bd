// Package ui provides the Bubble Tea front end for roster.
//
// # Architecture Overview
//
// The model pulls snapshots from state.Store on a tea.Tick and hands a changed
// entity set to a display.Coordinator, which rebuilds panels inside a tea.Cmd
// and crossfades the new collection in. Everything the coordinator owns is
// touched only from Update, so the UI has a single logical thread.
//
// # Package Structure
//
//   - app.go: Model, Update loop, key handling, panel area rendering
//   - ui.go: messages, commands, and the Run entry point
//   - panels.go: the panel factory and the card, list, and brick panels
//   - flow.go: wrapping panels into rows for each display style
//   - fade.go: tinting a collection while it fades in or out
//   - header.go: status bar, group tabs, toolbar, footer
//   - keys.go, help.go, modal.go: bindings and the help overlay
//   - theme.go, style_helpers.go, layout.go, strings.go: presentation helpers
//
// # Key Bindings
//
//   - tab: Next group; 1/2/3 jump to All, Online, Offline
//   - s: Cycle sort order
//   - v: Cycle display style
//   - /: Search by name (enter keeps the filter, esc clears it)
//   - r: Force a rebuild
//   - T: Cycle theme (remembered across sessions)
//   - ?: Full help
//   - q or Ctrl+C: Exit
//
// # Rendering Notes
//
// Terminals cannot overlay two layers, so while a retiring collection still
// holds its layout it is drawn in place of the new one. Once it collapses the
// current collection takes over the panel area.
package ui
