// Package display owns the panel rebuild pipeline.
//
// # Overview
//
// Controls holds the group, sort, style, and search fields as observable
// values. A Coordinator subscribes to the first three and rebuilds the panel
// collection whenever one of them, or the entity set, changes:
//
//	Controls.Set ──→ Coordinator.Rebuild ──→ tea.Cmd (filter, sort, build panels)
//	                        │                         │
//	                  cancel old Token           builtMsg
//	                                                  ↓
//	                                   Update: token current? ──no──→ release panels
//	                                                  │ yes
//	                                                  ↓
//	                                   Slot.install: current → retiring
//
// At most one build is in flight. Starting another cancels the previous
// Token; a result that arrives for a cancelled or superseded token is
// discarded and its panels are released.
//
// # Transitions
//
// The Slot holds the current collection and at most one retiring one. A new
// collection fades in over FadeIn; the demoted one fades out over FadeOut and
// keeps its layout until Settle elapses. It is released only after both timers
// have fired. Installing again while a collection is still retiring drops that
// collection immediately. Opacity follows a harmonica spring between frames.
//
// # Search
//
// The search field never triggers a rebuild. It toggles panel visibility on
// the installed collection and is reapplied to each new collection on install.
//
// # Threading
//
// Every Coordinator method must be called from the Bubble Tea Update loop.
// Only the build runs inside a tea.Cmd, and it touches nothing but its own
// request and the PanelFactory.
package display
