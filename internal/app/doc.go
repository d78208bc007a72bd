// Package app is the composition root for roster.
//
// # Overview
//
// Run loads configuration, opens the log file, picks a friends source,
// starts the background poller, and hands a shared state.Store to the UI.
// It blocks until the user quits or the context is cancelled.
//
// # Components
//
//   - app.go: Run and source selection (HTTP feed or --file payload)
//   - poller.go: background refresh loop with exponential backoff
//   - logging.go: slog text handler writing to log_file
//
// # Data Flow
//
//	Run()
//	 ├─> config.Load()          read config.toml
//	 ├─> openLogger()           slog to ~/.local/state/roster/roster.log
//	 ├─> prefs.Load()           last theme picked with T overrides config
//	 ├─> feed.NewClient()       or &feed.File{} for --file
//	 ├─> refresh()              populate the store before the first frame
//	 ├─> StartPoller()          background updates
//	 └─> ui.Run()               Bubble Tea program (blocks)
//
// # Polling Behavior
//
// The poller fetches every poll_seconds (default 15s; --poll overrides).
// After a failure the next wait doubles per consecutive failure, capped at
// 30 seconds, and returns to the base interval on the first success:
//
//	failures: 0    1    2    3     4+
//	wait:     15s  30s  30s  30s   30s   (base 15s)
//	wait:     2s   4s   8s   16s   30s   (base 2s)
//
// A fetch interrupted by shutdown is not recorded as a failure.
//
// # Logging
//
// The TUI owns the terminal, so all logging goes to a file through log/slog.
// Components get a child logger tagged with "component" (poller, rebuild,
// ui). An empty log_file discards logs.
package app
