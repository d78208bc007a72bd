// Package config loads roster's TOML configuration.
//
// # Overview
//
// Load reads ~/.config/roster/config.toml (or an explicit path) and returns an
// immutable Config. A missing file is not an error: roster runs on defaults
// out of the box. Blank or non-positive values also fall back to defaults.
//
// # TOML Format
//
//	feed_url     = "127.0.0.1:7488"
//	poll_seconds = 15
//	theme        = "Nightfox"          # Nightfox, Kanagawa, Slate; prefs.toml wins
//	log_file     = "~/.local/state/roster/roster.log"
//	log_level    = "info"              # debug, info, warn, error
//	card_width   = 32                  # minimum 16
//
//	[view]                             # startup selection only
//	group = "all"                      # all, online, offline
//	sort  = "recent"                   # recent, rank, name
//	style = "card"                     # card, list, brick
//
//	[transitions]
//	fade_in_ms  = 200
//	fade_out_ms = 100
//	settle_ms   = 25                   # 0 collapses retiring content immediately
//	fps         = 30
//
// Every field is optional. Tilde expansion is applied to paths.
//
// # Error Handling
//
// Load returns errors for unreadable files, malformed TOML, and unknown
// enum values in [view] or log_level. A typo in the view section fails
// loudly instead of silently showing the default selection.
//
// The [view] selection is read once. Changes made in the UI are not written
// back; the next launch starts from the file again.
package config
