// Package config loads the tally configuration and user preferences.
//
// # Configuration
//
// Load reads TOML from ~/.config/tally/config.toml unless a path is given.
// A missing file is not an error: the built-in group table (four groups of
// four items) and default logging settings are used instead.
//
//	log_file  = "~/.local/state/tally/tally.log"
//	log_level = "info"
//
//	[[groups]]
//	label = "Classics"
//	items = ["apple", "banana", "orange", "blueberry"]
//
// Each [[groups]] entry pairs a carousel label with its items, so the label
// list always has the same length as the group table. Blank labels become
// "List <n>". Items are kept verbatim; they are what the search box filters
// and what the statistics popup counts. Setting log_file to an empty string
// turns logging off.
//
// Load returns wrapped errors for unreadable files, malformed TOML and unknown
// log levels.
//
// # Preferences
//
// Prefs live in a separate file (~/.config/tally/prefs.toml) because the UI
// writes them back. LoadPrefs never fails; problems are logged and the
// default theme is used. SavePrefs writes through a temp file and rename.
package config
