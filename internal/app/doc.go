// Package app is the composition root for tally.
//
// Run loads the configuration, opens the log file, builds the state.Store
// from the configured group table and then either starts the TUI or, in
// print mode, writes one group's filtered list and statistics to a writer.
//
//	Run()
//	  ├─> config.Load()       groups, log file, log level
//	  ├─> logging.Open()      file logger (discarded when log_file = "")
//	  ├─> state.New()         selection store
//	  ├─> Print()             print mode only, then return
//	  ├─> config.LoadPrefs()  saved theme
//	  └─> ui.Run()            TUI (blocks until quit or ctx cancel)
//
// Errors from loading config, opening the log or building the store are
// returned wrapped; a failed prefs read only logs a warning.
package app
