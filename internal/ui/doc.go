// Package ui provides the Bubble Tea terminal interface for tally.
//
// The screen is a single column:
//
//	header    label, position, match count, active filter, theme
//	carousel  one card per group; the selected card is highlighted
//	search    "/" focuses the box; every edit re-filters the list
//	list      the filtered items of the selected group
//	footer    short key help
//
// The statistics popup ("s") and the help overlay ("?") are drawn over the
// whole screen.
//
// The UI never filters or counts anything itself. Key events are translated
// into calls on the *state.Store passed in Options:
//
//   - carousel left/right and digit keys call SelectGroup
//   - search box edits and Esc call SetQuery
//   - the statistics popup calls StatisticsSummary
//
// and rendering reads the store back. Options.Labels supplies the carousel
// card titles and must have one entry per group.
//
// Theme changes ("T") are written to the preferences file through
// config.SavePrefs. Events are logged at debug level to the logger in
// Options.
package ui
