// Package state holds the selection state behind the tally screen.
//
// A Store owns an immutable table of groups (each an ordered list of short
// strings), the index of the selected group, the raw search query, and the
// filtered view derived from the two. The UI layer reads from the store and
// drives it through three operations:
//
//   - SelectGroup: carousel moves and jumps
//   - SetQuery: every edit of the search box
//   - StatisticsSummary: the statistics popup
//
// # Filtering
//
// The filtered view is recomputed from scratch whenever the selection or the
// query changes. An empty query yields the whole selected group. A non-empty
// query keeps the items that contain it under Unicode case folding
// (golang.org/x/text/cases), preserving group order. Switching groups
// re-applies the active query to the new group rather than clearing it.
//
// # Statistics
//
// StatisticsSummary always looks at the unfiltered selected group. Characters
// are grapheme clusters (github.com/rivo/uniseg), so a letter followed by a
// combining accent counts once. Spaces and punctuation are counted like any
// other character. Entries are ordered by descending count; ties keep the
// order in which the characters were first encountered.
//
// # Preconditions
//
// Group indices must lie in [0, GroupCount()). Out-of-range indices panic
// rather than being clamped, since the UI only ever produces indices from
// its own label list. Callers handling user input (the CLI -group flag)
// validate against GroupCount first.
//
// # Concurrency
//
// Store has no internal locking. The Bubble Tea model owns it and only
// touches it from Update. Code sharing a store across goroutines must
// synchronize externally.
package state
