package app

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/five82/tally/internal/state"
)

// ErrGroupOutOfRange is returned by Print for a group number outside the
// group table.
var ErrGroupOutOfRange = errors.New("group out of range")

// Print selects group (1-based), applies query and writes the filtered items
// followed by the statistics summary.
func Print(w io.Writer, store *state.Store, labels []string, group int, query string) error {
	if group < 1 || group > store.GroupCount() {
		return fmt.Errorf("%w: %d (have %d)", ErrGroupOutOfRange, group, store.GroupCount())
	}
	store.SelectGroup(group - 1)
	store.SetQuery(query)

	var b strings.Builder
	label := fmt.Sprintf("List %d", group)
	if group-1 < len(labels) {
		label = labels[group-1]
	}
	b.WriteString(label)
	if query != "" {
		fmt.Fprintf(&b, " (filter %q)", query)
	}
	b.WriteString("\n")

	items := store.Filtered()
	if len(items) == 0 {
		b.WriteString("  (no matches)\n")
	}
	for _, item := range items {
		b.WriteString("  ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(store.StatisticsSummary())

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
