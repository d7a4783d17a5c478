package state

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// ErrNoGroups is returned by New when the group table is empty.
var ErrNoGroups = errors.New("group table has no groups")

// Snapshot is an immutable copy of the store for rendering.
type Snapshot struct {
	Groups        [][]string
	SelectedIndex int
	Query         string
	Filtered      []string
}

// Selected returns the unfiltered items of the selected group.
func (s Snapshot) Selected() []string {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Groups) {
		return nil
	}
	return s.Groups[s.SelectedIndex]
}

// Store owns the group table, the selected group, the search query and the
// filtered view derived from them. It is not safe for concurrent use.
type Store struct {
	groups   [][]string
	selected int
	query    string
	filtered []string
}

// New builds a store over a copy of groups with the first group selected and
// an empty query.
func New(groups [][]string) (*Store, error) {
	if len(groups) == 0 {
		return nil, ErrNoGroups
	}
	s := &Store{groups: cloneGroups(groups)}
	s.refilter()
	return s, nil
}

// SelectGroup makes index the selected group and re-applies the current query
// to it. An index outside [0, GroupCount()) panics.
func (s *Store) SelectGroup(index int) {
	s.mustIndex(index)
	s.selected = index
	s.refilter()
}

// SetQuery replaces the search query and recomputes the filtered view. The
// text is stored as given.
func (s *Store) SetQuery(text string) {
	s.query = text
	s.refilter()
}

// Filtered returns the items of the selected group that match the query, in
// group order.
func (s *Store) Filtered() []string {
	return cloneItems(s.filtered)
}

// SelectedIndex returns the zero-based index of the selected group.
func (s *Store) SelectedIndex() int {
	return s.selected
}

// Query returns the raw search text.
func (s *Store) Query() string {
	return s.query
}

// GroupCount returns the number of groups.
func (s *Store) GroupCount() int {
	return len(s.groups)
}

// Group returns a copy of the items of group index. An index outside
// [0, GroupCount()) panics.
func (s *Store) Group(index int) []string {
	s.mustIndex(index)
	return cloneItems(s.groups[index])
}

// Groups returns a copy of the whole group table.
func (s *Store) Groups() [][]string {
	return cloneGroups(s.groups)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Groups:        cloneGroups(s.groups),
		SelectedIndex: s.selected,
		Query:         s.query,
		Filtered:      cloneItems(s.filtered),
	}
}

func (s *Store) mustIndex(index int) {
	if index < 0 || index >= len(s.groups) {
		panic(fmt.Sprintf("state: group index %d out of range [0, %d)", index, len(s.groups)))
	}
}

func (s *Store) refilter() {
	s.filtered = filterItems(s.groups[s.selected], s.query)
}

// filterItems keeps the items containing query under Unicode case folding.
// An empty query keeps everything.
func filterItems(items []string, query string) []string {
	if query == "" {
		return cloneItems(items)
	}
	// A Caser carries state, so each call gets its own.
	fold := cases.Fold()
	needle := fold.String(query)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.Contains(fold.String(item), needle) {
			out = append(out, item)
		}
	}
	return out
}

func cloneItems(items []string) []string {
	if items == nil {
		return nil
	}
	dup := make([]string, len(items))
	copy(dup, items)
	return dup
}

func cloneGroups(groups [][]string) [][]string {
	dup := make([][]string, len(groups))
	for i, g := range groups {
		dup[i] = cloneItems(g)
	}
	return dup
}
