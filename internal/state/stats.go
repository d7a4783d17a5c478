package state

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rivo/uniseg"
)

// summaryTop is how many characters StatisticsSummary lists.
const summaryTop = 3

// CharCount is one entry of a character frequency table. Char is a single
// grapheme cluster.
type CharCount struct {
	Char  string
	Count int
}

// Frequencies tallies every character of the selected group, ignoring the
// query. The result is sorted by descending count; equal counts keep the order
// in which the characters were first seen.
func (s *Store) Frequencies() []CharCount {
	return tally(s.groups[s.selected])
}

// TopCharacters returns at most n entries of Frequencies.
func (s *Store) TopCharacters(n int) []CharCount {
	freq := s.Frequencies()
	if n < 0 {
		n = 0
	}
	if len(freq) > n {
		freq = freq[:n]
	}
	return freq
}

// StatisticsSummary describes the selected group and its three most frequent
// characters:
//
//	List 1 (4 items)
//	a = 5
//	e = 4
//	b = 3
func (s *Store) StatisticsSummary() string {
	return formatSummary(s.selected, len(s.groups[s.selected]), s.TopCharacters(summaryTop))
}

func formatSummary(index, itemCount int, top []CharCount) string {
	var b strings.Builder
	fmt.Fprintf(&b, "List %d (%d items)\n", index+1, itemCount)
	for _, c := range top {
		fmt.Fprintf(&b, "%s = %d\n", c.Char, c.Count)
	}
	return b.String()
}

func tally(items []string) []CharCount {
	var counts []CharCount
	pos := make(map[string]int)
	for _, item := range items {
		gr := uniseg.NewGraphemes(item)
		for gr.Next() {
			ch := gr.Str()
			if i, ok := pos[ch]; ok {
				counts[i].Count++
				continue
			}
			pos[ch] = len(counts)
			counts = append(counts, CharCount{Char: ch, Count: 1})
		}
	}
	slices.SortStableFunc(counts, func(a, b CharCount) int {
		return b.Count - a.Count
	})
	return counts
}
