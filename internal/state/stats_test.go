package state

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatisticsSummary_FirstGroup(t *testing.T) {
	s := newReferenceStore(t)
	require.Equal(t, "List 1 (4 items)\na = 5\ne = 4\nb = 3\n", s.StatisticsSummary())
}

func TestStatisticsSummary_TiesKeepFirstSeenOrder(t *testing.T) {
	s := newReferenceStore(t)
	s.SelectGroup(2)
	// p and e both appear 4 times; p is seen first in "pear".
	require.Equal(t, "List 3 (4 items)\np = 4\ne = 4\na = 3\n", s.StatisticsSummary())
}

func TestStatisticsSummary_IgnoresQuery(t *testing.T) {
	s := newReferenceStore(t)
	before := s.StatisticsSummary()

	for _, q := range []string{"an", "zzz", "APPLE", ""} {
		s.SetQuery(q)
		require.Equal(t, before, s.StatisticsSummary(), "query %q", q)
	}
}

func TestStatisticsSummary_DoesNotMutate(t *testing.T) {
	s := newReferenceStore(t)
	s.SetQuery("an")
	_ = s.StatisticsSummary()
	require.Equal(t, "an", s.Query())
	require.Equal(t, []string{"banana", "orange"}, s.Filtered())
}

func TestStatisticsSummary_FewerThanThreeCharacters(t *testing.T) {
	s, err := New([][]string{{"aa", "a"}, {}, {"ab"}})
	require.NoError(t, err)

	require.Equal(t, "List 1 (2 items)\na = 3\n", s.StatisticsSummary())

	s.SelectGroup(1)
	require.Equal(t, "List 2 (0 items)\n", s.StatisticsSummary())

	s.SelectGroup(2)
	require.Equal(t, "List 3 (1 items)\na = 1\nb = 1\n", s.StatisticsSummary())
}

func TestFrequencies_CountsSpacesAndPunctuation(t *testing.T) {
	s, err := New([][]string{{"a b", "b, c!"}})
	require.NoError(t, err)

	require.Equal(t, []CharCount{
		{Char: " ", Count: 2},
		{Char: "b", Count: 2},
		{Char: "a", Count: 1},
		{Char: ",", Count: 1},
		{Char: "c", Count: 1},
		{Char: "!", Count: 1},
	}, s.Frequencies())
}

func TestFrequencies_GraphemeClusters(t *testing.T) {
	// "e" + combining acute accent is one character.
	s, err := New([][]string{{"ne\u0301e", "🇩🇪🇩🇪"}})
	require.NoError(t, err)

	require.Equal(t, []CharCount{
		{Char: "🇩🇪", Count: 2},
		{Char: "n", Count: 1},
		{Char: "e\u0301", Count: 1},
		{Char: "e", Count: 1},
	}, s.Frequencies())
}

func TestFrequencies_IsCaseSensitive(t *testing.T) {
	s, err := New([][]string{{"Aa"}})
	require.NoError(t, err)
	require.Equal(t, []CharCount{{Char: "A", Count: 1}, {Char: "a", Count: 1}}, s.Frequencies())
}

func TestTopCharacters_Bounds(t *testing.T) {
	s := newReferenceStore(t)
	require.Empty(t, s.TopCharacters(0))
	require.Empty(t, s.TopCharacters(-2))
	require.Len(t, s.TopCharacters(2), 2)
	require.Len(t, s.TopCharacters(100), len(s.Frequencies()))
}
