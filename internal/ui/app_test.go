package ui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/five82/tally/internal/config"
	"github.com/five82/tally/internal/logging"
	"github.com/five82/tally/internal/state"
)

func newTestModel(t *testing.T) (Model, *state.Store) {
	t.Helper()
	cfg := config.Config{Groups: config.DefaultGroups()}
	store, err := state.New(cfg.Table())
	require.NoError(t, err)

	m, err := New(Options{
		Store:     store,
		Labels:    cfg.Labels(),
		Logger:    logging.Discard(),
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	require.NoError(t, err)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model), store
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(kt tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kt}
}

// press feeds each message to the model in order.
func press(m Model, msgs ...tea.KeyMsg) Model {
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

// typeText sends one key message per rune.
func typeText(m Model, text string) Model {
	for _, r := range text {
		m = press(m, runes(string(r)))
	}
	return m
}

func TestNew_RejectsLabelMismatch(t *testing.T) {
	store, err := state.New([][]string{{"a"}, {"b"}})
	require.NoError(t, err)

	_, err = New(Options{Store: store, Labels: []string{"only one"}})
	require.ErrorIs(t, err, ErrLabelMismatch)
}

func TestNew_RequiresStore(t *testing.T) {
	_, err := New(Options{})
	require.Error(t, err)
}

func TestView_LoadingUntilSized(t *testing.T) {
	store, err := state.New([][]string{{"a"}})
	require.NoError(t, err)
	m, err := New(Options{Store: store, Labels: []string{"A"}})
	require.NoError(t, err)

	require.Equal(t, "Loading...", m.View())
}

func TestView_ShowsCarouselAndList(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()

	for _, want := range []string{"tally", "Classics", "Greens", "Orchard", "Berries", "apple", "blueberry", "List 1/4", "4/4 shown"} {
		require.Contains(t, view, want)
	}
	require.NotContains(t, view, "pineapple")
}

func TestCarousel_StepsAndStopsAtEnds(t *testing.T) {
	m, store := newTestModel(t)

	m = press(m, keyOf(tea.KeyLeft))
	require.Equal(t, 0, store.SelectedIndex(), "left at the first card stays put")

	m = press(m, keyOf(tea.KeyRight))
	require.Equal(t, 1, store.SelectedIndex())

	m = press(m, runes("l"), runes("l"), runes("l"))
	require.Equal(t, 3, store.SelectedIndex(), "right at the last card stays put")

	m = press(m, runes("h"))
	require.Equal(t, 2, store.SelectedIndex())
	require.Contains(t, m.View(), "pineapple")
}

func TestCarousel_DigitJumps(t *testing.T) {
	m, store := newTestModel(t)

	m = press(m, runes("3"))
	require.Equal(t, 2, store.SelectedIndex())
	require.Equal(t, []string{"pear", "pineapple", "mango", "cherry"}, store.Filtered())

	press(m, runes("9"))
	require.Equal(t, 2, store.SelectedIndex(), "digits past the last group are ignored")
}

func TestSearch_FiltersWhileTyping(t *testing.T) {
	m, store := newTestModel(t)

	m = press(m, runes("/"))
	require.Equal(t, focusSearch, m.focus)

	m = typeText(m, "a")
	require.Equal(t, "a", store.Query())
	require.Equal(t, []string{"apple", "banana", "orange"}, store.Filtered())

	m = typeText(m, "n")
	require.Equal(t, []string{"banana", "orange"}, store.Filtered())

	m = press(m, keyOf(tea.KeyBackspace))
	require.Equal(t, "a", store.Query())

	m = press(m, keyOf(tea.KeyEnter))
	require.Equal(t, focusList, m.focus)
	require.Equal(t, "a", store.Query(), "leaving the box keeps the filter")
}

func TestSearch_BindingsTypeIntoBox(t *testing.T) {
	m, store := newTestModel(t)

	m = press(m, runes("/"))
	m = typeText(m, "q3s")
	require.Equal(t, focusSearch, m.focus)
	require.Equal(t, "q3s", store.Query())
	require.Equal(t, 0, store.SelectedIndex())
	require.Nil(t, m.modal)
}

func TestSearch_QueryFollowsGroupChange(t *testing.T) {
	m, store := newTestModel(t)

	m = press(m, runes("/"))
	m = typeText(m, "p")
	m = press(m, keyOf(tea.KeyEsc))
	require.Equal(t, []string{"apple"}, store.Filtered())

	m = press(m, runes("3"))
	require.Equal(t, []string{"pear", "pineapple"}, store.Filtered())
	require.Contains(t, m.View(), `filter "p"`)
}

func TestEscape_ClearsQueryFromList(t *testing.T) {
	m, store := newTestModel(t)

	m = press(m, runes("/"))
	m = typeText(m, "berry")
	m = press(m, keyOf(tea.KeyEnter))
	require.Equal(t, []string{"blueberry"}, store.Filtered())

	m = press(m, keyOf(tea.KeyEsc))
	require.Equal(t, "", store.Query())
	require.Equal(t, "", m.search.Value())
	require.Equal(t, []string{"apple", "banana", "orange", "blueberry"}, store.Filtered())
}

func TestSearch_NoMatchesMessage(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(m, runes("/"))
	m = typeText(m, "zz")
	require.Contains(t, m.View(), `No matches for "zz"`)
}

func TestCursor_MovesAndClamps(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(m, runes("j"), runes("j"))
	require.Equal(t, 2, m.cursor)

	m = press(m, runes("G"))
	require.Equal(t, 3, m.cursor)

	m = press(m, keyOf(tea.KeyDown))
	require.Equal(t, 3, m.cursor)

	m = press(m, runes("g"), runes("k"))
	require.Equal(t, 0, m.cursor)

	m = press(m, runes("G"), keyOf(tea.KeyRight))
	require.Equal(t, 0, m.cursor, "changing group resets the cursor")
}

func TestCursor_ScrollsLongList(t *testing.T) {
	items := make([]string, 50)
	for i := range items {
		items[i] = "item"
	}
	store, err := state.New([][]string{items})
	require.NoError(t, err)
	m, err := New(Options{Store: store, Labels: []string{"Long"}})
	require.NoError(t, err)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m = updated.(Model)

	m = press(m, runes("G"))
	require.Equal(t, 49, m.cursor)
	require.Equal(t, 49-m.list.Height+1, m.list.YOffset)

	m = press(m, runes("g"))
	require.Equal(t, 0, m.list.YOffset)
}

func TestStats_OpensAndCloses(t *testing.T) {
	m, store := newTestModel(t)

	m = press(m, runes("/"))
	m = typeText(m, "an")
	m = press(m, keyOf(tea.KeyEnter), runes("s"))
	require.NotNil(t, m.modal)

	view := m.View()
	require.Contains(t, view, "List 1 (4 items)")
	require.Contains(t, view, "a = 5")
	require.Contains(t, view, "e = 4")
	require.Contains(t, view, "b = 3")

	// Keys go to the modal while it is open.
	m = press(m, keyOf(tea.KeyRight))
	require.NotNil(t, m.modal)
	require.Equal(t, 0, store.SelectedIndex())

	m = press(m, keyOf(tea.KeyEsc))
	require.Nil(t, m.modal)
	require.Equal(t, "an", store.Query(), "closing the popup keeps the filter")
}

func TestStats_FollowsSelection(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(m, runes("3"), runes("s"))

	view := m.View()
	require.Contains(t, view, "Orchard")
	require.Contains(t, view, "List 3 (4 items)")
	require.Contains(t, view, "p = 4")
}

func TestHelp_AnyKeyCloses(t *testing.T) {
	m, store := newTestModel(t)

	m = press(m, runes("?"))
	require.True(t, m.showHelp)
	require.Contains(t, m.View(), "Keyboard Shortcuts")

	m = press(m, keyOf(tea.KeyRight))
	require.False(t, m.showHelp)
	require.Equal(t, 0, store.SelectedIndex(), "the closing key is not acted on")
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())

	m = press(m, runes("/"))
	_, cmd = m.Update(keyOf(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
}

func TestCycleTheme_SavesPrefs(t *testing.T) {
	m, _ := newTestModel(t)
	require.Equal(t, "Nightfox", m.theme.Name)

	m = press(m, runes("T"))
	require.Equal(t, "Kanagawa", m.theme.Name)
	require.Empty(t, m.errorMsg)

	p := config.LoadPrefs(m.prefsPath, logging.Discard())
	require.Equal(t, "Kanagawa", p.Theme)
}

func TestCycleTheme_SaveFailureIsShown(t *testing.T) {
	m, _ := newTestModel(t)
	// A directory where the prefs file should be makes the rename fail.
	m.prefsPath = t.TempDir()

	m = press(m, runes("T"))
	require.Equal(t, "theme not saved", m.errorMsg)
	require.Contains(t, m.View(), "theme not saved")
}
