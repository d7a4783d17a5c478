package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const searchCharLimit = 100

func newSearchInput(value string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search list..."
	ti.CharLimit = searchCharLimit
	ti.SetValue(value)
	return ti
}

// focusSearch moves keystrokes to the search box.
func (m *Model) focusSearch() tea.Cmd {
	m.focus = focusSearch
	m.refreshList()
	m.search.CursorEnd()
	return m.search.Focus()
}

// blurSearch returns keystrokes to the list. The query stays applied.
func (m *Model) blurSearch() {
	m.focus = focusList
	m.search.Blur()
	m.refreshList()
}

// handleSearchKey handles keyboard input while the search box is focused.
// Every edit re-filters the list immediately.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Escape):
		m.blurSearch()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if value := m.search.Value(); value != m.store.Query() {
		m.applyQuery(value)
	}
	return m, cmd
}

// applyQuery hands the search text to the store and resets the list cursor.
func (m *Model) applyQuery(text string) {
	m.store.SetQuery(text)
	m.logger.Debug("query changed", "query", text, "matches", len(m.store.Filtered()))
	m.cursor = 0
	m.list.GotoTop()
	m.refreshList()
}

// renderSearch renders the search box line.
func (m Model) renderSearch() string {
	styles := m.theme.Styles()
	m.search.PromptStyle = styles.AccentText
	m.search.TextStyle = styles.Text
	m.search.PlaceholderStyle = styles.FaintText
	if m.focus != focusSearch && m.search.Value() == "" {
		return " " + styles.FaintText.Render("/ to search")
	}
	return " " + m.search.View()
}
