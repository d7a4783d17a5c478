package ui

import (
	"fmt"
	"strings"
)

// chromeHeight is the number of rows taken by everything except the list
// body: header, carousel cards, search line, list border and footer.
const chromeHeight = 1 + carouselHeight + 1 + 2 + 1

// moveCursor moves the list cursor to row, clamped to the filtered view.
func (m *Model) moveCursor(row int) {
	count := len(m.store.Filtered())
	if count == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(row, 0), count-1)
	m.refreshList()
}

// refreshList rebuilds the list pane from the store and keeps the cursor row
// in view.
func (m *Model) refreshList() {
	items := m.store.Filtered()
	if m.cursor >= len(items) {
		m.cursor = max(len(items)-1, 0)
	}
	m.list.SetContent(m.listContent(items))

	if m.list.Height <= 0 {
		return
	}
	switch {
	case m.cursor < m.list.YOffset:
		m.list.SetYOffset(m.cursor)
	case m.cursor >= m.list.YOffset+m.list.Height:
		m.list.SetYOffset(m.cursor - m.list.Height + 1)
	}
}

func (m Model) listContent(items []string) string {
	styles := m.theme.Styles()

	if len(items) == 0 {
		if q := m.store.Query(); q != "" {
			return " " + styles.MutedText.Render(fmt.Sprintf("No matches for %q", q))
		}
		return " " + styles.MutedText.Render("This list is empty")
	}

	width := max(m.list.Width, 1)
	lines := make([]string, len(items))
	for i, item := range items {
		line := " " + item
		if i == m.cursor && m.focus == focusList {
			lines[i] = styles.Selected.Width(width).Render(line)
			continue
		}
		lines[i] = styles.Text.Render(line)
	}
	return strings.Join(lines, "\n")
}

// renderList renders the bordered list pane.
func (m Model) renderList() string {
	styles := m.theme.Styles()
	pane := styles.Pane
	if m.focus == focusList {
		pane = styles.PaneFocus
	}
	return pane.Width(m.list.Width).Render(m.list.View())
}
