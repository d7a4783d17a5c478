package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// statsModal shows the statistics summary of the selected group. The summary
// is computed once when the modal opens.
type statsModal struct {
	title   string
	summary string
}

// openStats computes the statistics summary and shows it in a modal.
func (m *Model) openStats() {
	index := m.store.SelectedIndex()
	m.modal = statsModal{
		title:   m.labels[index],
		summary: m.store.StatisticsSummary(),
	}
	m.logger.Debug("stats opened", "index", index)
}

// Update closes the modal on Esc, Enter, the stats key or quit.
func (s statsModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	switch {
	case key.Matches(keyMsg, keys.Escape),
		key.Matches(keyMsg, keys.Confirm),
		key.Matches(keyMsg, keys.Stats),
		key.Matches(keyMsg, keys.Quit):
		return s, nil, true
	}
	return s, nil, false
}

// View renders the summary centered over the screen.
func (s statsModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(s.title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 24)))
	b.WriteString("\n\n")

	lines := strings.Split(strings.TrimSuffix(s.summary, "\n"), "\n")
	b.WriteString(styles.AccentText.Render(lines[0]))
	for _, line := range lines[1:] {
		b.WriteString("\n")
		b.WriteString(styles.Text.Render(line))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("Esc/Enter: Close"))

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		styles.Modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
