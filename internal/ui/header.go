package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar above the carousel.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	onBar := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().
			Background(lipgloss.Color(m.theme.Surface)).
			Foreground(lipgloss.Color(color))
	}
	text, muted := onBar(m.theme.Text), onBar(m.theme.Muted)

	index := m.store.SelectedIndex()
	shown := len(m.store.Filtered())
	total := len(m.store.Group(index))

	parts := []string{
		styles.Logo.Render("tally"),
		text.Bold(true).Render(m.labels[index]),
		muted.Render(fmt.Sprintf("List %d/%d", index+1, m.store.GroupCount())),
		muted.Render(fmt.Sprintf("%d/%d shown", shown, total)),
	}
	if q := m.store.Query(); q != "" {
		parts = append(parts, onBar(m.theme.Accent).Render(fmt.Sprintf("filter %q", q)))
	}
	if m.errorMsg != "" {
		parts = append(parts, onBar(m.theme.Danger).Bold(true).Render("! "+m.errorMsg))
	}
	parts = append(parts, muted.Render(m.theme.Name))

	return styles.Header.Width(m.width).Render(strings.Join(parts, text.Render("  ")))
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	return styles.Footer.Width(m.width).Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}
