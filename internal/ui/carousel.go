package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// carouselHeight is the rendered height of a carousel card.
const carouselHeight = 4

// moveGroup steps the carousel by delta. It stops at either end.
func (m *Model) moveGroup(delta int) {
	next := m.store.SelectedIndex() + delta
	if next < 0 || next >= m.store.GroupCount() {
		return
	}
	m.selectGroup(next)
}

// jumpGroup selects the group named by a digit key ("1" is the first group).
// Digits past the last group are ignored.
func (m *Model) jumpGroup(digit string) {
	n, err := strconv.Atoi(digit)
	if err != nil || n < 1 || n > m.store.GroupCount() {
		return
	}
	m.selectGroup(n - 1)
}

// selectGroup is the single path from a carousel event to the store.
func (m *Model) selectGroup(index int) {
	if index == m.store.SelectedIndex() {
		return
	}
	m.store.SelectGroup(index)
	m.logger.Debug("select group", "index", index, "label", m.labels[index], "matches", len(m.store.Filtered()))
	m.cursor = 0
	m.list.GotoTop()
	m.refreshList()
}

// renderCarousel renders one card per group, scrolled so the selected card is
// visible. Arrows mark cards hidden off either edge.
func (m Model) renderCarousel() string {
	styles := m.theme.Styles()
	selected := m.store.SelectedIndex()

	cards := make([]string, len(m.labels))
	for i, label := range m.labels {
		style := styles.Card
		if i == selected {
			style = styles.CardActive
		}
		count := len(m.store.Group(i))
		cards[i] = style.Render(label + "\n" + fmt.Sprintf("%d items", count))
	}

	first, last := visibleCards(cards, selected, m.width-4)

	left, right := "  ", "  "
	if first > 0 {
		left = styles.AccentText.Render("‹ ")
	}
	if last < len(cards)-1 {
		right = styles.AccentText.Render(" ›")
	}
	arrowStyle := lipgloss.NewStyle().Height(carouselHeight).AlignVertical(lipgloss.Center)

	row := lipgloss.JoinHorizontal(lipgloss.Top, cards[first:last+1]...)
	return lipgloss.JoinHorizontal(lipgloss.Top, arrowStyle.Render(left), row, arrowStyle.Render(right))
}

// visibleCards returns the widest window [first, last] of cards around
// selected that fits in width. The selected card is always included.
func visibleCards(cards []string, selected, width int) (first, last int) {
	first, last = selected, selected
	used := lipgloss.Width(cards[selected])
	for {
		grew := false
		if last+1 < len(cards) {
			if w := lipgloss.Width(cards[last+1]); used+w <= width {
				last++
				used += w
				grew = true
			}
		}
		if first > 0 {
			if w := lipgloss.Width(cards[first-1]); used+w <= width {
				first--
				used += w
				grew = true
			}
		}
		if !grew {
			return first, last
		}
	}
}
