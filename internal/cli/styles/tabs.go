package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/emojipick/internal/domain/entity"
)

// TabsModel represents a horizontal tab bar.
type TabsModel struct {
	Tabs   []string
	Active int
	theme  *Theme
}

// NewTabs creates a new tab bar with the given labels.
func NewTabs(theme *Theme, tabs ...string) TabsModel {
	return TabsModel{
		Tabs:   tabs,
		Active: 0,
		theme:  theme,
	}
}

// CategoryTabs creates one tab per category, labelled with its symbol.
func CategoryTabs(theme *Theme) TabsModel {
	cats := entity.Categories()
	labels := make([]string, len(cats))
	for i, c := range cats {
		labels[i] = c.Symbol
	}
	return NewTabs(theme, labels...)
}

// SetTheme swaps the theme used for rendering.
func (m *TabsModel) SetTheme(theme *Theme) {
	m.theme = theme
}

// SetActive sets the active tab index.
func (m *TabsModel) SetActive(index int) {
	if index >= 0 && index < len(m.Tabs) {
		m.Active = index
	}
}

// Next moves to the next tab.
func (m *TabsModel) Next() {
	m.Active = (m.Active + 1) % len(m.Tabs)
}

// Prev moves to the previous tab.
func (m *TabsModel) Prev() {
	m.Active = (m.Active - 1 + len(m.Tabs)) % len(m.Tabs)
}

func (m TabsModel) rendered() []string {
	tabs := make([]string, 0, len(m.Tabs))
	for i, tab := range m.Tabs {
		style := m.theme.InactiveTab
		if i == m.Active {
			style = m.theme.ActiveTab
		}
		tabs = append(tabs, style.Render(tab))
	}
	return tabs
}

// View renders the tab bar with a bottom border.
func (m TabsModel) View() string {
	return m.theme.TabBar.Render(m.ViewCompact())
}

// ViewCompact renders a compact tab bar without separators.
func (m TabsModel) ViewCompact() string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.rendered()...)
}

// TabAt returns the index of the tab under column x, or -1.
func (m TabsModel) TabAt(x int) int {
	if x < 0 {
		return -1
	}
	left := 0
	for i, tab := range m.rendered() {
		w := lipgloss.Width(tab)
		if x < left+w {
			return i
		}
		left += w
	}
	return -1
}
