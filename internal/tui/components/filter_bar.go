package components

import (
	"strings"

	"github.com/Veraticus/billbook/internal/model"
	"github.com/Veraticus/billbook/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FilterRow identifies a selector of the filter bar.
type FilterRow int

// Filter bar rows.
const (
	RowRecency FilterRow = iota
	RowCategory
)

// FilterBarModel selects the recency bucket and category of the card grid.
// Selections take effect immediately.
type FilterBarModel struct {
	theme     themes.Theme
	recencies []model.Recency
	choices   []model.CategoryFilter
	recency   int
	category  int
	row       FilterRow
	focused   bool
}

// NewFilterBarModel starts with no date constraint and all categories.
func NewFilterBarModel(theme themes.Theme) FilterBarModel {
	m := FilterBarModel{
		theme:     theme,
		recencies: model.Recencies(),
		choices:   model.FilterChoices(),
	}
	m.SetRecency(model.RecencyUnset)
	m.SetCategory(model.AllCategoriesFilter())
	return m
}

// Recency returns the selected bucket.
func (m FilterBarModel) Recency() model.Recency {
	return m.recencies[m.recency]
}

// Category returns the selected category filter.
func (m FilterBarModel) Category() model.CategoryFilter {
	return m.choices[m.category]
}

// SetRecency selects r if it is a known bucket.
func (m *FilterBarModel) SetRecency(r model.Recency) {
	for i, candidate := range m.recencies {
		if candidate == r {
			m.recency = i
		}
	}
}

// SetCategory selects f if it is one of the choices.
func (m *FilterBarModel) SetCategory(f model.CategoryFilter) {
	for i, candidate := range m.choices {
		if candidate == f {
			m.category = i
		}
	}
}

// Focus gives the filter bar keyboard focus.
func (m *FilterBarModel) Focus() { m.focused = true }

// Blur removes keyboard focus.
func (m *FilterBarModel) Blur() { m.focused = false }

// Update handles key presses while the filter bar is focused.
func (m FilterBarModel) Update(msg tea.Msg) (FilterBarModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		m.row = RowRecency
	case "down", "j":
		m.row = RowCategory
	case "left", "h":
		m.step(-1)
	case "right", "l":
		m.step(1)
	}
	return m, nil
}

func (m *FilterBarModel) step(delta int) {
	switch m.row {
	case RowRecency:
		m.recency = (m.recency + delta + len(m.recencies)) % len(m.recencies)
	case RowCategory:
		m.category = (m.category + delta + len(m.choices)) % len(m.choices)
	}
}

// View renders the filter bar.
func (m FilterBarModel) View() string {
	recencies := make([]string, 0, len(m.recencies))
	for i, r := range m.recencies {
		recencies = append(recencies, m.option(string(r), i == m.recency, RowRecency))
	}

	category := m.Category()
	label := category.String()
	if !category.IsAll() {
		label = themes.GetCategoryIcon(category.Category()) + " " + category.Category().Label()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Subtitle.Render("Filters"),
		m.cursor(RowRecency)+m.theme.Faint.Render("Since    ")+strings.Join(recencies, " "),
		m.cursor(RowCategory)+m.theme.Faint.Render("Category ")+m.option("‹ "+label+" ›", true, RowCategory),
	)
}

func (m FilterBarModel) cursor(row FilterRow) string {
	if m.focused && m.row == row {
		return lipgloss.NewStyle().Foreground(m.theme.Primary).Render("> ")
	}
	return "  "
}

func (m FilterBarModel) option(text string, selected bool, row FilterRow) string {
	switch {
	case selected && m.focused && m.row == row:
		return m.theme.Selected.Render(text)
	case selected:
		return m.theme.Highlighted.Render(text)
	default:
		return m.theme.Faint.Render(text)
	}
}
