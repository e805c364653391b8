package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// View renders the page.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := m.theme.Title.Render("billbook")

	top := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.panel(PaneForm).Render(m.form.View()),
		lipgloss.JoinVertical(
			lipgloss.Left,
			m.panel(PaneFilters).Render(m.filters.View()),
			m.theme.Panel.Render(m.summary.View()),
		),
	)

	grid := m.panel(PaneGrid).Render(m.grid.View())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		top,
		grid,
		m.renderStatusBar(),
		m.help.View(m.keymap),
	)
}

func (m Model) panel(p Pane) lipgloss.Style {
	if m.pane == p {
		return m.theme.FocusedPanel
	}
	return m.theme.Panel
}

// renderStatusBar renders the last action or error.
func (m Model) renderStatusBar() string {
	switch {
	case m.status == "":
		return m.theme.StatusInfo.Render("Tab to switch panes, Enter to add a bill")
	case m.lastErr != nil:
		return m.theme.StatusError.Render("✗ " + m.status)
	default:
		return m.theme.StatusSuccess.Render("✓ " + m.status)
	}
}
