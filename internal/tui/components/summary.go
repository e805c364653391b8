package components

import (
	"fmt"

	"github.com/Veraticus/billbook/internal/ledger"
	"github.com/Veraticus/billbook/internal/tui/themes"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// SummaryPanelModel shows totals of the filtered bills.
type SummaryPanelModel struct {
	theme       themes.Theme
	summary     ledger.Summary
	progressBar progress.Model
	width       int
}

// NewSummaryPanelModel creates an empty summary panel.
func NewSummaryPanelModel(theme themes.Theme) SummaryPanelModel {
	prog := progress.New(progress.WithDefaultGradient())
	prog.ShowPercentage = false
	prog.Width = 30

	return SummaryPanelModel{
		theme:       theme,
		progressBar: prog,
		summary:     ledger.Summarize(nil),
	}
}

// SetSummary replaces the totals shown.
func (m *SummaryPanelModel) SetSummary(s ledger.Summary) {
	m.summary = s
}

// Summary returns the totals shown.
func (m SummaryPanelModel) Summary() ledger.Summary {
	return m.summary
}

// Resize sets the panel width.
func (m *SummaryPanelModel) Resize(width int) {
	m.width = width
	m.progressBar.Width = min(max(width-4, 10), 40)
}

// View renders the panel.
func (m SummaryPanelModel) View() string {
	return RenderSummary(m.theme, m.summary, m.progressBar)
}

// RenderSummary renders totals with an expense/income bar.
func RenderSummary(theme themes.Theme, sum ledger.Summary, bar progress.Model) string {
	net := sum.Net()
	netStyle := theme.Income
	if net.IsNegative() {
		netStyle = theme.Expense
	}

	ratio := sum.ExpenseRatio()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		theme.Subtitle.Render("Summary"),
		theme.Normal.Render(fmt.Sprintf("%d bills", sum.Count)),
		theme.Faint.Render("Income  ")+theme.Income.Render(sum.Income.StringFixed(2)),
		theme.Faint.Render("Expense ")+theme.Expense.Render(sum.Expense.StringFixed(2)),
		theme.Faint.Render("Net     ")+netStyle.Render(net.StringFixed(2)),
		bar.ViewAs(ratio)+theme.Faint.Render(fmt.Sprintf(" %.0f%% spent", ratio*100)),
	)
}
