package components

import (
	"fmt"

	"github.com/Veraticus/billbook/internal/ledger"
	"github.com/Veraticus/billbook/internal/model"
	"github.com/Veraticus/billbook/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	minCardWidth = 18
	// Rounded border plus one column of padding on each side.
	cardChrome = 4
)

// BillGridModel shows bills as cards, columns per row, scrolled by row.
type BillGridModel struct {
	theme   themes.Theme
	rows    [][]model.Bill
	columns int
	width   int
	height  int
	offset  int
	focused bool
}

// NewBillGridModel creates an empty grid.
func NewBillGridModel(theme themes.Theme, columns int) BillGridModel {
	return BillGridModel{
		theme:   theme,
		columns: max(columns, 1),
		rows:    [][]model.Bill{},
		width:   80,
	}
}

// SetBills replaces the grid contents.
func (m *BillGridModel) SetBills(bills []model.Bill) {
	m.rows = ledger.Chunk(bills, m.columns)
	m.offset = min(m.offset, max(len(m.rows)-1, 0))
}

// Rows returns the current grid rows.
func (m BillGridModel) Rows() [][]model.Bill {
	return m.rows
}

// Offset returns the index of the first visible row.
func (m BillGridModel) Offset() int {
	return m.offset
}

// Resize sets the space available to the grid.
func (m *BillGridModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Focus gives the grid keyboard focus.
func (m *BillGridModel) Focus() { m.focused = true }

// Blur removes keyboard focus.
func (m *BillGridModel) Blur() { m.focused = false }

// Update scrolls the grid while it is focused.
func (m BillGridModel) Update(msg tea.Msg) (BillGridModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	last := max(len(m.rows)-1, 0)
	switch keyMsg.String() {
	case "up", "k":
		m.offset = max(m.offset-1, 0)
	case "down", "j":
		m.offset = min(m.offset+1, last)
	case "home", "g":
		m.offset = 0
	case "end", "G":
		m.offset = last
	}
	return m, nil
}

// View renders the visible rows.
func (m BillGridModel) View() string {
	if len(m.rows) == 0 {
		return m.theme.Faint.Render("No bills match the current filters.")
	}

	visible := m.rows[m.offset:]
	if m.height > 0 {
		// A card is the body plus top and bottom border.
		perRow := cardBodyLines + 2
		visible = visible[:min(len(visible), max(m.height/perRow, 1))]
	}

	grid := RenderGrid(m.theme, visible, m.columns, m.width)
	if m.offset+len(visible) < len(m.rows) {
		more := len(m.rows) - m.offset - len(visible)
		grid = lipgloss.JoinVertical(lipgloss.Left, grid,
			m.theme.Faint.Render(fmt.Sprintf("↓ %d more rows", more)))
	}
	return grid
}

// CardWidth splits width evenly between columns.
func CardWidth(width, columns int) int {
	return max(width/max(columns, 1)-cardChrome, minCardWidth)
}

// RenderGrid renders rows of bills as cards.
func RenderGrid(theme themes.Theme, rows [][]model.Bill, columns, width int) string {
	cardWidth := CardWidth(width, columns)
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cards := make([]string, 0, len(row))
		for _, bill := range row {
			cards = append(cards, RenderCard(theme, bill, cardWidth))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

const cardBodyLines = 5

// RenderCard renders a single bill.
func RenderCard(theme themes.Theme, bill model.Bill, width int) string {
	amount := FormatAmount(bill)

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		theme.Bold.Render(truncate(bill.Name, width)),
		theme.Faint.Render(truncate(themes.GetCategoryIcon(bill.Category)+" "+bill.Category.String(), width)),
		theme.AmountStyle(bill).Render(amount),
		theme.Normal.Render(bill.Date.Format("2006-01-02 15:04")),
		theme.Faint.Render(truncate(bill.Description, width)),
	)

	return theme.Card.Width(width + 2).Height(cardBodyLines).Render(body)
}

// FormatAmount prefixes the amount with + for income and - for expense.
// Negative amounts are shown as entered.
func FormatAmount(bill model.Bill) string {
	amount := bill.Amount.StringFixed(2)
	switch {
	case bill.Amount.IsNegative():
		return amount
	case bill.IsIncome():
		return "+" + amount
	default:
		return "-" + amount
	}
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
