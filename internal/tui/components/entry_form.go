package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/billbook/internal/common"
	"github.com/Veraticus/billbook/internal/ledger"
	"github.com/Veraticus/billbook/internal/model"
	"github.com/Veraticus/billbook/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// DateLayout is the format of the date field.
const DateLayout = "2006-01-02"

// FormField identifies a row of the entry form.
type FormField int

// Entry form rows, top to bottom.
const (
	FieldCategory FormField = iota
	FieldAmount
	FieldName
	FieldDate
	FieldDescription
	FieldSubmit
	fieldCount
)

var fieldLabels = map[FormField]string{
	FieldCategory:    "Category",
	FieldAmount:      "Amount",
	FieldName:        "Name",
	FieldDate:        "Date",
	FieldDescription: "Note",
}

// SubmitRequestedMsg is sent when the user confirms the entry form.
type SubmitRequestedMsg struct{}

// EntryFormModel edits a ledger.Draft.
type EntryFormModel struct {
	theme      themes.Theme
	draft      ledger.Draft
	categories []model.Category
	inputs     map[FormField]*textinput.Model
	category   int
	cursor     FormField
	width      int
	focused    bool
}

// NewEntryFormModel creates a form for a fresh draft dated now.
func NewEntryFormModel(theme themes.Theme, now time.Time) EntryFormModel {
	categories := model.AllCategories()

	newInput := func(placeholder string, limit int) *textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Prompt = ""
		return &in
	}

	m := EntryFormModel{
		theme:      theme,
		categories: categories,
		inputs: map[FormField]*textinput.Model{
			FieldAmount:      newInput("0", 20),
			FieldName:        newInput("What was it?", 60),
			FieldDate:        newInput(DateLayout, len(DateLayout)),
			FieldDescription: newInput("optional", 120),
		},
		width: 40,
	}
	m.SetDraft(ledger.NewDraft(categories[0], now))
	return m
}

// SetDraft replaces the form contents with d.
func (m *EntryFormModel) SetDraft(d ledger.Draft) {
	m.draft = d
	for i, c := range m.categories {
		if c == d.Category {
			m.category = i
		}
	}

	amount := ""
	if !d.Amount.IsZero() {
		amount = d.Amount.String()
	}
	m.inputs[FieldAmount].SetValue(amount)
	m.inputs[FieldName].SetValue(d.Name)
	m.inputs[FieldDate].SetValue(d.Date.Format(DateLayout))
	m.inputs[FieldDescription].SetValue(d.Description)
}

// Draft parses the inputs into a draft. Parse errors are returned as user
// errors; the name check is left to Draft.Submit.
func (m EntryFormModel) Draft() (ledger.Draft, error) {
	d := m.draft
	d.Category = m.categories[m.category]
	d.Name = m.inputs[FieldName].Value()
	d.Description = strings.TrimSpace(m.inputs[FieldDescription].Value())

	rawAmount := strings.TrimSpace(m.inputs[FieldAmount].Value())
	if rawAmount == "" {
		d.Amount = decimal.Zero
	} else {
		amount, err := decimal.NewFromString(rawAmount)
		if err != nil {
			return ledger.Draft{}, common.NewUserError(
				"amount must be a number",
				fmt.Errorf("%w: amount %q: %v", common.ErrInvalidInput, rawAmount, err),
			)
		}
		d.Amount = amount
	}

	// Unchanged date text keeps the draft's time of day.
	rawDate := strings.TrimSpace(m.inputs[FieldDate].Value())
	if rawDate != m.draft.Date.Format(DateLayout) {
		date, err := time.ParseInLocation(DateLayout, rawDate, m.draft.Date.Location())
		if err != nil {
			return ledger.Draft{}, common.NewUserError(
				"date must look like "+DateLayout,
				fmt.Errorf("%w: date %q: %v", common.ErrInvalidInput, rawDate, err),
			)
		}
		d.Date = date
	}

	return d, nil
}

// Category returns the selected category.
func (m EntryFormModel) Category() model.Category {
	return m.categories[m.category]
}

// Cursor returns the focused row.
func (m EntryFormModel) Cursor() FormField {
	return m.cursor
}

// Focus gives the form keyboard focus.
func (m *EntryFormModel) Focus() tea.Cmd {
	m.focused = true
	return m.syncInputFocus()
}

// Blur removes keyboard focus.
func (m *EntryFormModel) Blur() {
	m.focused = false
	for _, in := range m.inputs {
		in.Blur()
	}
}

// Focused reports whether the form has keyboard focus.
func (m EntryFormModel) Focused() bool {
	return m.focused
}

// Resize sets the form width.
func (m *EntryFormModel) Resize(width int) {
	m.width = width
	for _, in := range m.inputs {
		in.Width = max(width-12, 8)
	}
}

func (m *EntryFormModel) syncInputFocus() tea.Cmd {
	var cmd tea.Cmd
	for field, in := range m.inputs {
		if m.focused && field == m.cursor {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
	}
	return cmd
}

func (m *EntryFormModel) move(delta int) tea.Cmd {
	m.cursor = FormField((int(m.cursor) + delta + int(fieldCount)) % int(fieldCount))
	return m.syncInputFocus()
}

// Update handles key presses while the form is focused.
func (m EntryFormModel) Update(msg tea.Msg) (EntryFormModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		if in, found := m.inputs[m.cursor]; found {
			updated, cmd := in.Update(msg)
			*in = updated
			return m, cmd
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "up":
		return m, m.move(-1)
	case "down":
		return m, m.move(1)
	case "enter":
		if m.cursor == FieldSubmit {
			return m, func() tea.Msg { return SubmitRequestedMsg{} }
		}
		return m, m.move(1)
	}

	if m.cursor == FieldCategory {
		switch keyMsg.String() {
		case "left":
			m.category = (m.category - 1 + len(m.categories)) % len(m.categories)
		case "right":
			m.category = (m.category + 1) % len(m.categories)
		}
		return m, nil
	}

	if in, found := m.inputs[m.cursor]; found {
		updated, cmd := in.Update(keyMsg)
		*in = updated
		return m, cmd
	}
	return m, nil
}

// View renders the form.
func (m EntryFormModel) View() string {
	rows := []string{m.theme.Subtitle.Render("New bill")}

	for field := FieldCategory; field < FieldSubmit; field++ {
		prefix := "  "
		if m.focused && field == m.cursor {
			prefix = lipgloss.NewStyle().Foreground(m.theme.Primary).Render("> ")
		}
		label := m.theme.Faint.Render(fmt.Sprintf("%-9s", fieldLabels[field]))

		var value string
		if field == FieldCategory {
			value = m.renderCategory()
		} else {
			value = m.inputs[field].View()
		}
		rows = append(rows, prefix+label+value)
	}

	button := " Add bill "
	if m.focused && m.cursor == FieldSubmit {
		button = m.theme.Selected.Render(button)
	} else {
		button = m.theme.Highlighted.Render("[" + button + "]")
	}
	rows = append(rows, "", "  "+button)

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m EntryFormModel) renderCategory() string {
	c := m.categories[m.category]
	text := fmt.Sprintf("%s %s", themes.GetCategoryIcon(c), c.Label())
	style := m.theme.Expense
	if c.IsIncome() {
		style = m.theme.Income
	}
	if m.focused && m.cursor == FieldCategory {
		return m.theme.Faint.Render("‹ ") + style.Render(text) + m.theme.Faint.Render(" ›")
	}
	return style.Render(text)
}
