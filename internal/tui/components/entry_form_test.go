package components

import (
	"testing"
	"time"

	"github.com/Veraticus/billbook/internal/common"
	"github.com/Veraticus/billbook/internal/ledger"
	"github.com/Veraticus/billbook/internal/model"
	"github.com/Veraticus/billbook/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC)

func newFocusedForm() EntryFormModel {
	m := NewEntryFormModel(themes.Default, testNow)
	m.Focus()
	return m
}

func TestEntryForm_CategorySelectorWraps(t *testing.T) {
	m := newFocusedForm()
	assert.Equal(t, model.CategorySalary, m.Category())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, model.CategoryOther, m.Category())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, model.CategoryBonus, m.Category())
}

func TestEntryForm_EnterAdvancesThenSubmits(t *testing.T) {
	m := newFocusedForm()

	for want := FieldAmount; want <= FieldSubmit; want++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.Equal(t, want, m.Cursor())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, SubmitRequestedMsg{}, cmd())
}

func TestEntryForm_UnfocusedIgnoresKeys(t *testing.T) {
	m := NewEntryFormModel(themes.Default, testNow)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, FieldCategory, m.Cursor())
	assert.False(t, m.Focused())
}

func TestEntryForm_Draft(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		date     string
		wantErr  string
		wantDate time.Time
		want     decimal.Decimal
	}{
		{
			name:     "blank amount is zero and date keeps time of day",
			date:     "2024-03-31",
			wantDate: testNow,
			want:     decimal.Zero,
		},
		{
			name:     "edited date starts at midnight",
			amount:   "7.25",
			date:     "2024-02-10",
			wantDate: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
			want:     decimal.RequireFromString("7.25"),
		},
		{
			name:    "non numeric amount",
			amount:  "seven",
			date:    "2024-03-31",
			wantErr: "amount must be a number",
		},
		{
			name:    "malformed date",
			date:    "31/03/2024",
			wantErr: "date must look like 2006-01-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newFocusedForm()
			m.inputs[FieldAmount].SetValue(tt.amount)
			m.inputs[FieldName].SetValue("Lunch")
			m.inputs[FieldDate].SetValue(tt.date)

			draft, err := m.Draft()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrInvalidInput)
				assert.Equal(t, tt.wantErr, common.UserMessage(err))
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(draft.Amount))
			assert.Equal(t, tt.wantDate, draft.Date)
			assert.Equal(t, "Lunch", draft.Name)
		})
	}
}

func TestEntryForm_SetDraftAfterSubmit(t *testing.T) {
	store := ledger.NewStore(nil)
	m := newFocusedForm()
	m.category = 3
	m.inputs[FieldAmount].SetValue("40")
	m.inputs[FieldName].SetValue("Pot")

	draft, err := m.Draft()
	require.NoError(t, err)
	later := testNow.Add(time.Hour)
	_, err = draft.Submit(store, later)
	require.NoError(t, err)

	m.SetDraft(draft)
	assert.Equal(t, model.CategoryShopping, m.Category())
	assert.Empty(t, m.inputs[FieldAmount].Value())
	assert.Empty(t, m.inputs[FieldName].Value())
	assert.Equal(t, later.Format(DateLayout), m.inputs[FieldDate].Value())
	assert.Contains(t, m.View(), "Add bill")
}
