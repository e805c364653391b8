package ledger

import (
	"testing"
	"time"

	"github.com/Veraticus/billbook/internal/common"
	"github.com/Veraticus/billbook/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraft_SubmitAppendsAndResets(t *testing.T) {
	store := NewStore(nil)
	date := testNow.AddDate(0, 0, -5)

	draft := NewDraft(model.CategoryDining, testNow)
	draft.Name = "Lunch"
	draft.Amount = decimal.RequireFromString("12.50")
	draft.Date = date
	draft.Description = "noodles"

	later := testNow.Add(time.Minute)
	bill, err := draft.Submit(store, later)
	require.NoError(t, err)

	require.Equal(t, 1, store.Len())
	assert.Equal(t, bill, store.All()[0])
	assert.Equal(t, "Lunch", bill.Name)
	assert.Equal(t, model.CategoryDining, bill.Category)
	assert.True(t, bill.Amount.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, date, bill.Date)
	assert.Equal(t, "noodles", bill.Description)
	assert.NotEqual(t, bill.ID.String(), "00000000-0000-0000-0000-000000000000")

	assert.Equal(t, model.CategoryDining, draft.Category, "category is kept")
	assert.True(t, draft.Amount.IsZero())
	assert.Empty(t, draft.Name)
	assert.Empty(t, draft.Description)
	assert.Equal(t, later, draft.Date)
}

func TestDraft_SubmitRejectsEmptyName(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "whitespace", in: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(nil)
			draft := NewDraft(model.CategorySalary, testNow)
			draft.Name = tt.in
			draft.Amount = decimal.NewFromInt(3)

			_, err := draft.Submit(store, testNow)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidInput)
			assert.Equal(t, "name is required", common.UserMessage(err))
			assert.Equal(t, 0, store.Len())
			assert.True(t, draft.Amount.Equal(decimal.NewFromInt(3)), "draft untouched on error")
		})
	}
}

func TestDraft_SubmitAcceptsNegativeAmount(t *testing.T) {
	store := NewStore(nil)
	draft := NewDraft(model.CategoryOther, testNow)
	draft.Name = "refund"
	draft.Amount = decimal.NewFromInt(-4)

	bill, err := draft.Submit(store, testNow)
	require.NoError(t, err)
	assert.True(t, bill.Amount.IsNegative())
	assert.Equal(t, 1, store.Len())
}

func TestDraft_SubmitTrimsName(t *testing.T) {
	store := NewStore(nil)
	draft := NewDraft(model.CategoryOther, testNow)
	draft.Name = "  book  "

	bill, err := draft.Submit(store, testNow)
	require.NoError(t, err)
	assert.Equal(t, "book", bill.Name)
}
