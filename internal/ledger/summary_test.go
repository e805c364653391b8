package ledger

import (
	"testing"

	"github.com/Veraticus/billbook/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	sum := Summarize(sampleBills())

	assert.Equal(t, 3, sum.Count)
	assert.True(t, sum.Income.Equal(decimal.NewFromInt(1000)))
	assert.True(t, sum.Expense.Equal(decimal.NewFromInt(1200)))
	assert.True(t, sum.Net().Equal(decimal.NewFromInt(-200)))
	assert.InDelta(t, 1.0, sum.ExpenseRatio(), 0.0001)
}

func TestSummary_ExpenseRatio(t *testing.T) {
	tests := []struct {
		name    string
		income  int64
		expense int64
		want    float64
	}{
		{name: "nothing", want: 0},
		{name: "expense without income", expense: 10, want: 1},
		{name: "half", income: 100, expense: 50, want: 0.5},
		{name: "clamped", income: 10, expense: 100, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := Summary{Income: decimal.NewFromInt(tt.income), Expense: decimal.NewFromInt(tt.expense)}
			assert.InDelta(t, tt.want, sum.ExpenseRatio(), 0.0001)
		})
	}
}

func TestDefaultSeed(t *testing.T) {
	seed := DefaultSeed(testNow)
	require.Len(t, seed, 7)

	seen := make(map[string]bool)
	for _, bill := range seed {
		assert.True(t, bill.Category.Valid(), bill.Name)
		assert.False(t, bill.Date.After(testNow), bill.Name)
		assert.False(t, seen[bill.ID.String()], "duplicate id for %s", bill.Name)
		seen[bill.ID.String()] = true
	}

	store := NewStore(seed)
	assert.Len(t, store.Filter(model.AllCategoriesFilter(), model.RecencyDay, testNow), 1)
	assert.Len(t, store.Filter(model.AllCategoriesFilter(), model.RecencyMonth, testNow), 3)
	assert.Len(t, store.Filter(model.AllCategoriesFilter(), model.RecencyYear, testNow), 5)
}
