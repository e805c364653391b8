package ledger

import (
	"testing"
	"time"

	"github.com/Veraticus/billbook/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC)

func testBill(c model.Category, name string, amount int64, date time.Time) model.Bill {
	return model.NewBill(c, name, decimal.NewFromInt(amount), date, "")
}

func sampleBills() []model.Bill {
	return []model.Bill{
		testBill(model.CategorySalary, "A", 1000, testNow.Add(-time.Hour)),
		testBill(model.CategoryShopping, "B", 1000, testNow.AddDate(0, 0, -2)),
		testBill(model.CategoryDining, "C", 200, testNow.AddDate(0, 0, -40)),
	}
}

func names(bills []model.Bill) []string {
	out := make([]string, 0, len(bills))
	for _, b := range bills {
		out = append(out, b.Name)
	}
	return out
}

func TestStore_AddIsAppendOnly(t *testing.T) {
	store := NewStore(sampleBills())
	before := store.Filter(model.AllCategoriesFilter(), model.RecencyUnset, testNow)

	extra := testBill(model.CategoryBonus, "D", 5, testNow)
	store.Add(extra)

	after := store.Filter(model.AllCategoriesFilter(), model.RecencyUnset, testNow)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, before, after[:len(before)])
	assert.Equal(t, extra, after[len(after)-1])
	assert.Equal(t, 4, store.Len())
}

func TestStore_AddAcceptsAnything(t *testing.T) {
	store := NewStore(nil)
	store.Add(model.NewBill(model.CategoryOther, "", decimal.NewFromInt(-10), time.Time{}, ""))
	assert.Equal(t, 1, store.Len())
}

func TestStore_NewStoreCopiesSeed(t *testing.T) {
	seed := sampleBills()
	store := NewStore(seed)
	seed[0].Name = "changed"

	assert.Equal(t, "A", store.All()[0].Name)
}

func TestStore_AllReturnsCopy(t *testing.T) {
	store := NewStore(sampleBills())
	all := store.All()
	all[0].Name = "changed"

	assert.Equal(t, "A", store.All()[0].Name)
}

func TestStore_FilterIdentity(t *testing.T) {
	bills := sampleBills()
	store := NewStore(bills)

	assert.Equal(t, bills, store.Filter(model.AllCategoriesFilter(), model.RecencyUnset, testNow))
}

func TestStore_Filter(t *testing.T) {
	tests := []struct {
		name     string
		category model.CategoryFilter
		recency  model.Recency
		want     []string
	}{
		{
			name:     "single category keeps order",
			category: model.OnlyCategory(model.CategoryShopping),
			recency:  model.RecencyUnset,
			want:     []string{"B"},
		},
		{
			name:     "last day",
			category: model.AllCategoriesFilter(),
			recency:  model.RecencyDay,
			want:     []string{"A"},
		},
		{
			name:     "last month",
			category: model.AllCategoriesFilter(),
			recency:  model.RecencyMonth,
			want:     []string{"A", "B"},
		},
		{
			name:     "last year",
			category: model.AllCategoriesFilter(),
			recency:  model.RecencyYear,
			want:     []string{"A", "B", "C"},
		},
		{
			name:     "both predicates are ANDed",
			category: model.OnlyCategory(model.CategoryDining),
			recency:  model.RecencyMonth,
			want:     []string{},
		},
		{
			name:     "category with no bills",
			category: model.OnlyCategory(model.CategoryTransport),
			recency:  model.RecencyUnset,
			want:     []string{},
		},
		{
			name:     "out of domain category is an empty result",
			category: model.OnlyCategory(model.Category{Kind: model.KindExpense, Name: "rent"}),
			recency:  model.RecencyUnset,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(sampleBills())
			got := store.Filter(tt.category, tt.recency, testNow)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestStore_FilterInvestmentKindsAreDistinct(t *testing.T) {
	store := NewStore([]model.Bill{
		testBill(model.CategoryIncomeInvestment, "dividend", 10, testNow),
		testBill(model.CategoryExpenseInvestment, "stock", 20, testNow),
	})

	got := store.Filter(model.OnlyCategory(model.CategoryIncomeInvestment), model.RecencyUnset, testNow)
	assert.Equal(t, []string{"dividend"}, names(got))

	got = store.Filter(model.OnlyCategory(model.CategoryExpenseInvestment), model.RecencyUnset, testNow)
	assert.Equal(t, []string{"stock"}, names(got))
}

func TestStore_FilterCutoffIsExclusive(t *testing.T) {
	cutoff, ok := model.RecencyDay.Cutoff(testNow)
	require.True(t, ok)

	store := NewStore([]model.Bill{
		testBill(model.CategoryOther, "at", 1, cutoff),
		testBill(model.CategoryOther, "after", 1, cutoff.Add(time.Nanosecond)),
	})

	got := store.Filter(model.AllCategoriesFilter(), model.RecencyDay, testNow)
	assert.Equal(t, []string{"after"}, names(got))
}
