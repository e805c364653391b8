package ledger

import (
	"github.com/Veraticus/billbook/internal/model"
	"github.com/shopspring/decimal"
)

// Summary aggregates a set of bills.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Count   int
}

// Net returns income minus expense.
func (s Summary) Net() decimal.Decimal {
	return s.Income.Sub(s.Expense)
}

// ExpenseRatio returns expense / income clamped to [0, 1]. With no income the
// ratio is 1 if anything was spent and 0 otherwise.
func (s Summary) ExpenseRatio() float64 {
	if !s.Income.IsPositive() {
		if s.Expense.IsPositive() {
			return 1
		}
		return 0
	}
	ratio, _ := s.Expense.Div(s.Income).Float64()
	return min(max(ratio, 0), 1)
}

// Summarize totals bills by kind.
func Summarize(bills []model.Bill) Summary {
	sum := Summary{Income: decimal.Zero, Expense: decimal.Zero}
	for _, bill := range bills {
		sum.Count++
		if bill.IsIncome() {
			sum.Income = sum.Income.Add(bill.Amount)
		} else {
			sum.Expense = sum.Expense.Add(bill.Amount)
		}
	}
	return sum
}
