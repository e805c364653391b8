package ledger

import (
	"time"

	"github.com/Veraticus/billbook/internal/model"
	"github.com/shopspring/decimal"
)

// DefaultSeed returns the starter bills, dated relative to now.
func DefaultSeed(now time.Time) []model.Bill {
	return []model.Bill{
		model.NewBill(model.CategorySalary, "Salary", decimal.NewFromInt(10000),
			now.Add(-time.Hour), "End of month pay"),
		model.NewBill(model.CategoryShopping, "Shopping", decimal.NewFromInt(1000),
			now.AddDate(0, 0, -2), "Bought a cooking pot"),
		model.NewBill(model.CategoryDining, "Dining", decimal.NewFromInt(200),
			now.AddDate(0, 0, -3), "Beef hotpot dinner"),
		model.NewBill(model.CategoryTransport, "Transport", decimal.NewFromInt(50),
			model.SubtractMonths(now, 1), "Taxi home"),
		model.NewBill(model.CategoryOther, "Other", decimal.NewFromInt(500),
			model.SubtractMonths(now, 2), "Bought a book"),
		model.NewBill(model.CategoryBonus, "Bonus", decimal.NewFromInt(1000),
			model.SubtractMonths(now, 12), "Annual performance award"),
		model.NewBill(model.CategoryExpenseInvestment, "Investment", decimal.NewFromInt(2000),
			model.SubtractMonths(now, 24), "Heavy position in AAPL"),
	}
}
