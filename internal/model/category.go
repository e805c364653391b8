package model

import (
	"fmt"
	"strings"

	"github.com/Veraticus/billbook/internal/common"
)

// Kind indicates whether a bill records money coming in or going out.
type Kind string

const (
	// KindIncome represents money received.
	KindIncome Kind = "income"
	// KindExpense represents money spent.
	KindExpense Kind = "expense"
)

// Category is a bill category qualified by its kind. Income and expense each
// own a closed set of names; "investment" exists in both and the two are
// distinct categories.
type Category struct {
	Kind Kind
	Name string
}

// Income categories.
var (
	CategorySalary           = Category{Kind: KindIncome, Name: "salary"}
	CategoryBonus            = Category{Kind: KindIncome, Name: "bonus"}
	CategoryIncomeInvestment = Category{Kind: KindIncome, Name: "investment"}
)

// Expense categories.
var (
	CategoryShopping          = Category{Kind: KindExpense, Name: "shopping"}
	CategoryDining            = Category{Kind: KindExpense, Name: "dining"}
	CategoryTransport         = Category{Kind: KindExpense, Name: "transport"}
	CategoryExpenseInvestment = Category{Kind: KindExpense, Name: "investment"}
	CategoryOther             = Category{Kind: KindExpense, Name: "other"}
)

// IncomeCategories returns the closed set of income categories.
func IncomeCategories() []Category {
	return []Category{CategorySalary, CategoryBonus, CategoryIncomeInvestment}
}

// ExpenseCategories returns the closed set of expense categories.
func ExpenseCategories() []Category {
	return []Category{CategoryShopping, CategoryDining, CategoryTransport, CategoryExpenseInvestment, CategoryOther}
}

// AllCategories returns income categories followed by expense categories.
func AllCategories() []Category {
	return append(IncomeCategories(), ExpenseCategories()...)
}

// Valid reports whether c belongs to the closed set of its kind.
func (c Category) Valid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// IsIncome reports whether c is an income category.
func (c Category) IsIncome() bool {
	return c.Kind == KindIncome
}

// String returns the qualified form, e.g. "expense/dining".
func (c Category) String() string {
	return string(c.Kind) + "/" + c.Name
}

// Label returns the short name when it is unambiguous and the qualified form
// otherwise.
func (c Category) Label() string {
	if c.Name == "investment" {
		return c.String()
	}
	return c.Name
}

// ParseCategory accepts either a bare name ("dining") or a qualified name
// ("income/investment"). A bare name shared by both kinds is rejected.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Category{}, fmt.Errorf("%w: empty category", common.ErrUnknownCategory)
	}

	if kind, name, ok := strings.Cut(s, "/"); ok {
		c := Category{Kind: Kind(kind), Name: name}
		if !c.Valid() {
			return Category{}, fmt.Errorf("%w: %q", common.ErrUnknownCategory, s)
		}
		return c, nil
	}

	var matches []Category
	for _, c := range AllCategories() {
		if c.Name == s {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 0:
		return Category{}, fmt.Errorf("%w: %q", common.ErrUnknownCategory, s)
	case 1:
		return matches[0], nil
	default:
		return Category{}, fmt.Errorf("%w: %q could be %s or %s",
			common.ErrAmbiguousCategory, s, matches[0], matches[1])
	}
}

// CategoryFilter selects either every category or exactly one.
type CategoryFilter struct {
	category Category
	all      bool
}

// AllCategoriesFilter matches every bill.
func AllCategoriesFilter() CategoryFilter {
	return CategoryFilter{all: true}
}

// OnlyCategory matches bills whose category equals c exactly.
func OnlyCategory(c Category) CategoryFilter {
	return CategoryFilter{category: c}
}

// ParseCategoryFilter accepts "all" or anything ParseCategory accepts.
func ParseCategoryFilter(s string) (CategoryFilter, error) {
	if strings.EqualFold(strings.TrimSpace(s), "all") {
		return AllCategoriesFilter(), nil
	}
	c, err := ParseCategory(s)
	if err != nil {
		return CategoryFilter{}, err
	}
	return OnlyCategory(c), nil
}

// IsAll reports whether the filter matches every category.
func (f CategoryFilter) IsAll() bool {
	return f.all
}

// Category returns the selected category. It is the zero value for "all".
func (f CategoryFilter) Category() Category {
	return f.category
}

// Matches reports whether c passes the filter.
func (f CategoryFilter) Matches(c Category) bool {
	return f.all || f.category == c
}

func (f CategoryFilter) String() string {
	if f.all {
		return "all"
	}
	return f.category.Label()
}

// FilterChoices returns every category followed by the "all" choice, the
// order the filter bar cycles through.
func FilterChoices() []CategoryFilter {
	cats := AllCategories()
	choices := make([]CategoryFilter, 0, len(cats)+1)
	for _, c := range cats {
		choices = append(choices, OnlyCategory(c))
	}
	return append(choices, AllCategoriesFilter())
}
