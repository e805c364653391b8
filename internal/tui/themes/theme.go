// Package themes holds the lipgloss styles of the terminal page.
package themes

import (
	"sort"

	"github.com/Veraticus/billbook/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Faint         lipgloss.Style
	Selected      lipgloss.Style
	Highlighted   lipgloss.Style
	Income        lipgloss.Style
	Expense       lipgloss.Style
	Panel         lipgloss.Style
	FocusedPanel  lipgloss.Style
	Card          lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusInfo    lipgloss.Style
	CategoryIcon  lipgloss.Style
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Success       lipgloss.Color
	Error         lipgloss.Color
	Info          lipgloss.Color
}

type palette struct {
	primary, secondary, success, errorColor, info lipgloss.Color
	foreground, subtle, border, muted, inverse   lipgloss.Color
}

func newTheme(p palette) Theme {
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.border).
		Padding(0, 1)

	return Theme{
		Primary:    p.primary,
		Secondary:  p.secondary,
		Muted:      p.muted,
		Border:     p.border,
		Foreground: p.foreground,
		Success:    p.success,
		Error:      p.errorColor,
		Info:       p.info,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.subtle),
		Normal: lipgloss.NewStyle().
			Foreground(p.foreground),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.foreground),
		Faint: lipgloss.NewStyle().
			Foreground(p.muted),
		Selected: lipgloss.NewStyle().
			Background(p.primary).
			Foreground(p.inverse).
			Bold(true),
		Highlighted: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		Income: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		Expense: lipgloss.NewStyle().
			Foreground(p.errorColor).
			Bold(true),

		Panel:        panel,
		FocusedPanel: panel.BorderForeground(p.primary),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),

		StatusSuccess: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(p.errorColor).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(p.info),

		CategoryIcon: lipgloss.NewStyle().
			Width(3).
			Align(lipgloss.Center),
	}
}

// Default is the default theme.
var Default = newTheme(palette{
	primary:    lipgloss.Color("#7c3aed"),
	secondary:  lipgloss.Color("#a78bfa"),
	success:    lipgloss.Color("#10b981"),
	errorColor: lipgloss.Color("#ef4444"),
	info:       lipgloss.Color("#3b82f6"),
	foreground: lipgloss.Color("#fafafa"),
	subtle:     lipgloss.Color("#a3a3a3"),
	border:     lipgloss.Color("#404040"),
	muted:      lipgloss.Color("#737373"),
	inverse:    lipgloss.Color("#fafafa"),
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(palette{
	primary:    lipgloss.Color("#cba6f7"),
	secondary:  lipgloss.Color("#f5c2e7"),
	success:    lipgloss.Color("#a6e3a1"),
	errorColor: lipgloss.Color("#f38ba8"),
	info:       lipgloss.Color("#89dceb"),
	foreground: lipgloss.Color("#cdd6f4"),
	subtle:     lipgloss.Color("#a6adc8"),
	border:     lipgloss.Color("#45475a"),
	muted:      lipgloss.Color("#6c7086"),
	inverse:    lipgloss.Color("#1e1e2e"),
})

var byName = map[string]Theme{
	"default":          Default,
	"catppuccin-mocha": CatppuccinMocha,
}

// GetTheme returns a theme by name, falling back to Default.
func GetTheme(name string) Theme {
	if theme, ok := byName[name]; ok {
		return theme
	}
	return Default
}

// Names lists the known theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CategoryIcons maps categories to emoji icons.
var CategoryIcons = map[model.Category]string{
	model.CategorySalary:            "💼",
	model.CategoryBonus:             "🎁",
	model.CategoryIncomeInvestment:  "📈",
	model.CategoryShopping:          "🛍️",
	model.CategoryDining:            "🍜",
	model.CategoryTransport:         "🚕",
	model.CategoryExpenseInvestment: "📉",
	model.CategoryOther:             "📦",
}

// GetCategoryIcon returns an icon for a category.
func GetCategoryIcon(category model.Category) string {
	if icon, ok := CategoryIcons[category]; ok {
		return icon
	}
	return "📦"
}

// AmountStyle picks the income or expense style for a bill.
func (t Theme) AmountStyle(bill model.Bill) lipgloss.Style {
	if bill.IsIncome() {
		return t.Income
	}
	return t.Expense
}
