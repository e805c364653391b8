package main

import (
	"fmt"
	"time"

	"github.com/Veraticus/billbook/internal/cli"
	"github.com/Veraticus/billbook/internal/common"
	"github.com/Veraticus/billbook/internal/config"
	"github.com/Veraticus/billbook/internal/ledger"
	"github.com/Veraticus/billbook/internal/model"
	"github.com/Veraticus/billbook/internal/tui/components"
	"github.com/Veraticus/billbook/internal/tui/themes"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const listCardWidth = 26

func listCmd() *cobra.Command {
	var (
		categoryFlag string
		recencyFlag  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the bill grid",
		Long: `Print the session's bills as a grid of cards followed by totals.

Categories: salary, bonus, income/investment, shopping, dining, transport,
expense/investment, other, or "all". Recency: day, month, year or unset.`,
		Example: `  billbook list --category dining --recency month
  billbook list --seed-ofx ~/Downloads/checking.qfx --columns 3`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			category, err := model.ParseCategoryFilter(categoryFlag)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("invalid --category: %v", err), err)
			}
			recency, err := model.ParseRecency(recencyFlag)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("invalid --recency: %v", err), err)
			}

			now := time.Now()
			store, err := loadStore(cmd.Context(), settings, now, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			bills := store.Filter(category, recency, now)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderList(bills, category, recency, settings.Columns))
			return err
		},
	}

	cmd.Flags().StringVar(&categoryFlag, "category", "all", "category to show")
	cmd.Flags().StringVar(&recencyFlag, "recency", string(model.RecencyUnset), "only bills newer than one day, month or year")
	cmd.Flags().Int("columns", config.DefaultColumns, "cards per grid row")

	return cmd
}

func renderList(bills []model.Bill, category model.CategoryFilter, recency model.Recency, columns int) string {
	theme := themes.Default
	title := cli.FormatTitle(fmt.Sprintf("Bills: %s, %s", category, recency))

	grid := cli.FormatInfo("No bills match the current filters.")
	if len(bills) > 0 {
		grid = components.RenderGrid(theme, ledger.Chunk(bills, columns), columns, columns*(listCardWidth+4))
	}

	bar := progress.New(progress.WithDefaultGradient())
	bar.ShowPercentage = false
	bar.Width = 30
	summary := cli.BoxStyle.Render(components.RenderSummary(theme, ledger.Summarize(bills), bar))

	return lipgloss.JoinVertical(lipgloss.Left, title, grid, summary)
}
