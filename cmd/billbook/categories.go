package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/billbook/internal/cli"
	"github.com/Veraticus/billbook/internal/model"
	"github.com/Veraticus/billbook/internal/tui/themes"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the income and expense categories",
		Long: `Display the fixed category sets and the name each one takes on the
command line. "investment" exists for both kinds, so it must be qualified.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("Kind"),
				cli.TableHeaderStyle.Render("Category"),
				cli.TableHeaderStyle.Render("Flag value"),
				cli.TableHeaderStyle.Render("Icon"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 7),
				strings.Repeat("-", 10),
				strings.Repeat("-", 18),
				strings.Repeat("-", 4))

			for _, c := range model.AllCategories() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Kind, c.Name, c.Label(), themes.GetCategoryIcon(c))
			}

			return w.Flush()
		},
	}
}
