package main

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/Veraticus/billbook/internal/common"
	"github.com/Veraticus/billbook/internal/config"
	"github.com/Veraticus/billbook/internal/tui"
	"github.com/Veraticus/billbook/internal/tui/themes"
	"github.com/spf13/cobra"
)

func uiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive bill page",
		Long: `Open a full-screen page with an entry form, filters, totals and the
bill grid. Tab moves between panes; Enter on "Add bill" records the entry.

Logs go to --log-file when set and are discarded otherwise.`,
		Annotations: map[string]string{annotationQuietLogs: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(themes.Names(), settings.Theme) {
				return common.NewUserError(
					fmt.Sprintf("unknown theme %q (available: %s)", settings.Theme, strings.Join(themes.Names(), ", ")),
					fmt.Errorf("%w: theme %q", common.ErrInvalidConfig, settings.Theme),
				)
			}

			store, err := loadStore(cmd.Context(), settings, time.Now(), io.Discard)
			if err != nil {
				return err
			}

			return tui.Run(cmd.Context(),
				tui.WithStore(store),
				tui.WithTheme(themes.GetTheme(settings.Theme)),
				tui.WithColumns(settings.Columns),
			)
		},
	}

	cmd.Flags().Int("columns", config.DefaultColumns, "cards per grid row")
	cmd.Flags().String("theme", "default", "color theme ("+strings.Join(themes.Names(), ", ")+")")

	return cmd
}
