// Package tui implements the interactive bookkeeping page.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the page until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Store == nil {
		return fmt.Errorf("bill store is required")
	}

	slog.Info("Starting bill page",
		"bills", cfg.Store.Len(),
		"columns", cfg.Columns)

	program := tea.NewProgram(
		newModel(cfg),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	final, err := program.Run()
	if err != nil {
		// Cancellation is a normal way to leave the page.
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}

	if m, ok := final.(Model); ok {
		slog.Info("Bill page closed", "bills", m.store.Len())
	}
	return nil
}
