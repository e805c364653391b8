package tui

import (
	"time"

	"github.com/Veraticus/billbook/internal/ledger"
	"github.com/Veraticus/billbook/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme    themes.Theme
	Store    *ledger.Store
	Clock    func() time.Time
	Width    int
	Height   int
	Columns  int
	ShowHelp bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:    themes.Default,
		Clock:    time.Now,
		Width:    80,
		Height:   24,
		Columns:  4,
		ShowHelp: false,
	}
}

// WithStore sets the bill store the page reads and appends to.
func WithStore(store *ledger.Store) Option {
	return func(c *Config) {
		c.Store = store
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithColumns sets the number of cards per grid row.
func WithColumns(columns int) Option {
	return func(c *Config) {
		c.Columns = columns
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithClock overrides the time source used for new drafts and recency filters.
func WithClock(clock func() time.Time) Option {
	return func(c *Config) {
		c.Clock = clock
	}
}
