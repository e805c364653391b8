// Package config loads application settings from viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/billbook/internal/common"
	"github.com/spf13/viper"
)

// Setting keys shared by flags, config files and BILLBOOK_ environment variables.
const (
	KeyLogLevel  = "logging.level"
	KeyLogFormat = "logging.format"
	KeyLogFile   = "logging.file"
	KeyColumns   = "ui.columns"
	KeyTheme     = "ui.theme"
	KeySeedOFX   = "seed.ofx"
)

// Column bounds for the card grid.
const (
	DefaultColumns = 4
	MinColumns     = 1
	MaxColumns     = 8
)

// Settings is the validated application configuration.
type Settings struct {
	LogLevel  string
	LogFormat string
	LogFile   string
	Theme     string
	SeedOFX   string
	Columns   int
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyColumns, DefaultColumns)
	v.SetDefault(KeyTheme, "default")
}

// LoadSettings reads settings from v and validates them.
func LoadSettings(v *viper.Viper) (Settings, error) {
	s := Settings{
		LogLevel:  v.GetString(KeyLogLevel),
		LogFormat: v.GetString(KeyLogFormat),
		LogFile:   ExpandPath(v.GetString(KeyLogFile)),
		Columns:   v.GetInt(KeyColumns),
		Theme:     v.GetString(KeyTheme),
		SeedOFX:   ExpandPath(v.GetString(KeySeedOFX)),
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports every invalid field at once.
func (s Settings) Validate() error {
	var problems []string

	if s.Columns < MinColumns || s.Columns > MaxColumns {
		problems = append(problems, fmt.Sprintf("ui.columns must be between %d and %d, got %d", MinColumns, MaxColumns, s.Columns))
	}

	if _, err := common.ParseLevel(s.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("logging.level %q is not one of debug, info, warn, error", s.LogLevel))
	}

	switch s.LogFormat {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format %q is not one of console, json", s.LogFormat))
	}

	if s.SeedOFX != "" {
		if _, err := os.Stat(s.SeedOFX); err != nil {
			problems = append(problems, fmt.Sprintf("seed.ofx %q cannot be read: %v", s.SeedOFX, err))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w:\n- %s", common.ErrInvalidConfig, strings.Join(problems, "\n- "))
	}
	return nil
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") || path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return os.ExpandEnv(path)
}
