package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Veraticus/billbook/internal/cli"
	"github.com/Veraticus/billbook/internal/common"
	"github.com/Veraticus/billbook/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// annotationQuietLogs marks commands that own the terminal, so logs must not
// go to stderr.
const annotationQuietLogs = "billbook/quiet-logs"

var (
	cfgFile  string
	version  = "dev"
	settings config.Settings
	logFile  *os.File
	rootCmd  = newRootCmd()
)

// commandFlagKeys binds command-local flags to settings keys when the
// command that defines them runs.
var commandFlagKeys = map[string]string{
	"columns": config.KeyColumns,
	"theme":   config.KeyTheme,
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "billbook",
		Short: "📒 Personal income and expense notebook",
		Long: `billbook: record income and expenses, filter them by category and
recency, and browse them as a grid of cards.

Bills live in memory for one session. Start from the built-in sample set
or seed the session from an OFX/QFX bank statement.`,
		PersistentPreRunE:  initConfig,
		PersistentPostRunE: closeLogs,
		SilenceUsage:       true,
		SilenceErrors:      true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/billbook/config.yaml)")
	cmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	cmd.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr")
	cmd.PersistentFlags().String("seed-ofx", "", "seed the session from an OFX/QFX statement instead of the sample bills")

	cmd.AddCommand(uiCmd())
	cmd.AddCommand(listCmd())
	cmd.AddCommand(categoriesCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

func main() {
	interrupts := cli.NewInterruptHandler(os.Stderr)
	ctx, stop := interrupts.HandleInterrupts(context.Background())

	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		common.LogError(err, "Command failed", common.Fields{"args": strings.Join(os.Args[1:], " ")})
		fmt.Fprintln(os.Stderr, cli.FormatError(common.UserMessage(err)))
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, _ []string) error {
	v := viper.GetViper()

	// Set up config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		v.AddConfigPath(fmt.Sprintf("%s/.config/billbook", home))
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Environment variables: BILLBOOK_UI_COLUMNS and friends.
	v.SetEnvPrefix("BILLBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	config.SetDefaults(v)

	flags := cmd.Root().PersistentFlags()
	_ = v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = v.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))
	_ = v.BindPFlag(config.KeyLogFile, flags.Lookup("log-file"))
	_ = v.BindPFlag(config.KeySeedOFX, flags.Lookup("seed-ofx"))
	for name, key := range commandFlagKeys {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			_ = v.BindPFlag(key, flag)
		}
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	loaded, err := config.LoadSettings(v)
	if err != nil {
		return err
	}
	settings = loaded

	// Set up logging
	if err := setupLogging(cmd); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	slog.Debug("Configuration loaded", "config_file", v.ConfigFileUsed(), "columns", settings.Columns)
	return nil
}

func setupLogging(cmd *cobra.Command) error {
	level, err := common.ParseLevel(settings.LogLevel)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.ErrOrStderr()
	switch {
	case settings.LogFile != "":
		f, openErr := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("failed to open log file: %w", openErr)
		}
		logFile = f
		w = f
	case cmd.Annotations[annotationQuietLogs] == "true":
		w = io.Discard
	}

	return common.SetupLogger(level, settings.LogFormat, w)
}

func closeLogs(_ *cobra.Command, _ []string) error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "billbook %s\n", version)
		},
	}
}
