package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Veraticus/unibudget/internal/cli"
	"github.com/Veraticus/unibudget/internal/common"
	"github.com/Veraticus/unibudget/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "unibudget",
		Short: "👛 Personal weekly budget and notes tracker",
		Long: `unibudget: record what you spend against a weekly limit, see where the
money went this week, and keep a few notes on the side.

Run without a subcommand to open the interactive terminal UI.`,
		PersistentPreRunE: a.initConfig,
		RunE:              a.runUI,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/unibudget/config.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.String("backend", "", "storage backend (sqlite, redis, memory)")
	flags.String("db", "", "SQLite database path")

	// Bind flags to viper
	_ = a.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag(config.KeyStorageBackend, flags.Lookup("backend"))
	_ = a.v.BindPFlag(config.KeyStoragePath, flags.Lookup("db"))

	// Add commands
	rootCmd.AddCommand(a.uiCmd())
	rootCmd.AddCommand(a.addCmd())
	rootCmd.AddCommand(a.listCmd())
	rootCmd.AddCommand(a.deleteCmd())
	rootCmd.AddCommand(a.statusCmd())
	rootCmd.AddCommand(a.statsCmd())
	rootCmd.AddCommand(a.limitCmd())
	rootCmd.AddCommand(a.themeCmd())
	rootCmd.AddCommand(a.notesCmd())
	rootCmd.AddCommand(a.resetCmd())
	rootCmd.AddCommand(a.exportCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(common.UserMessage(err)))
		slog.Debug("Command failed", "error", err)
		os.Exit(1)
	}
}

func (a *app) initConfig(_ *cobra.Command, _ []string) error {
	// A .env file next to the binary is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	config.SetDefaults(a.v)

	// Set up config file
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(config.ConfigDir())
		a.v.AddConfigPath(".")
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	// Environment variables: UNIBUDGET_STORAGE_BACKEND etc.
	a.v.SetEnvPrefix("UNIBUDGET")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return common.NewUserError("Could not read config file", fmt.Errorf("%w: %w", common.ErrInvalidConfig, err))
		}
	}

	if err := a.setupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func (a *app) setupLogging() error {
	format, err := a.logFormat()
	if err != nil {
		return err
	}
	common.SetupLogger(common.ParseLevel(a.v.GetString("logging.level")), format)
	return nil
}

func (a *app) logFormat() (string, error) {
	switch format := a.v.GetString("logging.format"); format {
	case "", "console", "text":
		return "text", nil
	case "json":
		return format, nil
	default:
		return "", fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, format)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "unibudget %s\n", version)
		},
	}
}
