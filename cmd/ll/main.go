// Package main provides the ll CLI entry point.
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/leadline-io/leadline/internal/config"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// verbose enables debug logging on stderr
var verbose bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ll",
	Short: "Prospect CSV manager",
	Long: `ll manages a flat prospect dataset stored as a CSV file.

It appends with deduplication, filters on multiple criteria, aggregates
summary statistics, searches free text, and exports segments. All commands
output JSON by default for easy integration with agents and other tools.
Every mutating command replaces the file atomically.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		setupLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging on stderr")
	rootCmd.Version = Version
}

func setupLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:   level,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	})))
}

// loadConfig loads the global config, exiting on failure.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// resolveCSV picks the CSV path from the flag, the LEADLINE_CSV
// environment variable, or the configured default, and exits if none is
// set.
func resolveCSV(flagValue string) string {
	path := loadConfig().ResolveCSVPath(flagValue)
	if path == "" {
		exitWithError(ExitConfigError, "no CSV path: pass --csv, set %s, or configure csv_path", config.EnvCSVPath)
	}
	slog.Debug("resolved csv path", "path", path)
	return path
}
