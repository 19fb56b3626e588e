package main

import (
	"fmt"
	"strings"

	"github.com/leadline-io/leadline/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global configuration",
	Long: `Read and write the global configuration file. Settings:

  csv_path        default prospect CSV path
  dedupe_column   default dedupe key column
  search_columns  default free-text search columns (comma-separated)

Examples:
  ll config get
  ll config set csv_path ~/leads/prospects.csv
  ll config set search_columns "Headline,Company,Match Reason"`,
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current configuration",
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	if !humanOutput {
		return outputJSON(map[string]any{
			"path":           config.Path(),
			"csv_path":       cfg.CSVPath,
			"dedupe_column":  cfg.DedupeColumn,
			"search_columns": cfg.SearchColumns,
		})
	}

	fmt.Printf("Config file:    %s\n", config.Path())
	fmt.Printf("csv_path:       %s\n", cfg.CSVPath)
	fmt.Printf("dedupe_column:  %s\n", cfg.DedupeColumn)
	fmt.Printf("search_columns: %s\n", strings.Join(cfg.SearchColumns, ","))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	switch key {
	case "csv_path":
		cfg.CSVPath = value
	case "dedupe_column":
		cfg.DedupeColumn = value
	case "search_columns":
		cols := strings.Split(value, ",")
		for i := range cols {
			cols[i] = strings.TrimSpace(cols[i])
		}
		cfg.SearchColumns = cols
	default:
		exitWithError(ExitConfigError, "unknown config key %q", key)
	}

	if err := cfg.Save(); err != nil {
		exitWithError(ExitConfigError, "saving config: %v", err)
	}

	if humanOutput {
		fmt.Printf("Set %s = %s\n", key, value)
	} else {
		outputJSON(map[string]string{"key": key, "value": value})
	}
	return nil
}
