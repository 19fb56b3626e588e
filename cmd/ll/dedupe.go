package main

import (
	"fmt"

	"github.com/leadline-io/leadline/internal/prospect"
	"github.com/spf13/cobra"
)

var (
	dedupeCSV  string
	dedupeKey  string
	dedupeKeep string
)

func init() {
	dedupeCmd.Flags().StringVar(&dedupeCSV, "csv", "", "Path to the prospect CSV file")
	dedupeCmd.Flags().StringVar(&dedupeKey, "key", "", `Dedupe key column (default "Profile URL")`)
	dedupeCmd.Flags().StringVar(&dedupeKeep, "keep", "first", "Which duplicate to keep: first or last")
	rootCmd.AddCommand(dedupeCmd)
}

var dedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Remove duplicate rows in place",
	Long: `Remove rows whose dedupe key value already appeared, keeping either the
first or the last occurrence. Key values are compared after trimming
whitespace; rows with an empty key are never considered duplicates. The
file is rewritten atomically.

Examples:
  ll dedupe --csv prospects.csv
  ll dedupe --csv prospects.csv --key Email --keep last`,
	RunE: runDedupe,
}

func runDedupe(cmd *cobra.Command, args []string) error {
	csvPath := resolveCSV(dedupeCSV)

	key := dedupeKey
	if key == "" {
		key = loadConfig().DedupeColumn
	}

	res, err := prospect.Deduplicate(csvPath, key, dedupeKeep)
	if err != nil {
		fail(err)
	}

	if humanOutput {
		fmt.Printf("Removed %d duplicates, %d of %d rows remain\n",
			res.DuplicatesRemoved, res.FinalCount, res.OriginalCount)
	} else {
		outputJSON(res)
	}
	return nil
}
