package main

import (
	"fmt"
	"log/slog"

	"github.com/leadline-io/leadline/internal/prospect"
	"github.com/spf13/cobra"
)

var indexCSV string

func init() {
	indexCmd.Flags().StringVar(&indexCSV, "csv", "", "Path to the prospect CSV file")
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build or refresh the full-text search index",
	Long: `Build the SQLite full-text index for the CSV, or refresh it if the file
has changed since the last build. The index lives next to the CSV and is
disposable; it is rebuilt from scratch whenever the CSV content hash no
longer matches.

Examples:
  ll index --csv prospects.csv`,
	RunE: runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	csvPath := resolveCSV(indexCSV)

	st, err := prospect.SyncIndex(csvPath)
	if err != nil {
		fail(err)
	}
	slog.Debug("index synced", "path", st.Path, "records", st.Records, "rebuilt", st.Rebuilt)

	if humanOutput {
		if st.Rebuilt {
			fmt.Printf("Rebuilt index at %s (%d records)\n", st.Path, st.Records)
		} else {
			fmt.Printf("Index at %s is current (%d records)\n", st.Path, st.Records)
		}
	} else {
		outputJSON(st)
	}
	return nil
}
