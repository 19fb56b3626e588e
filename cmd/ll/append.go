package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/leadline-io/leadline/internal/prospect"
	"github.com/leadline-io/leadline/internal/table"
	"github.com/spf13/cobra"
)

var (
	appendCSV      string
	appendKey      string
	appendProfiles string
)

func init() {
	appendCmd.Flags().StringVar(&appendCSV, "csv", "", "Path to the prospect CSV file")
	appendCmd.Flags().StringVar(&appendKey, "key", "", `Dedupe key column (default "Profile URL")`)
	appendCmd.Flags().StringVar(&appendProfiles, "profiles", "-", "JSON file with an array of profile objects (- for stdin)")
	rootCmd.AddCommand(appendCmd)
}

var appendCmd = &cobra.Command{
	Use:   "append",
	Short: "Append profiles with deduplication",
	Long: `Append new profiles to the CSV, skipping rows whose dedupe key value
already exists. Existing rows are never updated. Profiles are a JSON
array of objects whose keys must match the file's columns; a nonexistent
file is created from the batch.

Examples:
  ll append --csv prospects.csv --profiles batch.json
  cat batch.json | ll append --csv prospects.csv`,
	RunE: runAppend,
}

func runAppend(cmd *cobra.Command, args []string) error {
	csvPath := resolveCSV(appendCSV)

	profiles, err := readProfiles(appendProfiles)
	if err != nil {
		exitWithError(ExitDataError, "reading profiles: %v", err)
	}
	slog.Debug("read profile batch", "count", len(profiles), "source", appendProfiles)

	key := appendKey
	if key == "" {
		key = loadConfig().DedupeColumn
	}

	res, err := prospect.AppendProfiles(csvPath, profiles, key)
	if err != nil {
		fail(err)
	}

	if humanOutput {
		fmt.Printf("Added %d, skipped %d duplicates, %d total\n",
			res.Added, res.SkippedDuplicates, res.TotalProfiles)
	} else {
		outputJSON(res)
	}
	return nil
}

// readProfiles decodes a JSON array of objects into records, stringifying
// scalar values the way the CSV stores them.
func readProfiles(path string) ([]table.Record, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.UseNumber()
	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	records := make([]table.Record, 0, len(raw))
	for _, m := range raw {
		rec := make(table.Record, len(m))
		for k, v := range m {
			rec[k] = stringifyCell(v)
		}
		records = append(records, rec)
	}
	return records, nil
}

func stringifyCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		if x {
			return "true"
		}
		return "false"
	default:
		b, _ := json.Marshal(x)
		return string(b)
	}
}
