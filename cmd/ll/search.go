package main

import (
	"github.com/leadline-io/leadline/internal/prospect"
	"github.com/leadline-io/leadline/internal/table"
	"github.com/spf13/cobra"
)

var (
	searchCSV     string
	searchColumns []string
	searchCase    bool
	searchLimit   int
	searchIndexed bool
)

func init() {
	searchCmd.Flags().StringVar(&searchCSV, "csv", "", "Path to the prospect CSV file")
	searchCmd.Flags().StringSliceVar(&searchColumns, "column", nil, "Columns to search (default Headline, Company, Match Reason, Current Role)")
	searchCmd.Flags().BoolVar(&searchCase, "case-sensitive", false, "Match case exactly")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum results to return (0 = all)")
	searchCmd.Flags().BoolVar(&searchIndexed, "indexed", false, "Use the full-text index instead of scanning")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Free-text search across profile columns",
	Long: `Search for a term as a substring across text columns. Unknown column
names are skipped. Results are sorted by score descending.

With --indexed the query runs against the SQLite full-text index, which
is rebuilt automatically when the CSV has changed. Indexed search matches
whole words rather than substrings and always covers the indexed text
columns.

Examples:
  ll search kubernetes --csv prospects.csv
  ll search "machine learning" --csv prospects.csv --column Headline --limit 10
  ll search fintech --csv prospects.csv --indexed`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	csvPath := resolveCSV(searchCSV)
	term := args[0]

	columns := searchColumns
	if len(columns) == 0 {
		columns = loadConfig().SearchColumns
	}

	var rows []table.Record
	var err error
	if searchIndexed {
		rows, err = prospect.SearchIndexed(csvPath, term, searchLimit)
	} else {
		rows, err = prospect.SearchProfiles(csvPath, term, columns, searchCase, searchLimit)
	}
	if err != nil {
		fail(err)
	}

	if humanOutput {
		printProfiles(rows)
	} else {
		outputJSON(rows)
	}
	return nil
}
