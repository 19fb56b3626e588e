package main

import (
	"fmt"

	"github.com/leadline-io/leadline/internal/prospect"
	"github.com/leadline-io/leadline/internal/query"
	"github.com/spf13/cobra"
)

var (
	exportCSV       string
	exportOut       string
	exportColumns   []string
	exportMinScore  int
	exportMaxScore  int
	exportLocations []string
	exportCompanies []string
	exportCurrent   bool
	exportAfter     string
)

func init() {
	exportCmd.Flags().StringVar(&exportCSV, "csv", "", "Path to the source prospect CSV file")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Path to write the exported CSV to")
	exportCmd.Flags().StringSliceVar(&exportColumns, "columns", nil, "Columns to include (default all)")
	exportCmd.Flags().IntVar(&exportMinScore, "min-score", 0, "Minimum score (inclusive)")
	exportCmd.Flags().IntVar(&exportMaxScore, "max-score", 0, "Maximum score (inclusive)")
	exportCmd.Flags().StringSliceVar(&exportLocations, "location", nil, "Location substring to match, case-insensitive (repeatable)")
	exportCmd.Flags().StringSliceVar(&exportCompanies, "company", nil, "Company substring to match, case-insensitive (repeatable)")
	exportCmd.Flags().BoolVar(&exportCurrent, "current-role", false, `Only rows whose Current Role cell starts with "YES"`)
	exportCmd.Flags().StringVar(&exportAfter, "found-after", "", "Keep rows found on or after this date (YYYY-MM-DD)")
	exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a filtered segment to a new CSV",
	Long: `Export rows matching the given filter criteria to a new CSV file,
optionally restricted to a subset of columns. The source file must exist;
the output is written atomically and a header-only file is produced when
nothing matches.

Examples:
  ll export --csv prospects.csv --out hot.csv --min-score 20
  ll export --csv prospects.csv --out outreach.csv --columns "Name,Profile URL,Company"`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	csvPath := resolveCSV(exportCSV)

	f := query.Filter{
		Locations:       exportLocations,
		Companies:       exportCompanies,
		CurrentRoleOnly: exportCurrent,
		FoundAfter:      exportAfter,
	}
	if cmd.Flags().Changed("min-score") {
		f.MinScore = &exportMinScore
	}
	if cmd.Flags().Changed("max-score") {
		f.MaxScore = &exportMaxScore
	}

	res, err := prospect.ExportSegment(csvPath, exportOut, f, exportColumns)
	if err != nil {
		fail(err)
	}

	if humanOutput {
		fmt.Printf("Exported %d profiles to %s (%d columns)\n",
			res.ProfilesExported, res.OutputPath, len(res.ColumnsIncluded))
	} else {
		outputJSON(res)
	}
	return nil
}
