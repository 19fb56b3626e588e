package main

import (
	"github.com/leadline-io/leadline/internal/prospect"
	"github.com/leadline-io/leadline/internal/query"
	"github.com/spf13/cobra"
)

var (
	filterCSV       string
	filterMinScore  int
	filterMaxScore  int
	filterLocations []string
	filterCompanies []string
	filterCurrent   bool
	filterAfter     string
	filterLimit     int
)

func init() {
	filterCmd.Flags().StringVar(&filterCSV, "csv", "", "Path to the prospect CSV file")
	filterCmd.Flags().IntVar(&filterMinScore, "min-score", 0, "Minimum score (inclusive)")
	filterCmd.Flags().IntVar(&filterMaxScore, "max-score", 0, "Maximum score (inclusive)")
	filterCmd.Flags().StringSliceVar(&filterLocations, "location", nil, "Location substring to match, case-insensitive (repeatable)")
	filterCmd.Flags().StringSliceVar(&filterCompanies, "company", nil, "Company substring to match, case-insensitive (repeatable)")
	filterCmd.Flags().BoolVar(&filterCurrent, "current-role", false, `Only rows whose Current Role cell starts with "YES"`)
	filterCmd.Flags().StringVar(&filterAfter, "found-after", "", "Keep rows found on or after this date (YYYY-MM-DD)")
	filterCmd.Flags().IntVar(&filterLimit, "limit", 0, "Maximum results to return (0 = all)")
	rootCmd.AddCommand(filterCmd)
}

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter profiles by multiple criteria",
	Long: `Filter profiles by score range, location, company, current-role flag,
and found date. All given criteria must match. Results are sorted by
score descending; rows without a numeric score sort last.

Examples:
  ll filter --csv prospects.csv --min-score 20
  ll filter --csv prospects.csv --location USA --location Canada --current-role
  ll filter --csv prospects.csv --found-after 2026-02-01 --limit 25`,
	RunE: runFilter,
}

func runFilter(cmd *cobra.Command, args []string) error {
	csvPath := resolveCSV(filterCSV)

	f := query.Filter{
		Locations:       filterLocations,
		Companies:       filterCompanies,
		CurrentRoleOnly: filterCurrent,
		FoundAfter:      filterAfter,
		Limit:           filterLimit,
	}
	if cmd.Flags().Changed("min-score") {
		f.MinScore = &filterMinScore
	}
	if cmd.Flags().Changed("max-score") {
		f.MaxScore = &filterMaxScore
	}

	rows, err := prospect.FilterProfiles(csvPath, f)
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
