package main

import (
	"fmt"
	"sort"

	"github.com/leadline-io/leadline/internal/prospect"
	"github.com/spf13/cobra"
)

var statsCSV string

func init() {
	statsCmd.Flags().StringVar(&statsCSV, "csv", "", "Path to the prospect CSV file")
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summary statistics for the CSV",
	Long: `Compute summary statistics over the whole file: total profile count,
average score, score distribution, location and company-size breakdowns,
found-date range, and current-role count.

Examples:
  ll stats --csv prospects.csv
  ll stats --csv prospects.csv --human`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	csvPath := resolveCSV(statsCSV)

	s, err := prospect.Stats(csvPath)
	if err != nil {
		fail(err)
	}

	if !humanOutput {
		return outputJSON(s)
	}

	fmt.Printf("Total profiles: %d\n", s.TotalProfiles)
	if s.AvgScore != nil {
		fmt.Printf("Average score:  %.2f\n", *s.AvgScore)
	} else {
		fmt.Println("Average score:  n/a")
	}
	fmt.Printf("Current role:   %d\n", s.CurrentRoleCount)
	fmt.Println()
	fmt.Println("Score distribution:")
	fmt.Printf("  20+    %d\n", s.ScoreDistribution.High)
	fmt.Printf("  15-19  %d\n", s.ScoreDistribution.Upper)
	fmt.Printf("  10-14  %d\n", s.ScoreDistribution.Mid)
	fmt.Printf("  <10    %d\n", s.ScoreDistribution.Low)
	if s.FoundDateRange != nil {
		fmt.Println()
		fmt.Printf("Found dates:    %s to %s\n", s.FoundDateRange.Earliest, s.FoundDateRange.Latest)
	}
	if len(s.LocationBreakdown) > 0 {
		fmt.Println()
		fmt.Println("Locations:")
		for _, loc := range sortedKeys(s.LocationBreakdown) {
			fmt.Printf("  %-30s %d\n", loc, s.LocationBreakdown[loc])
		}
	}
	if len(s.CompanySizeBreakdown) > 0 {
		fmt.Println()
		fmt.Println("Company sizes:")
		for _, size := range sortedKeys(s.CompanySizeBreakdown) {
			fmt.Printf("  %-30s %d\n", size, s.CompanySizeBreakdown[size])
		}
	}
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
