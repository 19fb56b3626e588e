// Package stats computes summary statistics over a prospect table.
package stats

import (
	"math"
	"strings"
	"time"

	"github.com/leadline-io/leadline/internal/table"
)

// Distribution is the four-bucket score histogram. Only rows with a valid
// numeric score are counted.
type Distribution struct {
	High  int `json:"20+"`
	Upper int `json:"15-19"`
	Mid   int `json:"10-14"`
	Low   int `json:"<10"`
}

// Total returns the sum of all buckets.
func (d Distribution) Total() int {
	return d.High + d.Upper + d.Mid + d.Low
}

// DateRange holds the earliest and latest parseable found dates.
type DateRange struct {
	Earliest string `json:"earliest"`
	Latest   string `json:"latest"`
}

// Summary is the aggregate view of a table. Breakdown maps count only rows
// with a non-empty value for the field; AvgScore is nil when no row has a
// valid numeric score, and FoundDateRange is nil when no row carries a
// parseable date.
type Summary struct {
	TotalProfiles        int            `json:"total_profiles"`
	AvgScore             *float64       `json:"avg_score"`
	ScoreDistribution    Distribution   `json:"score_distribution"`
	LocationBreakdown    map[string]int `json:"location_breakdown"`
	CompanySizeBreakdown map[string]int `json:"company_size_breakdown"`
	FoundDateRange       *DateRange     `json:"found_date_range"`
	CurrentRoleCount     int            `json:"current_role_count"`
}

// Compute aggregates the table into a Summary.
func Compute(t *table.Table) Summary {
	s := Summary{
		TotalProfiles:        len(t.Rows),
		LocationBreakdown:    make(map[string]int),
		CompanySizeBreakdown: make(map[string]int),
	}

	scoreSum := 0
	scoreCount := 0
	for _, rec := range t.Rows {
		if score, ok := rec.Score(); ok {
			scoreSum += score
			scoreCount++
			switch {
			case score >= 20:
				s.ScoreDistribution.High++
			case score >= 15:
				s.ScoreDistribution.Upper++
			case score >= 10:
				s.ScoreDistribution.Mid++
			default:
				s.ScoreDistribution.Low++
			}
		}

		if loc := rec[table.ColLocation]; loc != "" {
			s.LocationBreakdown[loc]++
		}
		if size := rec[table.ColCompanySize]; size != "" {
			s.CompanySizeBreakdown[size]++
		}

		if d := strings.TrimSpace(rec[table.ColFoundDate]); d != "" {
			if _, err := time.Parse("2006-01-02", d); err == nil {
				if s.FoundDateRange == nil {
					s.FoundDateRange = &DateRange{Earliest: d, Latest: d}
				} else {
					// Lexical comparison is date order for YYYY-MM-DD.
					if d < s.FoundDateRange.Earliest {
						s.FoundDateRange.Earliest = d
					}
					if d > s.FoundDateRange.Latest {
						s.FoundDateRange.Latest = d
					}
				}
			}
		}

		if strings.HasPrefix(rec[table.ColCurrentRole], "YES") {
			s.CurrentRoleCount++
		}
	}

	if scoreCount > 0 {
		avg := math.Round(float64(scoreSum)/float64(scoreCount)*100) / 100
		s.AvgScore = &avg
	}

	return s
}
