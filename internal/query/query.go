// Package query evaluates filter predicates over a prospect table.
//
// All predicates of a Filter are combined with logical AND. Results are
// returned sorted by score descending; rows whose score cell is empty or
// non-numeric sort last, keeping their relative order.
package query

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/leadline-io/leadline/internal/table"
)

// DefaultSearchColumns is the column subset free-text search scans when the
// caller does not name one.
var DefaultSearchColumns = []string{
	table.ColHeadline,
	table.ColCompany,
	table.ColMatchReason,
	table.ColCurrentRole,
}

// Filter is a conjunction of predicates. Zero-valued fields match all rows.
type Filter struct {
	MinScore *int // inclusive; excludes rows without a numeric score
	MaxScore *int // inclusive; excludes rows without a numeric score

	Locations []string // case-insensitive substring, any-of
	Companies []string // case-insensitive substring, any-of

	CurrentRoleOnly bool // keep rows whose Current Role cell starts with "YES"

	FoundAfter string // ISO date; keeps rows found on or after it

	Search        string   // free-text substring containment
	SearchColumns []string // columns scanned by Search; nil means DefaultSearchColumns
	CaseSensitive bool     // applies to Search only

	Limit int // 0 means no limit
}

// Apply evaluates the filter against the table and returns matching rows,
// sorted by score descending and truncated to the filter's limit.
func Apply(t *table.Table, f Filter) ([]table.Record, error) {
	if f.FoundAfter != "" {
		if _, err := time.Parse("2006-01-02", f.FoundAfter); err != nil {
			return nil, fmt.Errorf("invalid found-after date %q (want YYYY-MM-DD)", f.FoundAfter)
		}
	}

	searchCols := f.SearchColumns
	if len(searchCols) == 0 {
		searchCols = DefaultSearchColumns
	}
	// Unknown search columns are skipped rather than rejected: the default
	// subset must keep working against files that lack some of its columns.
	var presentSearchCols []string
	for _, c := range searchCols {
		if t.HasColumn(c) {
			presentSearchCols = append(presentSearchCols, c)
		}
	}

	matched := make([]table.Record, 0, len(t.Rows))
	for _, rec := range t.Rows {
		if !matches(rec, f, presentSearchCols) {
			continue
		}
		matched = append(matched, rec)
	}

	SortByScore(matched)
	if f.Limit > 0 && len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}
	return matched, nil
}

func matches(rec table.Record, f Filter, searchCols []string) bool {
	if f.MinScore != nil || f.MaxScore != nil {
		score, ok := rec.Score()
		if !ok {
			return false
		}
		if f.MinScore != nil && score < *f.MinScore {
			return false
		}
		if f.MaxScore != nil && score > *f.MaxScore {
			return false
		}
	}

	if len(f.Locations) > 0 && !containsAnyFold(rec[table.ColLocation], f.Locations) {
		return false
	}
	if len(f.Companies) > 0 && !containsAnyFold(rec[table.ColCompany], f.Companies) {
		return false
	}

	if f.CurrentRoleOnly && !strings.HasPrefix(rec[table.ColCurrentRole], "YES") {
		return false
	}

	if f.FoundAfter != "" {
		d := strings.TrimSpace(rec[table.ColFoundDate])
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return false
		}
		// Lexical comparison is date order for YYYY-MM-DD.
		if d < f.FoundAfter {
			return false
		}
	}

	if f.Search != "" {
		if !searchHit(rec, f.Search, searchCols, f.CaseSensitive) {
			return false
		}
	}

	return true
}

func searchHit(rec table.Record, term string, cols []string, caseSensitive bool) bool {
	if !caseSensitive {
		term = strings.ToLower(term)
	}
	for _, c := range cols {
		v := rec[c]
		if !caseSensitive {
			v = strings.ToLower(v)
		}
		if strings.Contains(v, term) {
			return true
		}
	}
	return false
}

// containsAnyFold reports whether value contains any of the candidates,
// ignoring case.
func containsAnyFold(value string, candidates []string) bool {
	lower := strings.ToLower(value)
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(c)) {
			return true
		}
	}
	return false
}

// SortByScore sorts rows by score descending. Rows without a numeric score
// sort after all scored rows; ties and unscored rows keep their relative
// order.
func SortByScore(rows []table.Record) {
	sort.SliceStable(rows, func(i, j int) bool {
		si, iok := rows[i].Score()
		sj, jok := rows[j].Score()
		if iok != jok {
			return iok
		}
		if !iok {
			return false
		}
		return si > sj
	})
}
