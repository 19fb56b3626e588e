// Package table implements the in-memory prospect table and its CSV
// persistence. The CSV file is the sole source of truth: callers load it,
// compute, and (for mutating operations) write the whole table back
// atomically.
package table

import (
	"sort"
	"strconv"
	"strings"
)

// Well-known column names. The schema itself is discovered from whatever
// file exists; these constants only name the columns that filtering and
// aggregation read.
const (
	ColName        = "Name"
	ColProfileURL  = "Profile URL"
	ColHeadline    = "Headline"
	ColCompany     = "Company"
	ColCompanySize = "Company Size"
	ColLocation    = "Location"
	ColScore       = "Score"
	ColMatchReason = "Match Reason"
	ColCurrentRole = "Current Role"
	ColFoundDate   = "Found Date"
	ColSource      = "Source"
)

// Canonical is the preferred column ordering for freshly created files.
var Canonical = []string{
	ColName,
	ColProfileURL,
	ColHeadline,
	ColCompany,
	ColCompanySize,
	ColLocation,
	ColScore,
	ColMatchReason,
	ColCurrentRole,
	ColFoundDate,
	ColSource,
}

// Record is a single prospect row, keyed by column name. All cell values
// are strings; typed interpretation (score, date) happens at read time.
type Record map[string]string

// Score parses the record's score cell. The second return is false for an
// empty or non-numeric value.
func (r Record) Score() (int, bool) {
	s := strings.TrimSpace(r[ColScore])
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Clone returns a copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is an ordered sequence of records sharing one column order.
type Table struct {
	Columns []string
	Rows    []Record
}

// New returns an empty table with the given column order.
func New(columns []string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// HasColumn reports whether name is part of the table's schema.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Project returns a copy of the table restricted to the requested columns,
// in the requested order. Every requested column must exist in the schema.
func (t *Table) Project(columns []string) (*Table, error) {
	for _, c := range columns {
		if !t.HasColumn(c) {
			return nil, &UnknownColumnError{Column: c, Columns: t.Columns}
		}
	}
	out := New(columns)
	out.Rows = make([]Record, 0, len(t.Rows))
	for _, rec := range t.Rows {
		row := make(Record, len(columns))
		for _, c := range columns {
			row[c] = rec[c]
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

// Reconcile fits an incoming record to the table's schema: missing columns
// become empty cells, and a key the schema does not know is rejected so it
// can never shift other fields.
func (t *Table) Reconcile(rec Record) (Record, error) {
	for k := range rec {
		if !t.HasColumn(k) {
			return nil, &UnknownColumnError{Column: k, Columns: t.Columns}
		}
	}
	out := make(Record, len(t.Columns))
	for _, c := range t.Columns {
		out[c] = rec[c]
	}
	return out, nil
}

// ColumnsFor derives a column order for a fresh table from incoming
// records: canonical columns first (in canonical order), then any extra
// keys sorted alphabetically. Record iteration order is not deterministic
// in Go, so this replaces "order of first insertion" with a stable rule.
func ColumnsFor(records []Record) []string {
	seen := make(map[string]bool)
	for _, rec := range records {
		for k := range rec {
			seen[k] = true
		}
	}

	var cols []string
	for _, c := range Canonical {
		if seen[c] {
			cols = append(cols, c)
			delete(seen, c)
		}
	}
	var extra []string
	for k := range seen {
		extra = append(extra, k)
	}
	sort.Strings(extra)
	return append(cols, extra...)
}
