// Package dedupe removes rows whose dedupe-key value repeats, keeping a
// configurable occurrence.
package dedupe

import (
	"fmt"
	"strings"

	"github.com/leadline-io/leadline/internal/table"
)

// Keep selects which of several rows sharing a key value survives.
type Keep string

const (
	KeepFirst Keep = "first"
	KeepLast  Keep = "last"
)

// ParseKeep validates a keep policy string.
func ParseKeep(s string) (Keep, error) {
	switch Keep(s) {
	case KeepFirst, KeepLast:
		return Keep(s), nil
	case "":
		return KeepFirst, nil
	}
	return "", fmt.Errorf("invalid keep policy %q (valid: first, last)", s)
}

// Apply returns a copy of t with duplicate key values removed, along with
// the number of rows dropped. Key values are compared after trimming
// surrounding whitespace, and the trimmed form is what survives in the
// output. Rows with an empty key are never treated as duplicates of each
// other. Relative order among surviving rows is preserved.
func Apply(t *table.Table, keyColumn string, keep Keep) (*table.Table, int, error) {
	if !t.HasColumn(keyColumn) {
		return nil, 0, &table.UnknownColumnError{Column: keyColumn, Columns: t.Columns}
	}

	keys := make([]string, len(t.Rows))
	survivor := make(map[string]int, len(t.Rows))
	for i, rec := range t.Rows {
		k := strings.TrimSpace(rec[keyColumn])
		keys[i] = k
		if k == "" {
			continue
		}
		if keep == KeepFirst {
			if _, seen := survivor[k]; !seen {
				survivor[k] = i
			}
		} else {
			survivor[k] = i
		}
	}

	out := table.New(t.Columns)
	out.Rows = make([]table.Record, 0, len(t.Rows))
	removed := 0
	for i, rec := range t.Rows {
		if keys[i] != "" && survivor[keys[i]] != i {
			removed++
			continue
		}
		kept := rec.Clone()
		kept[keyColumn] = keys[i]
		out.Rows = append(out.Rows, kept)
	}
	return out, removed, nil
}
