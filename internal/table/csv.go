package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// UnknownColumnError reports a column name that is not part of a table's
// schema.
type UnknownColumnError struct {
	Column  string
	Columns []string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("column %q not in schema (columns: %s)", e.Column, strings.Join(e.Columns, ", "))
}

// Load reads a CSV file into a table, preserving the header's column order.
// A nonexistent file yields an empty table with no known columns.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Table{}, nil
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(all) == 0 {
		return &Table{}, nil
	}

	header := all[0]
	if len(header) > 0 {
		// Strip a UTF-8 BOM exported by spreadsheet tools.
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	t := New(header)
	t.Rows = make([]Record, 0, len(all)-1)
	for _, cells := range all[1:] {
		rec := make(Record, len(header))
		for i, c := range header {
			rec[c] = cells[i]
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}

// Save writes the table to path as CSV, replacing the destination only
// after the full serialization succeeds. A failed write leaves any prior
// file content untouched.
func Save(path string, t *Table) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*.csv")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	w := csv.NewWriter(tmp)
	if err := w.Write(t.Columns); err != nil {
		tmp.Close()
		return fmt.Errorf("writing header: %w", err)
	}
	cells := make([]string, len(t.Columns))
	for i, rec := range t.Rows {
		for j, c := range t.Columns {
			cells[j] = rec[c]
		}
		if err := w.Write(cells); err != nil {
			tmp.Close()
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flushing rows: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	success = true
	return nil
}
