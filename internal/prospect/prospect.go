// Package prospect exposes the six operations over a prospect CSV file.
//
// Every operation is self-contained: it loads the backing file, computes,
// and (if mutating) writes the whole file back atomically. No state is
// held between calls, so external edits to the file are picked up by the
// next operation. The file is treated as exclusively owned while an
// operation runs; callers invoking concurrently against the same path must
// serialize externally.
package prospect

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"github.com/leadline-io/leadline/internal/table"
)

// DefaultDedupeColumn is the key column used when the caller names none.
const DefaultDedupeColumn = table.ColProfileURL

// loadTable reads the backing file, classifying failures: a CSV parse
// error is malformed input, anything else filesystem-level is an I/O
// failure. A missing file loads as an empty table.
func loadTable(path string) (*table.Table, error) {
	t, err := table.Load(path)
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	return t, nil
}

// saveTable writes the table back, mapping failures to the I/O error kind.
func saveTable(path string, t *table.Table) error {
	if err := table.Save(path, t); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	return nil
}

// requireFile maps a missing source file to the not-found error kind for
// operations where presence is part of the contract.
func requireFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("%w: stat %s: %v", ErrIOFailure, path, err)
	}
	return nil
}
