package prospect

import (
	"errors"
	"fmt"

	"github.com/leadline-io/leadline/internal/dedupe"
	"github.com/leadline-io/leadline/internal/table"
)

// DedupeResult reports the outcome of Deduplicate.
type DedupeResult struct {
	OriginalCount     int `json:"original_count"`
	DuplicatesRemoved int `json:"duplicates_removed"`
	FinalCount        int `json:"final_count"`
}

// Deduplicate removes rows with a repeated key value from the CSV in
// place, keeping the occurrence selected by keep ("first" when empty).
// The target file must exist and the key column must be part of its
// schema. Applying the operation twice removes nothing the second time.
func Deduplicate(csvPath, keyColumn, keep string) (*DedupeResult, error) {
	if keyColumn == "" {
		keyColumn = DefaultDedupeColumn
	}
	policy, err := dedupe.ParseKeep(keep)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	if err := requireFile(csvPath); err != nil {
		return nil, err
	}
	t, err := loadTable(csvPath)
	if err != nil {
		return nil, err
	}

	deduped, removed, err := dedupe.Apply(t, keyColumn, policy)
	if err != nil {
		var unknown *table.UnknownColumnError
		if errors.As(err, &unknown) {
			return nil, fmt.Errorf("%w: dedupe key: %v", ErrSchemaMismatch, err)
		}
		return nil, err
	}

	if err := saveTable(csvPath, deduped); err != nil {
		return nil, err
	}

	return &DedupeResult{
		OriginalCount:     len(t.Rows),
		DuplicatesRemoved: removed,
		FinalCount:        len(deduped.Rows),
	}, nil
}
