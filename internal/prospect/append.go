package prospect

import (
	"fmt"

	"github.com/leadline-io/leadline/internal/dedupe"
	"github.com/leadline-io/leadline/internal/table"
)

// AppendResult reports the outcome of AppendProfiles.
type AppendResult struct {
	Added             int `json:"added"`
	SkippedDuplicates int `json:"skipped_duplicates"`
	TotalProfiles     int `json:"total_profiles"`
}

// AppendProfiles merges new profiles into the CSV at csvPath, deduplicating
// on dedupeColumn (DefaultDedupeColumn when empty). Existing rows always
// win over incoming duplicates and are never updated; duplicates within the
// incoming batch resolve to the first occurrence. A missing file is created
// with a schema derived from the batch.
func AppendProfiles(csvPath string, profiles []table.Record, dedupeColumn string) (*AppendResult, error) {
	if dedupeColumn == "" {
		dedupeColumn = DefaultDedupeColumn
	}

	t, err := loadTable(csvPath)
	if err != nil {
		return nil, err
	}

	// Column order is fixed by whichever file was read; a fresh file gets
	// its schema from the incoming batch.
	if len(t.Columns) == 0 {
		t.Columns = table.ColumnsFor(profiles)
	}

	existing := len(t.Rows)
	for i, p := range profiles {
		rec, err := t.Reconcile(p)
		if err != nil {
			return nil, fmt.Errorf("%w: profile %d: %v", ErrMalformedInput, i, err)
		}
		t.Rows = append(t.Rows, rec)
	}

	deduped, _, err := dedupe.Apply(t, dedupeColumn, dedupe.KeepFirst)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}

	if err := saveTable(csvPath, deduped); err != nil {
		return nil, err
	}

	added := len(deduped.Rows) - existing
	return &AppendResult{
		Added:             added,
		SkippedDuplicates: len(profiles) - added,
		TotalProfiles:     len(deduped.Rows),
	}, nil
}
