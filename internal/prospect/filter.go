package prospect

import (
	"fmt"

	"github.com/leadline-io/leadline/internal/query"
	"github.com/leadline-io/leadline/internal/table"
)

// FilterProfiles returns rows matching the filter, sorted by score
// descending. A missing backing file yields an empty result, not an error.
func FilterProfiles(csvPath string, f query.Filter) ([]table.Record, error) {
	t, err := loadTable(csvPath)
	if err != nil {
		return nil, err
	}

	rows, err := query.Apply(t, f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if rows == nil {
		rows = []table.Record{}
	}
	return rows, nil
}
