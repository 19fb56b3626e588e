package prospect

import (
	"github.com/leadline-io/leadline/internal/stats"
)

// Stats computes summary statistics over the CSV at csvPath. A missing
// file is treated as an empty dataset.
func Stats(csvPath string) (*stats.Summary, error) {
	t, err := loadTable(csvPath)
	if err != nil {
		return nil, err
	}
	s := stats.Compute(t)
	return &s, nil
}
