package prospect

import (
	"fmt"
	"path/filepath"

	"github.com/leadline-io/leadline/internal/query"
	"github.com/leadline-io/leadline/internal/table"
)

// ExportResult reports the outcome of ExportSegment.
type ExportResult struct {
	ProfilesExported int      `json:"profiles_exported"`
	OutputPath       string   `json:"output_path"`
	ColumnsIncluded  []string `json:"columns_included"`
}

// ExportSegment filters the source CSV and writes the matching rows to a
// brand-new file at outPath, overwriting any prior content there. The
// source is never mutated and must exist. When columns is non-empty the
// output is projected to exactly those columns, in that order; a requested
// column absent from the source schema is an error. The output file is
// written (header included) even when no rows match.
func ExportSegment(srcPath, outPath string, f query.Filter, columns []string) (*ExportResult, error) {
	if err := requireFile(srcPath); err != nil {
		return nil, err
	}

	t, err := loadTable(srcPath)
	if err != nil {
		return nil, err
	}

	rows, err := query.Apply(t, f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	segment := table.New(t.Columns)
	segment.Rows = rows
	if len(columns) > 0 {
		segment, err = segment.Project(columns)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
		}
	}

	if err := saveTable(outPath, segment); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(outPath)
	if err != nil {
		abs = outPath
	}
	return &ExportResult{
		ProfilesExported: len(segment.Rows),
		OutputPath:       abs,
		ColumnsIncluded:  segment.Columns,
	}, nil
}
