package prospect

import (
	"fmt"

	"github.com/leadline-io/leadline/internal/index"
)

// IndexStatus reports the state of a CSV's search index after SyncIndex.
type IndexStatus struct {
	Path    string `json:"path"`
	Records int    `json:"records"`
	Rebuilt bool   `json:"rebuilt"`
	Hash    string `json:"hash"`
}

// SyncIndex brings the CSV's sibling search index up to date, rebuilding
// it only when the stored content hash is stale. The CSV must exist.
func SyncIndex(csvPath string) (*IndexStatus, error) {
	if err := requireFile(csvPath); err != nil {
		return nil, err
	}
	t, err := loadTable(csvPath)
	if err != nil {
		return nil, err
	}

	ix, err := index.Open(index.PathFor(csvPath))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	defer ix.Close()

	stale, err := ix.Stale(csvPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	if stale {
		if err := syncIndex(ix, csvPath, t); err != nil {
			return nil, err
		}
	}

	count, err := ix.Count()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	hash, err := ix.StoredHash()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	return &IndexStatus{
		Path:    ix.Path(),
		Records: count,
		Rebuilt: stale,
		Hash:    hash,
	}, nil
}
