package prospect

import (
	"fmt"
	"strings"

	"github.com/leadline-io/leadline/internal/index"
	"github.com/leadline-io/leadline/internal/query"
	"github.com/leadline-io/leadline/internal/table"
)

// SearchProfiles finds rows containing term in the given columns (the
// query engine's default subset when nil), sorted by score descending.
// A missing backing file yields an empty result.
func SearchProfiles(csvPath, term string, columns []string, caseSensitive bool, limit int) ([]table.Record, error) {
	if term == "" {
		return nil, fmt.Errorf("%w: empty search term", ErrMalformedInput)
	}
	return FilterProfiles(csvPath, query.Filter{
		Search:        term,
		SearchColumns: columns,
		CaseSensitive: caseSensitive,
		Limit:         limit,
	})
}

// SearchIndexed answers a search through the CSV's sibling SQLite
// full-text index, rebuilding it first when the stored content hash is
// stale. Matching is FTS token/phrase matching rather than the scan
// search's substring containment. Results are sorted by score descending.
func SearchIndexed(csvPath, term string, limit int) ([]table.Record, error) {
	if term == "" {
		return nil, fmt.Errorf("%w: empty search term", ErrMalformedInput)
	}

	t, err := loadTable(csvPath)
	if err != nil {
		return nil, err
	}
	if len(t.Rows) == 0 {
		return []table.Record{}, nil
	}

	ix, err := index.Open(index.PathFor(csvPath))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	defer ix.Close()

	if err := syncIndex(ix, csvPath, t); err != nil {
		return nil, err
	}

	urls, err := ix.Search(term, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	matched := make(map[string]bool, len(urls))
	for _, u := range urls {
		matched[u] = true
	}
	rows := make([]table.Record, 0, len(urls))
	for _, rec := range t.Rows {
		if matched[strings.TrimSpace(rec[table.ColProfileURL])] {
			rows = append(rows, rec)
		}
	}
	query.SortByScore(rows)
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// syncIndex rebuilds the index when its stored hash no longer matches the
// CSV's content.
func syncIndex(ix *index.Index, csvPath string, t *table.Table) error {
	stale, err := ix.Stale(csvPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	if !stale {
		return nil
	}
	hash, err := index.FileHash(csvPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	if _, err := ix.Rebuild(t, hash); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	return nil
}
