// Package index maintains an optional SQLite full-text search index for a
// prospect CSV file. The CSV stays the sole source of truth: the index is
// a disposable cache stored next to it and rebuilt whenever the stored
// content hash of the CSV goes stale.
package index

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/leadline-io/leadline/internal/table"
	_ "modernc.org/sqlite"
)

// textColumns are the CSV columns mirrored into the FTS table, paired with
// their SQL column names.
var textColumns = []struct {
	CSV string
	SQL string
}{
	{table.ColName, "name"},
	{table.ColHeadline, "headline"},
	{table.ColCompany, "company"},
	{table.ColMatchReason, "match_reason"},
	{table.ColCurrentRole, "current_role"},
}

// Index wraps the SQLite database backing one CSV file's search index.
type Index struct {
	db   *sql.DB
	path string
}

// PathFor returns the index path for a CSV file: a sibling file with the
// extension swapped for .db.
func PathFor(csvPath string) string {
	if i := strings.LastIndex(csvPath, "."); i > strings.LastIndexByte(csvPath, '/') {
		return csvPath[:i] + ".db"
	}
	return csvPath + ".db"
}

// Open opens or creates the index database at path.
func Open(path string) (*Index, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating index schema: %w", err)
	}
	return &Index{db: db, path: path}, nil
}

// Close closes the database connection.
func (ix *Index) Close() error {
	return ix.db.Close()
}

// Path returns the location of the index database.
func (ix *Index) Path() string {
	return ix.path
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE VIRTUAL TABLE IF NOT EXISTS profiles_fts USING fts5(
			url,
			name,
			headline,
			company,
			match_reason,
			current_role
		);

		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`
	_, err := db.Exec(schema)
	return err
}

// StoredHash returns the CSV content hash recorded at the last rebuild, or
// empty when the index has never been built.
func (ix *Index) StoredHash() (string, error) {
	var hash string
	err := ix.db.QueryRow(`SELECT value FROM meta WHERE key = 'csv_hash'`).Scan(&hash)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading stored hash: %w", err)
	}
	return hash, nil
}

// Stale reports whether the index no longer matches the CSV's content.
func (ix *Index) Stale(csvPath string) (bool, error) {
	current, err := FileHash(csvPath)
	if err != nil {
		return true, err
	}
	stored, err := ix.StoredHash()
	if err != nil {
		return true, err
	}
	return current != stored, nil
}

// Rebuild clears the index and repopulates it from the table, recording
// hash as the indexed content version. Returns the number of rows indexed.
func (ix *Index) Rebuild(t *table.Table, hash string) (int, error) {
	tx, err := ix.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("starting rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM profiles_fts`); err != nil {
		return 0, fmt.Errorf("clearing index: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO profiles_fts (url, name, headline, company, match_reason, current_role)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range t.Rows {
		args := make([]any, 0, len(textColumns)+1)
		args = append(args, strings.TrimSpace(rec[table.ColProfileURL]))
		for _, c := range textColumns {
			args = append(args, rec[c.CSV])
		}
		if _, err := stmt.Exec(args...); err != nil {
			return 0, fmt.Errorf("indexing row %d: %w", i+1, err)
		}
	}

	if _, err := tx.Exec(
		`INSERT INTO meta (key, value) VALUES ('csv_hash', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, hash); err != nil {
		return 0, fmt.Errorf("recording hash: %w", err)
	}
	if _, err := tx.Exec(
		`INSERT INTO meta (key, value) VALUES ('indexed_at', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		time.Now().UTC().Format(time.RFC3339)); err != nil {
		return 0, fmt.Errorf("recording index time: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing rebuild: %w", err)
	}
	return len(t.Rows), nil
}

// Count returns the number of indexed rows.
func (ix *Index) Count() (int, error) {
	var n int
	if err := ix.db.QueryRow(`SELECT count(*) FROM profiles_fts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting indexed rows: %w", err)
	}
	return n, nil
}

// Search runs a full-text match over the indexed columns and returns the
// profile URLs of matching rows. The term is treated as a literal phrase.
func (ix *Index) Search(term string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = -1
	}
	// Quote the term so FTS5 treats it as a phrase, not query syntax.
	phrase := `"` + strings.ReplaceAll(term, `"`, `""`) + `"`

	rows, err := ix.db.Query(
		`SELECT url FROM profiles_fts WHERE profiles_fts MATCH ? LIMIT ?`, phrase, limit)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}
	return urls, rows.Err()
}
