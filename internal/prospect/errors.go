package prospect

import "errors"

// Error kinds surfaced by the operations. Callers classify failures with
// errors.Is; the wrapped message carries the offending path, column, or
// row.
var (
	// ErrNotFound reports a source file that must exist but does not.
	ErrNotFound = errors.New("file not found")

	// ErrSchemaMismatch reports a named column missing from the table's
	// schema (dedupe key, requested export column).
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrMalformedInput reports a record or argument that cannot be
	// reconciled or parsed (unknown column in an append batch, bad date,
	// bad keep policy).
	ErrMalformedInput = errors.New("malformed input")

	// ErrIOFailure reports a filesystem-level read or write failure.
	ErrIOFailure = errors.New("i/o failure")
)
