package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/leadline-io/leadline/internal/prospect"
	"github.com/leadline-io/leadline/internal/table"
)

// SummaryHeadlineLen is the truncation length for headlines in human
// output.
const SummaryHeadlineLen = 70

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// exitWithError outputs an error in the appropriate format (human or JSON)
// and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// exitCodeFor maps core error kinds to the exit-code contract.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, prospect.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, prospect.ErrSchemaMismatch), errors.Is(err, prospect.ErrMalformedInput):
		return ExitDataError
	default:
		return ExitError
	}
}

// fail reports a core error and exits with its mapped code.
func fail(err error) {
	exitWithError(exitCodeFor(err), "%v", err)
}

// printProfiles prints rows in human-readable format.
func printProfiles(rows []table.Record) {
	if len(rows) == 0 {
		fmt.Println("No profiles found")
		return
	}
	fmt.Printf("Found %d profiles:\n\n", len(rows))
	for i, rec := range rows {
		score := rec[table.ColScore]
		if score == "" {
			score = "-"
		}
		fmt.Printf("[%d] %s (score %s)\n", i+1, rec[table.ColName], score)
		if h := rec[table.ColHeadline]; h != "" {
			fmt.Printf("    %s\n", truncateString(h, SummaryHeadlineLen))
		}
		if c := rec[table.ColCompany]; c != "" {
			if loc := rec[table.ColLocation]; loc != "" {
				fmt.Printf("    %s (%s)\n", c, loc)
			} else {
				fmt.Printf("    %s\n", c)
			}
		}
		fmt.Println()
	}
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
