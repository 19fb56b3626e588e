// Package integration provides integration tests for the ll commands.
package integration

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
)

var (
	llBinary     string
	llBinaryOnce sync.Once
	llBinaryErr  error
)

// getLLBinary builds the ll binary once and returns its path.
func getLLBinary(t *testing.T) string {
	t.Helper()
	llBinaryOnce.Do(func() {
		// Get module root directory
		_, filename, _, ok := runtime.Caller(0)
		if !ok {
			llBinaryErr = os.ErrInvalid
			return
		}
		moduleRoot := filepath.Dir(filepath.Dir(filepath.Dir(filename)))

		// Build ll to a temp location
		tmpDir, err := os.MkdirTemp("", "ll-test-*")
		if err != nil {
			llBinaryErr = err
			return
		}
		llBinary = filepath.Join(tmpDir, "ll")

		cmd := exec.Command("go", "build", "-o", llBinary, "./cmd/ll")
		cmd.Dir = moduleRoot
		if output, err := cmd.CombinedOutput(); err != nil {
			llBinaryErr = &buildError{output: string(output), err: err}
			return
		}
	})
	if llBinaryErr != nil {
		t.Fatalf("failed to build ll: %v", llBinaryErr)
	}
	return llBinary
}

type buildError struct {
	output string
	err    error
}

func (e *buildError) Error() string {
	return e.err.Error() + ": " + e.output
}

// setupWorkspace creates a working directory with a seeded prospect CSV and
// an isolated config home.
func setupWorkspace(t *testing.T) (string, string) {
	t.Helper()
	tmpDir := t.TempDir()

	csvPath := filepath.Join(tmpDir, "prospects.csv")
	content := "Name,Profile URL,Headline,Company,Location,Score,Current Role,Found Date\n" +
		"Ada,https://example.com/ada,VP Engineering,Acme,\"San Francisco, USA\",22,YES - VP,2026-03-01\n" +
		"Grace,https://example.com/grace,Staff Engineer,Globex,\"Toronto, Canada\",17,NO,2026-01-15\n" +
		"Linus,https://example.com/linus,CTO,Initech,\"Berlin, Germany\",8,YES,2026-02-10\n"
	if err := os.WriteFile(csvPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if err := os.MkdirAll(filepath.Join(tmpDir, "config"), 0755); err != nil {
		t.Fatal(err)
	}

	return tmpDir, csvPath
}

// runLL executes the ll binary against an isolated config home.
func runLL(t *testing.T, workDir string, args ...string) (string, error) {
	t.Helper()
	ll := getLLBinary(t)
	cmd := exec.Command(ll, args...)
	cmd.Dir = workDir
	configHome := filepath.Join(workDir, "config")
	cmd.Env = append(os.Environ(),
		"XDG_CONFIG_HOME="+configHome,
		"LEADLINE_CSV=")
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func TestAppendFilterStats(t *testing.T) {
	workDir, csvPath := setupWorkspace(t)

	// Append one duplicate and one new profile.
	batch := filepath.Join(workDir, "batch.json")
	batchContent := `[
		{"Name": "Ada Again", "Profile URL": "https://example.com/ada", "Score": 30},
		{"Name": "Mira", "Profile URL": "https://example.com/mira", "Score": 19}
	]`
	if err := os.WriteFile(batch, []byte(batchContent), 0644); err != nil {
		t.Fatal(err)
	}

	output, err := runLL(t, workDir, "append", "--csv", csvPath, "--profiles", batch)
	if err != nil {
		t.Fatalf("append failed: %v\nOutput: %s", err, output)
	}
	var appendResult struct {
		Added             int `json:"added"`
		SkippedDuplicates int `json:"skipped_duplicates"`
		TotalProfiles     int `json:"total_profiles"`
	}
	if err := json.Unmarshal([]byte(output), &appendResult); err != nil {
		t.Fatalf("failed to parse append output: %v\nOutput: %s", err, output)
	}
	if appendResult.Added != 1 || appendResult.SkippedDuplicates != 1 || appendResult.TotalProfiles != 4 {
		t.Errorf("append result = %+v", appendResult)
	}

	// Filter: score >= 15, sorted descending.
	output, err = runLL(t, workDir, "filter", "--csv", csvPath, "--min-score", "15")
	if err != nil {
		t.Fatalf("filter failed: %v\nOutput: %s", err, output)
	}
	var rows []map[string]string
	if err := json.Unmarshal([]byte(output), &rows); err != nil {
		t.Fatalf("failed to parse filter output: %v\nOutput: %s", err, output)
	}
	if len(rows) != 3 {
		t.Fatalf("filter returned %d rows, want 3", len(rows))
	}
	if rows[0]["Name"] != "Ada" || rows[1]["Name"] != "Mira" {
		t.Errorf("filter order = %q, %q", rows[0]["Name"], rows[1]["Name"])
	}

	// Stats over the grown file.
	output, err = runLL(t, workDir, "stats", "--csv", csvPath)
	if err != nil {
		t.Fatalf("stats failed: %v\nOutput: %s", err, output)
	}
	var stats struct {
		TotalProfiles    int      `json:"total_profiles"`
		AvgScore         *float64 `json:"avg_score"`
		CurrentRoleCount int      `json:"current_role_count"`
	}
	if err := json.Unmarshal([]byte(output), &stats); err != nil {
		t.Fatalf("failed to parse stats output: %v\nOutput: %s", err, output)
	}
	if stats.TotalProfiles != 4 {
		t.Errorf("total_profiles = %d, want 4", stats.TotalProfiles)
	}
	if stats.AvgScore == nil || *stats.AvgScore != 16.5 {
		t.Errorf("avg_score = %v, want 16.5", stats.AvgScore)
	}
	if stats.CurrentRoleCount != 2 {
		t.Errorf("current_role_count = %d, want 2", stats.CurrentRoleCount)
	}
}

func TestExportSegment(t *testing.T) {
	workDir, csvPath := setupWorkspace(t)
	outPath := filepath.Join(workDir, "hot.csv")

	output, err := runLL(t, workDir, "export",
		"--csv", csvPath,
		"--out", outPath,
		"--min-score", "15",
		"--columns", "Name,Score")
	if err != nil {
		t.Fatalf("export failed: %v\nOutput: %s", err, output)
	}
	var result struct {
		ProfilesExported int      `json:"profiles_exported"`
		OutputPath       string   `json:"output_path"`
		ColumnsIncluded  []string `json:"columns_included"`
	}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("failed to parse export output: %v\nOutput: %s", err, output)
	}
	if result.ProfilesExported != 2 {
		t.Errorf("profiles_exported = %d, want 2", result.ProfilesExported)
	}
	if len(result.ColumnsIncluded) != 2 {
		t.Errorf("columns_included = %v", result.ColumnsIncluded)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !strings.HasPrefix(string(data), "Name,Score\n") {
		t.Errorf("export header = %q", strings.SplitN(string(data), "\n", 2)[0])
	}
}

func TestExportMissingSourceExitCode(t *testing.T) {
	workDir, _ := setupWorkspace(t)

	output, err := runLL(t, workDir, "export",
		"--csv", filepath.Join(workDir, "nope.csv"),
		"--out", filepath.Join(workDir, "out.csv"))
	if err == nil {
		t.Fatalf("export of missing source succeeded\nOutput: %s", output)
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("error = %v, want exit error", err)
	}
	if exitErr.ExitCode() != 4 {
		t.Errorf("exit code = %d, want 4", exitErr.ExitCode())
	}
}

func TestSearchAndDedupe(t *testing.T) {
	workDir, csvPath := setupWorkspace(t)

	output, err := runLL(t, workDir, "search", "engineer", "--csv", csvPath)
	if err != nil {
		t.Fatalf("search failed: %v\nOutput: %s", err, output)
	}
	var rows []map[string]string
	if err := json.Unmarshal([]byte(output), &rows); err != nil {
		t.Fatalf("failed to parse search output: %v\nOutput: %s", err, output)
	}
	if len(rows) != 2 {
		t.Fatalf("search returned %d rows, want 2", len(rows))
	}

	// Duplicate Ada's URL, then dedupe keeping the first occurrence.
	f, err := os.OpenFile(csvPath, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("Ada Copy,https://example.com/ada,,,,1,,\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	output, err = runLL(t, workDir, "dedupe", "--csv", csvPath)
	if err != nil {
		t.Fatalf("dedupe failed: %v\nOutput: %s", err, output)
	}
	var dedupeResult struct {
		OriginalCount     int `json:"original_count"`
		DuplicatesRemoved int `json:"duplicates_removed"`
		FinalCount        int `json:"final_count"`
	}
	if err := json.Unmarshal([]byte(output), &dedupeResult); err != nil {
		t.Fatalf("failed to parse dedupe output: %v\nOutput: %s", err, output)
	}
	if dedupeResult.OriginalCount != 4 || dedupeResult.DuplicatesRemoved != 1 || dedupeResult.FinalCount != 3 {
		t.Errorf("dedupe result = %+v", dedupeResult)
	}
}

func TestIndexedSearch(t *testing.T) {
	workDir, csvPath := setupWorkspace(t)

	output, err := runLL(t, workDir, "index", "--csv", csvPath)
	if err != nil {
		t.Fatalf("index failed: %v\nOutput: %s", err, output)
	}
	var status struct {
		Records int  `json:"records"`
		Rebuilt bool `json:"rebuilt"`
	}
	if err := json.Unmarshal([]byte(output), &status); err != nil {
		t.Fatalf("failed to parse index output: %v\nOutput: %s", err, output)
	}
	if !status.Rebuilt || status.Records != 3 {
		t.Errorf("index status = %+v", status)
	}

	output, err = runLL(t, workDir, "search", "engineering", "--csv", csvPath, "--indexed")
	if err != nil {
		t.Fatalf("indexed search failed: %v\nOutput: %s", err, output)
	}
	var rows []map[string]string
	if err := json.Unmarshal([]byte(output), &rows); err != nil {
		t.Fatalf("failed to parse search output: %v\nOutput: %s", err, output)
	}
	if len(rows) != 1 || rows[0]["Name"] != "Ada" {
		t.Errorf("indexed search rows = %v", rows)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	workDir, csvPath := setupWorkspace(t)

	output, err := runLL(t, workDir, "config", "set", "csv_path", csvPath)
	if err != nil {
		t.Fatalf("config set failed: %v\nOutput: %s", err, output)
	}

	// With csv_path configured, commands work without --csv.
	output, err = runLL(t, workDir, "stats")
	if err != nil {
		t.Fatalf("stats via config failed: %v\nOutput: %s", err, output)
	}
	var stats struct {
		TotalProfiles int `json:"total_profiles"`
	}
	if err := json.Unmarshal([]byte(output), &stats); err != nil {
		t.Fatalf("failed to parse stats output: %v\nOutput: %s", err, output)
	}
	if stats.TotalProfiles != 3 {
		t.Errorf("total_profiles = %d, want 3", stats.TotalProfiles)
	}
}

func TestNoCSVConfiguredExitCode(t *testing.T) {
	workDir, _ := setupWorkspace(t)

	output, err := runLL(t, workDir, "stats")
	if err == nil {
		t.Fatalf("stats without a CSV path succeeded\nOutput: %s", output)
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("error = %v, want exit error", err)
	}
	if exitErr.ExitCode() != 2 {
		t.Errorf("exit code = %d, want 2", exitErr.ExitCode())
	}
}
