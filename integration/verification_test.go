//go:build basic

// Package integration contains integration tests for rawtruth.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
// Or use: make test-integration
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDoc serializes one fixture document into dir.
func writeDoc(t *testing.T, dir, name string, v any) {
	t.Helper()
	data, err := json.MarshalIndent(v, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

// writeValidFixture lays down a two-scan fixture the check command accepts.
func writeValidFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "centroids"), 0o755))

	writeDoc(t, dir, "metadata.json", map[string]any{
		"file_version": 66,
		"first_scan":   1,
		"last_scan":    2,
		"n_scans":      2,
	})
	writeDoc(t, dir, "scan_index.json", []map[string]any{
		{"scan_number": 1, "ms_level": 1, "polarity": "positive", "is_centroid": true},
		{"scan_number": 2, "ms_level": 2, "polarity": "negative", "is_centroid": true},
	})
	writeDoc(t, dir, "scan_events.json", []map[string]any{
		{"scan_number": 1, "ms_level": 1, "activation_type": "None"},
		{"scan_number": 2, "ms_level": 2, "activation_type": "CID"},
	})
	for scan := 1; scan <= 2; scan++ {
		writeDoc(t, dir, filepath.Join("centroids", fmt.Sprintf("scan_%d.json", scan)), map[string]any{
			"scan_number": scan,
			"n_peaks":     1,
			"mz":          []float64{400.1},
			"intensity":   []float64{1200.0},
		})
	}
	return dir
}

// TestCheckAcceptsValidFixture verifies the binary exits zero on a complete fixture.
func TestCheckAcceptsValidFixture(t *testing.T) {
	dir := writeValidFixture(t)

	cmd := exec.Command(getRawtruthBinary(), "check", dir)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	require.NoError(t, cmd.Run())
	assert.Contains(t, stdout.String(), "PASS")
}

// TestCheckRejectsBrokenFixture verifies the binary exits non-zero on violations.
func TestCheckRejectsBrokenFixture(t *testing.T) {
	dir := writeValidFixture(t)

	// Truncate the scan index so coverage breaks.
	writeDoc(t, dir, "scan_index.json", []map[string]any{
		{"scan_number": 1, "ms_level": 1, "polarity": "positive", "is_centroid": true},
	})

	cmd := exec.Command(getRawtruthBinary(), "check", dir, "--color", "no")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	err := cmd.Run()
	require.Error(t, err)

	exitErr, ok := err.(*exec.ExitError)
	require.True(t, ok)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, stdout.String(), "FAIL")
}

// TestCheckMissingDirectory verifies the error path for a bogus fixture path.
func TestCheckMissingDirectory(t *testing.T) {
	cmd := exec.Command(getRawtruthBinary(), "check", filepath.Join(t.TempDir(), "nope"))
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "fixture directory not found")
}

// TestInfoMissingRawFile verifies positional path validation in the CLI.
func TestInfoMissingRawFile(t *testing.T) {
	cmd := exec.Command(getRawtruthBinary(), "info", filepath.Join(t.TempDir(), "missing.raw"))
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "RAW file not found")
}

// TestVersionOutput sanity-checks the version command.
func TestVersionOutput(t *testing.T) {
	out, err := exec.Command(getRawtruthBinary(), "version").CombinedOutput()
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(out), "rawtruth CLI"))
}
