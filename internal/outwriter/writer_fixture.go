package outwriter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mzkit/rawtruth/schema"
)

// EnsureFixtureDirs creates the fixture output directory and its peak
// subdirectory if they do not exist yet.
func EnsureFixtureDirs(outputDir string) error {
	if err := os.MkdirAll(filepath.Join(outputDir, schema.PeaksSubdir), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// PeakDocName returns the fixture document name for one selected scan,
// relative to the fixture directory.
func PeakDocName(scan int) string {
	return filepath.Join(schema.PeaksSubdir, fmt.Sprintf("scan_%d.json", scan))
}

// WriteMetadata persists the run metadata fixture document.
func WriteMetadata(outputDir string, meta *schema.RunMetadata) error {
	return writeFixtureDoc(outputDir, schema.MetadataDocument, meta)
}

// WriteScanIndex persists the scan index fixture document.
func WriteScanIndex(outputDir string, index []schema.ScanIndexEntry) error {
	return writeFixtureDoc(outputDir, schema.ScanIndexDocument, index)
}

// WriteScanEvents persists the scan events fixture document.
func WriteScanEvents(outputDir string, events []schema.ScanEvent) error {
	return writeFixtureDoc(outputDir, schema.ScanEventsDocument, events)
}

// WritePeakArray persists one peak-array fixture document under the peak
// subdirectory, named after its scan number.
func WritePeakArray(outputDir string, arr *schema.PeakArray) error {
	return writeFixtureDoc(outputDir, PeakDocName(arr.ScanNumber), arr)
}

// writeFixtureDoc serializes one fixture document as indented JSON.
func writeFixtureDoc(outputDir, doc string, data any) error {
	path := filepath.Join(outputDir, doc)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", doc, err)
	}
	defer func() { _ = file.Close() }()

	if err := writeJSON(file, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", doc, err)
	}
	return nil
}
