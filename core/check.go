package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mzkit/rawtruth/schema"
)

// CheckFixtureDir verifies the structural invariants of an exported fixture
// directory: document presence, scan coverage with no gaps or duplicates,
// label domains, and peak-channel alignment. It never repairs anything;
// every violation becomes a CheckProblem on the result.
func CheckFixtureDir(fixtureDir string) (*schema.CheckResult, error) {
	info, err := os.Stat(fixtureDir)
	if err != nil {
		return nil, fmt.Errorf("fixture directory not found: %s", fixtureDir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("fixture path is not a directory: %s", fixtureDir)
	}

	result := &schema.CheckResult{FixtureDir: fixtureDir}

	meta := checkMetadata(fixtureDir, result)
	if meta != nil {
		result.NScans = meta.NScans
		checkScanIndex(fixtureDir, meta, result)
		checkScanEvents(fixtureDir, meta, result)
		checkPeakDocs(fixtureDir, meta, result)
	}

	result.Passed = len(result.Problems) == 0
	return result, nil
}

func checkMetadata(fixtureDir string, result *schema.CheckResult) *schema.RunMetadata {
	var meta schema.RunMetadata
	if !readFixtureDoc(fixtureDir, schema.MetadataDocument, &meta, result) {
		return nil
	}
	if want := meta.LastScan - meta.FirstScan + 1; meta.NScans != want {
		addProblem(result, schema.MetadataDocument, 0,
			fmt.Sprintf("n_scans is %d but scan bounds [%d, %d] imply %d",
				meta.NScans, meta.FirstScan, meta.LastScan, want))
		return nil
	}
	return &meta
}

func checkScanIndex(fixtureDir string, meta *schema.RunMetadata, result *schema.CheckResult) {
	var index []schema.ScanIndexEntry
	if !readFixtureDoc(fixtureDir, schema.ScanIndexDocument, &index, result) {
		return
	}
	if len(index) != meta.NScans {
		addProblem(result, schema.ScanIndexDocument, 0,
			fmt.Sprintf("expected %d entries, found %d", meta.NScans, len(index)))
		return
	}
	for i, entry := range index {
		if want := meta.FirstScan + i; entry.ScanNumber != want {
			addProblem(result, schema.ScanIndexDocument, entry.ScanNumber,
				fmt.Sprintf("entry %d has scan_number %d, expected %d", i, entry.ScanNumber, want))
		}
		if entry.Polarity != schema.PositivePolarity && entry.Polarity != schema.NegativePolarity {
			addProblem(result, schema.ScanIndexDocument, entry.ScanNumber,
				fmt.Sprintf("polarity %q is outside the binary domain", entry.Polarity))
		}
	}
}

func checkScanEvents(fixtureDir string, meta *schema.RunMetadata, result *schema.CheckResult) {
	var events []schema.ScanEvent
	if !readFixtureDoc(fixtureDir, schema.ScanEventsDocument, &events, result) {
		return
	}
	if len(events) != meta.NScans {
		addProblem(result, schema.ScanEventsDocument, 0,
			fmt.Sprintf("expected %d entries, found %d", meta.NScans, len(events)))
		return
	}
	for i, event := range events {
		if want := meta.FirstScan + i; event.ScanNumber != want {
			addProblem(result, schema.ScanEventsDocument, event.ScanNumber,
				fmt.Sprintf("entry %d has scan_number %d, expected %d", i, event.ScanNumber, want))
		}
	}
}

func checkPeakDocs(fixtureDir string, meta *schema.RunMetadata, result *schema.CheckResult) {
	peaksDir := filepath.Join(fixtureDir, schema.PeaksSubdir)
	entries, err := os.ReadDir(peaksDir)
	if err != nil {
		addProblem(result, schema.PeaksSubdir, 0, "peak subdirectory is missing")
		return
	}

	seen := make(map[int]bool)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		doc := filepath.Join(schema.PeaksSubdir, entry.Name())
		var fileScan int
		if _, err := fmt.Sscanf(entry.Name(), "scan_%d.json", &fileScan); err != nil {
			addProblem(result, doc, 0, "file name does not match scan_<N>.json")
			continue
		}

		var arr schema.PeakArray
		if !readFixtureDoc(fixtureDir, doc, &arr, result) {
			continue
		}
		result.NPeakDocs++
		seen[arr.ScanNumber] = true

		if arr.ScanNumber != fileScan {
			addProblem(result, doc, arr.ScanNumber,
				fmt.Sprintf("scan_number %d does not match file name", arr.ScanNumber))
		}
		if arr.ScanNumber < meta.FirstScan || arr.ScanNumber > meta.LastScan {
			addProblem(result, doc, arr.ScanNumber,
				fmt.Sprintf("scan_number %d is outside [%d, %d]", arr.ScanNumber, meta.FirstScan, meta.LastScan))
		}
		if len(arr.Mz) != len(arr.Intensity) {
			addProblem(result, doc, arr.ScanNumber,
				fmt.Sprintf("mz has %d values but intensity has %d", len(arr.Mz), len(arr.Intensity)))
		}
		if arr.NPeaks != len(arr.Mz) {
			addProblem(result, doc, arr.ScanNumber,
				fmt.Sprintf("n_peaks is %d but mz has %d values", arr.NPeaks, len(arr.Mz)))
		}
	}

	// First and last scans are always selected, so their documents must exist.
	for _, scan := range []int{meta.FirstScan, meta.LastScan} {
		if !seen[scan] {
			addProblem(result, schema.PeaksSubdir, scan,
				fmt.Sprintf("no peak document for boundary scan %d", scan))
		}
	}
}

func readFixtureDoc(fixtureDir, doc string, target any, result *schema.CheckResult) bool {
	data, err := os.ReadFile(filepath.Join(fixtureDir, doc))
	if err != nil {
		addProblem(result, doc, 0, "document is missing")
		return false
	}
	if err := json.Unmarshal(data, target); err != nil {
		addProblem(result, doc, 0, fmt.Sprintf("document is not valid JSON: %v", err))
		return false
	}
	return true
}

func addProblem(result *schema.CheckResult, doc string, scan int, msg string) {
	result.Problems = append(result.Problems, schema.CheckProblem{
		Document:   doc,
		ScanNumber: scan,
		Message:    msg,
	})
}
