// Package parquet provides data structures and functions for exporting run
// tracking and scan listing data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/mzkit/rawtruth/schema"
)

// ExportRun represents a single fixture export run with metadata.
// This struct maps to the rawtruth_export_runs database table.
type ExportRun struct {
	// RunID is the unique identifier for this export run
	RunID int64 `parquet:"run_id,snappy"`

	// RawFile is the path of the RAW file that was exported
	RawFile string `parquet:"raw_file,snappy"`

	// OutputDir is the fixture directory the run wrote to
	OutputDir string `parquet:"output_dir,snappy"`

	// FileVersion is the RAW file format revision
	FileVersion int32 `parquet:"file_version,snappy"`

	// FirstScan and LastScan are the inclusive scan bounds of the run
	FirstScan int32 `parquet:"first_scan,snappy"`
	LastScan  int32 `parquet:"last_scan,snappy"`

	// NScans is the number of scans indexed
	NScans int32 `parquet:"n_scans,snappy"`

	// NSelected is the number of representative scans exported
	NSelected int32 `parquet:"n_selected,snappy"`

	// StartTime is when the export began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the export completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`
}

// SelectedScan represents one representative scan recorded for an export run.
// This struct maps to the rawtruth_selected_scans database table.
type SelectedScan struct {
	// RunID references the parent export run
	RunID int64 `parquet:"run_id,snappy"`

	// ScanNumber is the scan the peak document was exported for
	ScanNumber int32 `parquet:"scan_number,snappy"`

	// MSLevel is the normalized MS level of the scan
	MSLevel int32 `parquet:"ms_level,snappy"`

	// IsCentroid reports the native peak representation of the scan
	IsCentroid bool `parquet:"is_centroid,snappy"`

	// NPeaks is the number of peaks in the exported document
	NPeaks int32 `parquet:"n_peaks,snappy"`
}

// ScanIndexRow represents one scan index entry in columnar form for the
// 'scans --output parquet' listing.
type ScanIndexRow struct {
	ScanNumber        int32   `parquet:"scan_number,snappy"`
	RT                float64 `parquet:"rt,snappy"`
	TIC               float64 `parquet:"tic,snappy"`
	BasePeakMz        float64 `parquet:"base_peak_mz,snappy"`
	BasePeakIntensity float64 `parquet:"base_peak_intensity,snappy"`
	MSLevel           int32   `parquet:"ms_level,snappy"`
	Polarity          string  `parquet:"polarity,snappy"`
	Analyzer          string  `parquet:"analyzer,snappy"`
	IsCentroid        bool    `parquet:"is_centroid,snappy"`
	FilterString      string  `parquet:"filter_string,snappy"`
}

// WriteExportRunsParquet writes a slice of ExportRun structs to a Parquet file.
func WriteExportRunsParquet(data []ExportRun, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteSelectedScansParquet writes a slice of SelectedScan structs to a Parquet file.
func WriteSelectedScansParquet(data []SelectedScan, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteScanIndexParquet writes a slice of ScanIndexRow structs to a Parquet file.
func WriteScanIndexParquet(data []ScanIndexRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet writes any record slice to a Parquet file, with the schema
// inferred from the record type's struct tags.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertExportRunRecords converts schema.ExportRunRecord to ExportRun for Parquet export.
func ConvertExportRunRecords(records []schema.ExportRunRecord) []ExportRun {
	result := make([]ExportRun, len(records))
	for i, record := range records {
		result[i] = ExportRun{
			RunID:       record.RunID,
			RawFile:     record.RawFile,
			OutputDir:   record.OutputDir,
			FileVersion: record.FileVersion,
			FirstScan:   record.FirstScan,
			LastScan:    record.LastScan,
			NScans:      record.NScans,
			NSelected:   record.NSelected,
			StartTime:   record.StartTime,
			EndTime:     record.EndTime,
		}
	}
	return result
}

// ConvertSelectedScanRecords converts schema.SelectedScanRecord to SelectedScan for Parquet export.
func ConvertSelectedScanRecords(records []schema.SelectedScanRecord) []SelectedScan {
	result := make([]SelectedScan, len(records))
	for i, record := range records {
		result[i] = SelectedScan{
			RunID:      record.RunID,
			ScanNumber: record.ScanNumber,
			MSLevel:    record.MSLevel,
			IsCentroid: record.IsCentroid,
			NPeaks:     record.NPeaks,
		}
	}
	return result
}

// ConvertScanIndexEntries converts schema.ScanIndexEntry to ScanIndexRow for Parquet export.
func ConvertScanIndexEntries(entries []schema.ScanIndexEntry) []ScanIndexRow {
	result := make([]ScanIndexRow, len(entries))
	for i, entry := range entries {
		result[i] = ScanIndexRow{
			ScanNumber:        int32(entry.ScanNumber),
			RT:                entry.RT,
			TIC:               entry.TIC,
			BasePeakMz:        entry.BasePeakMz,
			BasePeakIntensity: entry.BasePeakIntensity,
			MSLevel:           int32(entry.MSLevel),
			Polarity:          entry.Polarity,
			Analyzer:          entry.Analyzer,
			IsCentroid:        entry.IsCentroid,
			FilterString:      entry.FilterString,
		}
	}
	return result
}
