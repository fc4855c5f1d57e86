package iocache

import (
	"errors"
	"fmt"

	"github.com/mzkit/rawtruth/internal/parquet"
)

// ExecuteRunsExport exports the recorded run tracking data to Parquet files.
func ExecuteRunsExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := Manager.GetRunStore()
	if store == nil {
		return errors.New("run tracking is not initialized")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get run store status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run tracking data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total export runs: %d\n", status.TotalRuns)
	fmt.Printf("Total recorded scans: %d\n", status.TableSizes[selectedScansTable])

	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve export runs: %w", err)
	}

	scans, err := store.GetAllSelectedScans()
	if err != nil {
		return fmt.Errorf("failed to retrieve selected scans: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertExportRunRecords(runs)
	parquetScans := parquet.ConvertSelectedScanRecords(scans)

	runsFile := outputFile + ".export_runs.parquet"
	if err := parquet.WriteExportRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write export runs: %w", err)
	}
	fmt.Printf("Exported %d export runs to: %s\n", len(parquetRuns), runsFile)

	scansFile := outputFile + ".selected_scans.parquet"
	if err := parquet.WriteSelectedScansParquet(parquetScans, scansFile); err != nil {
		return fmt.Errorf("failed to write selected scans: %w", err)
	}
	fmt.Printf("Exported %d selected scan records to: %s\n", len(parquetScans), scansFile)

	return nil
}
