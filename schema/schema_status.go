package schema

import "time"

// RunStoreStatus represents the status of the run-tracking store.
type RunStoreStatus struct {
	Backend       string           `json:"backend"`
	Connected     bool             `json:"connected"`
	TotalRuns     int              `json:"total_runs"`
	LastRunID     int64            `json:"last_run_id"`
	LastRunTime   time.Time        `json:"last_run_time"`
	OldestRunTime time.Time        `json:"oldest_run_time"`
	TotalScans    int              `json:"total_scans"`
	TableSizes    map[string]int64 `json:"table_sizes"`
}

// ExportRunRecord represents a row from the rawtruth_export_runs table.
type ExportRunRecord struct {
	RunID       int64
	RawFile     string
	OutputDir   string
	FileVersion int32
	FirstScan   int32
	LastScan    int32
	NScans      int32
	NSelected   int32
	StartTime   time.Time
	EndTime     *time.Time
}

// SelectedScanRecord represents a row from the rawtruth_selected_scans table.
type SelectedScanRecord struct {
	RunID      int64
	ScanNumber int32
	MSLevel    int32
	IsCentroid bool
	NPeaks     int32
}
