// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/mzkit/rawtruth/schema"
)

// RawClient defines the operations consumed from the proprietary RAW file
// reader. The reader is an exclusively-owned resource for the duration of a
// run: opened once, threaded through each pipeline component, closed once.
// Implementations are not assumed reentrant or thread-safe, and callers must
// never access them concurrently. The interface also allows the pipeline to
// be tested without a real reader bridge.
type RawClient interface {
	// --- Session lifecycle ---

	// Open acquires the RAW file. It must be called exactly once, before
	// any other operation.
	Open(ctx context.Context, path string) error

	// IsOpen reports whether the underlying file handle is open.
	IsOpen() bool

	// SelectInstrument picks the active acquisition device for all
	// subsequent operations.
	SelectInstrument(ctx context.Context, device schema.DeviceType, stream int) error

	// Close releases the RAW file. Safe to call after a failed Open.
	Close() error

	// --- Headers ---

	// FileHeader returns the file-level header (format revision).
	FileHeader(ctx context.Context) (*schema.FileHeader, error)

	// RunHeader returns the run-level header (scan bounds, time and mass
	// ranges, mass resolution).
	RunHeader(ctx context.Context) (*schema.RunHeader, error)

	// InstrumentInfo returns the instrument identity for the selected device.
	InstrumentInfo(ctx context.Context) (*schema.InstrumentInfo, error)

	// --- Per-scan records ---

	// ScanStats returns the statistics for one scan number.
	ScanStats(ctx context.Context, scan int) (*schema.ScanStats, error)

	// ScanFilter returns the acquisition filter for one scan number.
	// A (nil, nil) return means the collaborator has no filter record
	// for that scan.
	ScanFilter(ctx context.Context, scan int) (*schema.ScanFilter, error)

	// ScanReaction returns the reaction record at the given index of the
	// scan's acquisition event. A (nil, nil) return means the event exists
	// but carries no reaction at that index.
	ScanReaction(ctx context.Context, scan int, index int) (*schema.Reaction, error)

	// CentroidStream returns the centroid peak stream for one scan, or
	// (nil, nil) when the scan has none.
	CentroidStream(ctx context.Context, scan int) (*schema.PeakData, error)

	// SegmentedScan returns the profile (segmented) scan record for one
	// scan, or (nil, nil) when the scan has none.
	SegmentedScan(ctx context.Context, scan int) (*schema.PeakData, error)
}

// StoreManager defines the interface for accessing the run-tracking store.
// This allows the store layer to be mocked for testing.
type StoreManager interface {
	GetRunStore() RunStore
}

// RunStore defines the interface for tracking export runs.
type RunStore interface {
	// BeginRun creates a new export run and returns its unique ID.
	BeginRun(startTime time.Time, rawFile, outputDir string) (int64, error)

	// EndRun updates the export run with completion data.
	EndRun(runID int64, endTime time.Time, meta *schema.RunMetadata, nSelected int) error

	// RecordSelectedScan stores one representative scan chosen for a run.
	RecordSelectedScan(runID int64, scan schema.SelectedScanRecord) error

	// GetAllRuns returns every recorded export run.
	GetAllRuns() ([]schema.ExportRunRecord, error)

	// GetAllSelectedScans returns every recorded representative scan.
	GetAllSelectedScans() ([]schema.SelectedScanRecord, error)

	// GetStatus returns status information about the run store.
	GetStatus() (schema.RunStoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}
