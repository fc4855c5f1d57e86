package core

import (
	"context"
	"fmt"
	"time"

	"github.com/mzkit/rawtruth/internal/contract"
	"github.com/mzkit/rawtruth/internal/outwriter"
	"github.com/mzkit/rawtruth/schema"
)

// runExportPipeline drives the five pipeline stages in order against an
// already-open collaborator handle: metadata, scan index, scan events,
// representative selection, peak arrays. Each stage persists its fixture
// document before the next stage starts, so a fatal failure still leaves
// whatever documents were already flushed.
func runExportPipeline(ctx context.Context, cfg *contract.Config, client contract.RawClient, mgr contract.StoreManager) (*schema.ExportSummary, error) {
	if err := outwriter.EnsureFixtureDirs(cfg.OutputDir); err != nil {
		return nil, err
	}
	if err := client.SelectInstrument(ctx, cfg.Device, cfg.Stream); err != nil {
		return nil, fmt.Errorf("failed to select %s device: %w", cfg.Device, err)
	}

	// --- 0. Begin run tracking (if configured) ---
	var runID int64
	var runStore contract.RunStore
	if mgr != nil {
		runStore = mgr.GetRunStore()
	}
	if runStore != nil {
		var err error
		runID, err = runStore.BeginRun(time.Now(), cfg.RawPath, cfg.OutputDir)
		if err != nil {
			contract.LogWarn("Run tracking initialization failed", err)
			runStore = nil
		}
	}

	// --- 1. Run metadata ---
	meta, err := BuildRunMetadata(ctx, client)
	if err != nil {
		return nil, err
	}
	if err := outwriter.WriteMetadata(cfg.OutputDir, meta); err != nil {
		return nil, err
	}

	// --- 2. Scan index ---
	index, err := BuildScanIndex(ctx, client, meta.FirstScan, meta.LastScan)
	if err != nil {
		return nil, err
	}
	if err := outwriter.WriteScanIndex(cfg.OutputDir, index); err != nil {
		return nil, err
	}

	// --- 3. Scan events ---
	events, err := BuildScanEvents(ctx, client, meta.FirstScan, meta.LastScan)
	if err != nil {
		return nil, err
	}
	if err := outwriter.WriteScanEvents(cfg.OutputDir, events); err != nil {
		return nil, err
	}

	// --- 4. Representative selection ---
	selected, err := SelectRepresentativeScans(ctx, client, meta.FirstScan, meta.LastScan)
	if err != nil {
		return nil, err
	}

	// --- 5. Peak arrays for the selected subset ---
	peakDocs := make([]schema.PeakDocSummary, 0, len(selected))
	for _, scan := range selected {
		arr, err := BuildPeakArray(ctx, client, scan)
		if err != nil {
			return nil, err
		}
		if err := outwriter.WritePeakArray(cfg.OutputDir, arr); err != nil {
			return nil, err
		}
		peakDocs = append(peakDocs, schema.PeakDocSummary{
			ScanNumber: arr.ScanNumber,
			MSLevel:    arr.MSLevel,
			IsCentroid: arr.IsCentroid,
			NPeaks:     arr.NPeaks,
		})
		if runStore != nil {
			err := runStore.RecordSelectedScan(runID, schema.SelectedScanRecord{
				RunID:      runID,
				ScanNumber: int32(arr.ScanNumber),
				MSLevel:    int32(arr.MSLevel),
				IsCentroid: arr.IsCentroid,
				NPeaks:     int32(arr.NPeaks),
			})
			if err != nil {
				contract.LogWarn("Failed to record selected scan", err)
			}
		}
	}

	// --- 6. End run tracking ---
	if runStore != nil {
		if err := runStore.EndRun(runID, time.Now(), meta, len(selected)); err != nil {
			contract.LogWarn("Failed to finalize run tracking", err)
		}
	}

	return &schema.ExportSummary{
		RawFile:   cfg.RawPath,
		OutputDir: cfg.OutputDir,
		Metadata:  meta,
		NIndexed:  len(index),
		NEvents:   len(events),
		Selected:  selected,
		PeakDocs:  peakDocs,
	}, nil
}
