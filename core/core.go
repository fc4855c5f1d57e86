// Package core has the extraction and normalization pipeline that turns a
// RAW file into ground-truth fixture documents.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/mzkit/rawtruth/internal/contract"
	"github.com/mzkit/rawtruth/internal/outwriter"
	"github.com/mzkit/rawtruth/schema"
)

// ExecuteExport runs the full fixture export pipeline against one RAW file.
// It serves as the main entry point for the 'export' command.
func ExecuteExport(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	client := contract.NewBridgeRawClient(cfg.BridgePath)
	if err := client.Open(ctx, cfg.RawPath); err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	summary, err := runExportPipeline(ctx, cfg, client, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintExportSummary(summary, cfg, time.Since(start))
}

// ExecuteInfo fetches the run metadata snapshot and prints it.
// It serves as the main entry point for the 'info' command.
func ExecuteInfo(ctx context.Context, cfg *contract.Config) error {
	client := contract.NewBridgeRawClient(cfg.BridgePath)
	if err := client.Open(ctx, cfg.RawPath); err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if err := client.SelectInstrument(ctx, cfg.Device, cfg.Stream); err != nil {
		return fmt.Errorf("failed to select %s device: %w", cfg.Device, err)
	}
	meta, err := BuildRunMetadata(ctx, client)
	if err != nil {
		return err
	}
	return outwriter.PrintRunMetadata(meta, cfg)
}

// ExecuteScans builds the normalized scan index and prints it.
// It serves as the main entry point for the 'scans' command.
func ExecuteScans(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	client := contract.NewBridgeRawClient(cfg.BridgePath)
	if err := client.Open(ctx, cfg.RawPath); err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if err := client.SelectInstrument(ctx, cfg.Device, cfg.Stream); err != nil {
		return fmt.Errorf("failed to select %s device: %w", cfg.Device, err)
	}
	meta, err := BuildRunMetadata(ctx, client)
	if err != nil {
		return err
	}
	index, err := BuildScanIndex(ctx, client, meta.FirstScan, meta.LastScan)
	if err != nil {
		return err
	}
	if len(index) > cfg.ScanLimit {
		index = index[:cfg.ScanLimit]
	}
	return outwriter.PrintScanIndex(index, cfg, time.Since(start))
}

// ExecuteTic extracts the total-ion-current chromatogram and prints it.
// It serves as the main entry point for the 'tic' command.
func ExecuteTic(ctx context.Context, cfg *contract.Config) error {
	client := contract.NewBridgeRawClient(cfg.BridgePath)
	if err := client.Open(ctx, cfg.RawPath); err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if err := client.SelectInstrument(ctx, cfg.Device, cfg.Stream); err != nil {
		return fmt.Errorf("failed to select %s device: %w", cfg.Device, err)
	}
	meta, err := BuildRunMetadata(ctx, client)
	if err != nil {
		return err
	}
	points, err := BuildChromatogram(ctx, client, meta.FirstScan, meta.LastScan)
	if err != nil {
		return err
	}
	return outwriter.PrintChromatogram(points, cfg)
}

// ExecuteCheck verifies the structural completeness of an exported fixture
// directory. It serves as the main entry point for the 'check' command.
func ExecuteCheck(fixtureDir string, cfg *contract.Config) (*schema.CheckResult, error) {
	result, err := CheckFixtureDir(fixtureDir)
	if err != nil {
		return nil, err
	}
	if err := outwriter.PrintCheckResult(result, cfg); err != nil {
		return nil, err
	}
	return result, nil
}
