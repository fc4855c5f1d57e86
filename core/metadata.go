package core

import (
	"context"
	"fmt"

	"github.com/mzkit/rawtruth/internal/contract"
	"github.com/mzkit/rawtruth/schema"
)

// BuildRunMetadata summarizes run-level bounds and instrument identity.
// File and run headers are read from the collaborator exactly once; header
// failures are fatal setup errors and propagate unwrapped to the caller.
func BuildRunMetadata(ctx context.Context, client contract.RawClient) (*schema.RunMetadata, error) {
	fileHeader, err := client.FileHeader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}
	runHeader, err := client.RunHeader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read run header: %w", err)
	}
	instrument, err := client.InstrumentInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read instrument data: %w", err)
	}

	return &schema.RunMetadata{
		FileVersion:     fileHeader.Revision,
		FirstScan:       runHeader.FirstScan,
		LastScan:        runHeader.LastScan,
		NScans:          runHeader.LastScan - runHeader.FirstScan + 1,
		StartTime:       runHeader.StartTime,
		EndTime:         runHeader.EndTime,
		LowMass:         runHeader.LowMass,
		HighMass:        runHeader.HighMass,
		MassResolution:  runHeader.MassResolution,
		InstrumentModel: instrument.Model,
		InstrumentName:  instrument.Name,
		SerialNumber:    instrument.SerialNumber,
	}, nil
}
