package core

import (
	"context"
	"fmt"

	"github.com/mzkit/rawtruth/internal/contract"
	"github.com/mzkit/rawtruth/schema"
)

// BuildScanIndex produces one normalized ScanIndexEntry per scan number in
// [first, last], in ascending order.
//
// A scan whose filter is absent or fails to load is zero-filled (ms_level 0,
// polarity "negative", analyzer "Unknown", empty filter string) and the pass
// continues; a single malformed filter must never abort the whole export.
// A failed scan-stats fetch is fatal, since every downstream field depends
// on it.
func BuildScanIndex(ctx context.Context, client contract.RawClient, first, last int) ([]schema.ScanIndexEntry, error) {
	if err := requireAscending(first, last); err != nil {
		return nil, err
	}
	entries := make([]schema.ScanIndexEntry, 0, last-first+1)
	for scan := first; scan <= last; scan++ {
		stats, err := client.ScanStats(ctx, scan)
		if err != nil {
			return nil, fmt.Errorf("failed to read statistics for scan %d: %w", scan, err)
		}
		filter, err := client.ScanFilter(ctx, scan)
		if err != nil {
			filter = nil // zero-fill, keep going
		}

		entry := schema.ScanIndexEntry{
			ScanNumber:        scan,
			RT:                stats.RetentionTime,
			TIC:               stats.TIC,
			BasePeakMz:        stats.BasePeakMass,
			BasePeakIntensity: stats.BasePeakIntensity,
			Polarity:          schema.NegativePolarity,
			Analyzer:          schema.UnknownLabel,
			IsCentroid:        stats.IsCentroid,
		}
		if filter != nil {
			entry.MSLevel = schema.MSLevelFromOrder(filter.MSOrder)
			entry.Polarity = schema.PolarityFromLabel(filter.Polarity)
			entry.Analyzer = filter.AnalyzerLabel()
			entry.FilterString = filter.Text
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
