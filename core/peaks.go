package core

import (
	"context"
	"fmt"

	"github.com/mzkit/rawtruth/internal/contract"
	"github.com/mzkit/rawtruth/schema"
)

// BuildPeakArray extracts the m/z and intensity arrays for one scan, in the
// representation native to it: the centroid peak stream for centroid scans,
// the segmented (profile) scan record otherwise. An absent or empty stream
// is a valid zero-peak result, not an error. Statistics and filter are
// re-fetched here; the exporter shares no cached state with earlier passes.
func BuildPeakArray(ctx context.Context, client contract.RawClient, scan int) (*schema.PeakArray, error) {
	stats, err := client.ScanStats(ctx, scan)
	if err != nil {
		return nil, fmt.Errorf("failed to read statistics for scan %d: %w", scan, err)
	}
	filter, err := client.ScanFilter(ctx, scan)
	if err != nil {
		filter = nil
	}

	var peaks *schema.PeakData
	if stats.IsCentroid {
		peaks, err = client.CentroidStream(ctx, scan)
	} else {
		peaks, err = client.SegmentedScan(ctx, scan)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read peak data for scan %d: %w", scan, err)
	}

	if peaks != nil && len(peaks.Masses) != len(peaks.Intensities) {
		return nil, fmt.Errorf(
			"scan %d peak channels are misaligned: %d masses vs %d intensities",
			scan, len(peaks.Masses), len(peaks.Intensities))
	}

	// Always non-nil so empty arrays serialize as [] rather than null.
	mz := []float64{}
	intensity := []float64{}
	if peaks.Len() > 0 {
		mz = peaks.Masses
		intensity = peaks.Intensities
	}

	arr := &schema.PeakArray{
		ScanNumber: scan,
		IsCentroid: stats.IsCentroid,
		NPeaks:     len(mz),
		RT:         stats.RetentionTime,
		TIC:        stats.TIC,
		Mz:         mz,
		Intensity:  intensity,
	}
	if filter != nil {
		arr.MSLevel = schema.MSLevelFromOrder(filter.MSOrder)
		arr.FilterString = filter.Text
	}
	return arr, nil
}
