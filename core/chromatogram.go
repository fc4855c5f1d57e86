package core

import (
	"context"
	"fmt"

	"github.com/mzkit/rawtruth/internal/contract"
	"github.com/mzkit/rawtruth/schema"
)

// BuildChromatogram samples the total-ion-current trace across the run,
// one point per scan number in ascending order.
func BuildChromatogram(ctx context.Context, client contract.RawClient, first, last int) ([]schema.ChromatogramPoint, error) {
	if err := requireAscending(first, last); err != nil {
		return nil, err
	}
	points := make([]schema.ChromatogramPoint, 0, last-first+1)
	for scan := first; scan <= last; scan++ {
		stats, err := client.ScanStats(ctx, scan)
		if err != nil {
			return nil, fmt.Errorf("failed to read statistics for scan %d: %w", scan, err)
		}
		points = append(points, schema.ChromatogramPoint{
			ScanNumber: scan,
			RT:         stats.RetentionTime,
			TIC:        stats.TIC,
		})
	}
	return points, nil
}
