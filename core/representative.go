package core

import (
	"context"
	"fmt"
	"sort"

	"github.com/mzkit/rawtruth/internal/contract"
	"github.com/mzkit/rawtruth/schema"
)

// SelectRepresentativeScans deterministically chooses a small, structurally
// diverse subset of scan numbers without reading any peak data.
//
// One pass over all scans classifies each into buckets by MS order and
// centroid flag; the selection then takes the global first and last scan,
// the first and middle MS1 scan, the first profile-mode MS1 scan, and a
// quartile spread of centroid MS2 scans. Insertions go through a set, so
// overlapping picks deduplicate; the result is sorted ascending. Bucket
// membership follows ascending scan-number iteration and all index
// arithmetic is integer division, so the same file always yields the same
// selection.
func SelectRepresentativeScans(ctx context.Context, client contract.RawClient, first, last int) ([]int, error) {
	if err := requireAscending(first, last); err != nil {
		return nil, err
	}

	var ms1Scans, ms1Profile, ms2Scans, ms2Centroid []int
	for scan := first; scan <= last; scan++ {
		stats, err := client.ScanStats(ctx, scan)
		if err != nil {
			return nil, fmt.Errorf("failed to read statistics for scan %d: %w", scan, err)
		}
		filter, err := client.ScanFilter(ctx, scan)
		if err != nil || filter == nil {
			continue // unclassifiable scans join no bucket
		}

		switch filter.MSOrder {
		case schema.OrderMs:
			ms1Scans = append(ms1Scans, scan)
			if !stats.IsCentroid {
				ms1Profile = append(ms1Profile, scan)
			}
		case schema.OrderMs2:
			ms2Scans = append(ms2Scans, scan)
			if stats.IsCentroid {
				ms2Centroid = append(ms2Centroid, scan)
			}
		}
	}
	selected := make(map[int]struct{})
	add := func(scan int) { selected[scan] = struct{}{} }

	add(first)
	add(last)
	if len(ms1Scans) > 0 {
		add(ms1Scans[0])
		add(ms1Scans[len(ms1Scans)/2])
	}
	if len(ms1Profile) > 0 {
		add(ms1Profile[0])
	}
	if len(ms2Centroid) > 0 {
		add(ms2Centroid[0])
		if len(ms2Centroid) > 2 {
			add(ms2Centroid[len(ms2Centroid)/4])
			add(ms2Centroid[len(ms2Centroid)/2])
			add(ms2Centroid[3*len(ms2Centroid)/4])
		}
		add(ms2Centroid[len(ms2Centroid)-1])
	}

	result := make([]int, 0, len(selected))
	for scan := range selected {
		result = append(result, scan)
	}
	sort.Ints(result)
	return result, nil
}
