package core

import (
	"github.com/mzkit/rawtruth/schema"
)

// Shared fixture helpers for pipeline tests.

func strPtr(s string) *string { return &s }

// centroidStats builds per-scan statistics with a retention time and TIC
// derived from the scan number, which keeps assertions easy to eyeball.
func centroidStats(scan int) *schema.ScanStats {
	return &schema.ScanStats{
		ScanNumber:        scan,
		RetentionTime:     float64(scan) * 0.25,
		TIC:               float64(scan) * 1e6,
		BasePeakMass:      400.5,
		BasePeakIntensity: 9e4,
		IsCentroid:        true,
	}
}

func profileStats(scan int) *schema.ScanStats {
	stats := centroidStats(scan)
	stats.IsCentroid = false
	return stats
}

// ms1Filter is a fully-populated positive-mode full-scan filter.
func ms1Filter() *schema.ScanFilter {
	return &schema.ScanFilter{
		MSOrder:        schema.OrderMs,
		Polarity:       "Positive",
		MassAnalyzer:   strPtr("Orbitrap"),
		IonizationMode: strPtr("ESI"),
		Text:           "FTMS + p ESI Full ms [350.0000-2000.0000]",
	}
}

// ms2Filter is a fully-populated negative-mode fragmentation filter.
func ms2Filter() *schema.ScanFilter {
	return &schema.ScanFilter{
		MSOrder:        schema.OrderMs2,
		Polarity:       "Negative",
		MassAnalyzer:   strPtr("IonTrap"),
		IonizationMode: strPtr("ESI"),
		Text:           "ITMS - c ESI d Full ms2 445.1200@cid35.00",
	}
}
