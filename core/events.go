package core

import (
	"context"
	"fmt"

	"github.com/mzkit/rawtruth/internal/contract"
	"github.com/mzkit/rawtruth/schema"
)

// BuildScanEvents produces one normalized ScanEvent per scan number in
// [first, last], in ascending order.
//
// For MS-level > 1 scans the first reaction record (index 0) of the scan's
// acquisition event supplies activation type, collision energy, precursor
// m/z and isolation width. Any failure during that lookup is swallowed and
// the four fields keep their zero/"None" defaults; one scan's malformed
// event record must never abort export of the remaining scans. A reaction
// that is reported absent (rather than failing) yields "Unknown" activation
// with zeroed numerics.
//
// Note the event record carries the collaborator's own polarity label,
// unlike the binary mapping used in the scan index.
func BuildScanEvents(ctx context.Context, client contract.RawClient, first, last int) ([]schema.ScanEvent, error) {
	if err := requireAscending(first, last); err != nil {
		return nil, err
	}
	events := make([]schema.ScanEvent, 0, last-first+1)
	for scan := first; scan <= last; scan++ {
		filter, err := client.ScanFilter(ctx, scan)
		if err != nil {
			filter = nil // zero-fill, same policy as the scan index
		}

		event := schema.ScanEvent{
			ScanNumber:     scan,
			ActivationType: schema.NoActivationLabel,
			Analyzer:       schema.UnknownLabel,
			Ionization:     schema.UnknownLabel,
		}
		if filter != nil {
			event.MSLevel = schema.MSLevelFromOrder(filter.MSOrder)
			event.Analyzer = filter.AnalyzerLabel()
			event.Ionization = filter.IonizationLabel()
			event.Polarity = filter.Polarity
		}

		if event.MSLevel > 1 {
			applyReaction(ctx, client, scan, &event)
		}
		events = append(events, event)
	}
	return events, nil
}

// applyReaction fills precursor fields from the scan's first reaction.
// Lookup failures are deliberately swallowed, leaving the defaults intact.
func applyReaction(ctx context.Context, client contract.RawClient, scan int, event *schema.ScanEvent) {
	reaction, err := client.ScanReaction(ctx, scan, contract.DefaultReactionIdx)
	if err != nil {
		return
	}
	if reaction == nil {
		event.ActivationType = schema.UnknownLabel
		return
	}
	event.ActivationType = reaction.ActivationType
	event.CollisionEnergy = reaction.CollisionEnergy
	event.PrecursorMz = reaction.PrecursorMass
	event.IsolationWidth = reaction.IsolationWidth
}

// requireAscending validates that scan bounds describe a non-empty range.
func requireAscending(first, last int) error {
	if last < first {
		return fmt.Errorf("invalid scan range: last scan %d precedes first scan %d", last, first)
	}
	return nil
}
