package core

import (
	"context"
	"errors"
	"testing"

	"github.com/mzkit/rawtruth/internal/contract"
	"github.com/mzkit/rawtruth/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildScanEventsMS1Defaults(t *testing.T) {
	ctx := context.Background()
	mockClient := &contract.MockRawClient{}

	mockClient.On("ScanFilter", ctx, 1).Return(ms1Filter(), nil)

	events, err := BuildScanEvents(ctx, mockClient, 1, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)

	event := events[0]
	assert.Equal(t, 1, event.MSLevel)
	assert.Equal(t, "None", event.ActivationType)
	assert.Zero(t, event.CollisionEnergy)
	assert.Zero(t, event.PrecursorMz)
	assert.Zero(t, event.IsolationWidth)
	assert.Equal(t, "Orbitrap", event.Analyzer)
	assert.Equal(t, "ESI", event.Ionization)
	// Events carry the collaborator's own label, not the binary mapping.
	assert.Equal(t, "Positive", event.Polarity)

	// MS1 scans never trigger a reaction lookup.
	mockClient.AssertNotCalled(t, "ScanReaction", ctx, 1, 0)
}

func TestBuildScanEventsMS2Reaction(t *testing.T) {
	ctx := context.Background()
	mockClient := &contract.MockRawClient{}

	mockClient.On("ScanFilter", ctx, 2).Return(ms2Filter(), nil)
	mockClient.On("ScanReaction", ctx, 2, 0).Return(&schema.Reaction{
		ActivationType:  "CID",
		CollisionEnergy: 35.0,
		PrecursorMass:   445.12,
		IsolationWidth:  2.0,
	}, nil)

	events, err := BuildScanEvents(ctx, mockClient, 2, 2)
	require.NoError(t, err)
	require.Len(t, events, 1)

	event := events[0]
	assert.Equal(t, 2, event.MSLevel)
	assert.Equal(t, "CID", event.ActivationType)
	assert.Equal(t, 35.0, event.CollisionEnergy)
	assert.Equal(t, 445.12, event.PrecursorMz)
	assert.Equal(t, 2.0, event.IsolationWidth)
	assert.Equal(t, "Negative", event.Polarity)
}

func TestBuildScanEventsReactionFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	mockClient := &contract.MockRawClient{}

	// Scans 6 and 8 are fine, scan 7 has a malformed event record.
	for _, scan := range []int{6, 7, 8} {
		mockClient.On("ScanFilter", ctx, scan).Return(ms2Filter(), nil)
	}
	reaction := &schema.Reaction{ActivationType: "HCD", CollisionEnergy: 27.0, PrecursorMass: 512.3, IsolationWidth: 1.6}
	mockClient.On("ScanReaction", ctx, 6, 0).Return(reaction, nil)
	mockClient.On("ScanReaction", ctx, 7, 0).Return(nil, errors.New("event index out of range"))
	mockClient.On("ScanReaction", ctx, 8, 0).Return(reaction, nil)

	events, err := BuildScanEvents(ctx, mockClient, 6, 8)
	require.NoError(t, err)
	require.Len(t, events, 3)

	// The failing scan keeps its defaults and its neighbors are intact.
	assert.Equal(t, "HCD", events[0].ActivationType)
	assert.Equal(t, "None", events[1].ActivationType)
	assert.Zero(t, events[1].CollisionEnergy)
	assert.Zero(t, events[1].PrecursorMz)
	assert.Zero(t, events[1].IsolationWidth)
	assert.Equal(t, "HCD", events[2].ActivationType)
}

func TestBuildScanEventsAbsentReaction(t *testing.T) {
	ctx := context.Background()
	mockClient := &contract.MockRawClient{}

	mockClient.On("ScanFilter", ctx, 3).Return(ms2Filter(), nil)
	mockClient.On("ScanReaction", ctx, 3, 0).Return(nil, nil)

	events, err := BuildScanEvents(ctx, mockClient, 3, 3)
	require.NoError(t, err)
	require.Len(t, events, 1)

	// An event that exists but carries no reaction reports Unknown.
	assert.Equal(t, "Unknown", events[0].ActivationType)
	assert.Zero(t, events[0].PrecursorMz)
}

func TestBuildScanEventsZeroFillsFailedFilter(t *testing.T) {
	ctx := context.Background()
	mockClient := &contract.MockRawClient{}

	mockClient.On("ScanFilter", ctx, 1).Return(nil, errors.New("corrupt filter record"))

	events, err := BuildScanEvents(ctx, mockClient, 1, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)

	event := events[0]
	assert.Equal(t, 0, event.MSLevel)
	assert.Equal(t, "None", event.ActivationType)
	assert.Equal(t, "Unknown", event.Analyzer)
	assert.Equal(t, "Unknown", event.Ionization)
	assert.Empty(t, event.Polarity)
}
