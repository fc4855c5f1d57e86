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

func TestBuildPeakArrayCentroid(t *testing.T) {
	ctx := context.Background()
	mockClient := &contract.MockRawClient{}

	mockClient.On("ScanStats", ctx, 3).Return(centroidStats(3), nil)
	mockClient.On("ScanFilter", ctx, 3).Return(ms1Filter(), nil)
	mockClient.On("CentroidStream", ctx, 3).Return(&schema.PeakData{
		Masses:      []float64{400.1, 512.7, 899.4},
		Intensities: []float64{1200, 88000, 3400},
	}, nil)

	arr, err := BuildPeakArray(ctx, mockClient, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, arr.ScanNumber)
	assert.Equal(t, 1, arr.MSLevel)
	assert.True(t, arr.IsCentroid)
	assert.Equal(t, 3, arr.NPeaks)
	assert.Equal(t, []float64{400.1, 512.7, 899.4}, arr.Mz)
	assert.Equal(t, []float64{1200, 88000, 3400}, arr.Intensity)
	assert.Equal(t, 0.75, arr.RT)

	// Centroid scans read the centroid stream, never the profile record.
	mockClient.AssertNotCalled(t, "SegmentedScan", ctx, 3)
}

func TestBuildPeakArrayProfile(t *testing.T) {
	ctx := context.Background()
	mockClient := &contract.MockRawClient{}

	mockClient.On("ScanStats", ctx, 4).Return(profileStats(4), nil)
	mockClient.On("ScanFilter", ctx, 4).Return(ms1Filter(), nil)
	mockClient.On("SegmentedScan", ctx, 4).Return(&schema.PeakData{
		Masses:      []float64{350.0, 350.1},
		Intensities: []float64{10, 20},
	}, nil)

	arr, err := BuildPeakArray(ctx, mockClient, 4)
	require.NoError(t, err)

	assert.False(t, arr.IsCentroid)
	assert.Equal(t, 2, arr.NPeaks)
	mockClient.AssertNotCalled(t, "CentroidStream", ctx, 4)
}

func TestBuildPeakArrayEmptyScan(t *testing.T) {
	ctx := context.Background()
	mockClient := &contract.MockRawClient{}

	mockClient.On("ScanStats", ctx, 9).Return(profileStats(9), nil)
	mockClient.On("ScanFilter", ctx, 9).Return(nil, nil)
	mockClient.On("SegmentedScan", ctx, 9).Return(nil, nil)

	arr, err := BuildPeakArray(ctx, mockClient, 9)
	require.NoError(t, err)

	// Zero peaks is a valid result: arrays are empty, never nil.
	assert.Equal(t, 0, arr.NPeaks)
	assert.NotNil(t, arr.Mz)
	assert.NotNil(t, arr.Intensity)
	assert.Empty(t, arr.Mz)
	assert.Empty(t, arr.Intensity)
	assert.Equal(t, 0, arr.MSLevel)
	assert.Empty(t, arr.FilterString)
}

func TestBuildPeakArrayMisalignedChannels(t *testing.T) {
	ctx := context.Background()
	mockClient := &contract.MockRawClient{}

	mockClient.On("ScanStats", ctx, 2).Return(centroidStats(2), nil)
	mockClient.On("ScanFilter", ctx, 2).Return(ms1Filter(), nil)
	mockClient.On("CentroidStream", ctx, 2).Return(&schema.PeakData{
		Masses:      []float64{100, 200, 300},
		Intensities: []float64{1, 2},
	}, nil)

	arr, err := BuildPeakArray(ctx, mockClient, 2)
	assert.Nil(t, arr)
	assert.ErrorContains(t, err, "misaligned")
}

func TestBuildPeakArrayEmptyMassesWithIntensities(t *testing.T) {
	ctx := context.Background()
	mockClient := &contract.MockRawClient{}

	mockClient.On("ScanStats", ctx, 5).Return(centroidStats(5), nil)
	mockClient.On("ScanFilter", ctx, 5).Return(ms1Filter(), nil)
	mockClient.On("CentroidStream", ctx, 5).Return(&schema.PeakData{
		Masses:      []float64{},
		Intensities: []float64{1, 2},
	}, nil)

	// A mismatch is an error even when one channel is empty; it must not
	// collapse into a zero-peak result.
	arr, err := BuildPeakArray(ctx, mockClient, 5)
	assert.Nil(t, arr)
	assert.ErrorContains(t, err, "0 masses vs 2 intensities")
}

func TestBuildPeakArrayStreamFailure(t *testing.T) {
	ctx := context.Background()
	mockClient := &contract.MockRawClient{}

	mockClient.On("ScanStats", ctx, 2).Return(centroidStats(2), nil)
	mockClient.On("ScanFilter", ctx, 2).Return(ms1Filter(), nil)
	mockClient.On("CentroidStream", ctx, 2).Return(nil, errors.New("stream truncated"))

	_, err := BuildPeakArray(ctx, mockClient, 2)
	assert.ErrorContains(t, err, "failed to read peak data for scan 2")
}
