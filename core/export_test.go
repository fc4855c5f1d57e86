package core

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mzkit/rawtruth/internal/contract"
	"github.com/mzkit/rawtruth/internal/iocache"
	"github.com/mzkit/rawtruth/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// setupPipelineMocks scripts a four-scan run: an MS1 survey scan, one MS2
// fragmentation scan, one profile-mode MS1 scan, and a final MS1 scan whose
// centroid stream is empty. Every scan ends up representative.
func setupPipelineMocks(ctx context.Context, mockClient *contract.MockRawClient) {
	mockClient.On("SelectInstrument", ctx, schema.MSDevice, 1).Return(nil)
	mockClient.On("FileHeader", ctx).Return(&schema.FileHeader{Revision: 66}, nil)
	mockClient.On("RunHeader", ctx).Return(&schema.RunHeader{
		FirstScan: 1, LastScan: 4,
		StartTime: 0.01, EndTime: 1.0,
		LowMass: 150, HighMass: 2000,
	}, nil)
	mockClient.On("InstrumentInfo", ctx).Return(&schema.InstrumentInfo{
		Model: "Orbitrap Fusion", Name: "Orbitrap Fusion Lumos", SerialNumber: "FSN20115",
	}, nil)

	mockClient.On("ScanStats", ctx, 1).Return(centroidStats(1), nil)
	mockClient.On("ScanFilter", ctx, 1).Return(ms1Filter(), nil)
	mockClient.On("ScanStats", ctx, 2).Return(centroidStats(2), nil)
	mockClient.On("ScanFilter", ctx, 2).Return(ms2Filter(), nil)
	mockClient.On("ScanStats", ctx, 3).Return(profileStats(3), nil)
	mockClient.On("ScanFilter", ctx, 3).Return(ms1Filter(), nil)
	mockClient.On("ScanStats", ctx, 4).Return(centroidStats(4), nil)
	mockClient.On("ScanFilter", ctx, 4).Return(ms1Filter(), nil)

	mockClient.On("ScanReaction", ctx, 2, 0).Return(&schema.Reaction{
		ActivationType: "CID", CollisionEnergy: 35, PrecursorMass: 445.12, IsolationWidth: 2,
	}, nil)

	mockClient.On("CentroidStream", ctx, 1).Return(&schema.PeakData{
		Masses: []float64{400.1, 512.7}, Intensities: []float64{1200, 88000},
	}, nil)
	mockClient.On("CentroidStream", ctx, 2).Return(&schema.PeakData{
		Masses: []float64{129.1}, Intensities: []float64{640},
	}, nil)
	mockClient.On("SegmentedScan", ctx, 3).Return(&schema.PeakData{
		Masses: []float64{350.0, 350.1, 350.2}, Intensities: []float64{5, 25, 5},
	}, nil)
	mockClient.On("CentroidStream", ctx, 4).Return(nil, nil)
}

func TestRunExportPipeline(t *testing.T) {
	ctx := context.Background()
	mockClient := &contract.MockRawClient{}
	setupPipelineMocks(ctx, mockClient)

	outputDir := filepath.Join(t.TempDir(), "fixture")
	cfg := &contract.Config{
		RawPath:   "sample.raw",
		OutputDir: outputDir,
		Device:    schema.MSDevice,
		Stream:    1,
	}

	mockStore := &iocache.MockRunStore{}
	mockStore.On("BeginRun", mock.Anything, "sample.raw", outputDir).Return(int64(7), nil)
	mockStore.On("RecordSelectedScan", int64(7), mock.Anything).Return(nil).Times(4)
	mockStore.On("EndRun", int64(7), mock.Anything, mock.Anything, 4).Return(nil)
	mockMgr := &iocache.MockStoreManager{}
	mockMgr.On("GetRunStore").Return(mockStore)

	summary, err := runExportPipeline(ctx, cfg, mockClient, mockMgr)
	require.NoError(t, err)

	assert.Equal(t, "sample.raw", summary.RawFile)
	assert.Equal(t, 4, summary.NIndexed)
	assert.Equal(t, 4, summary.NEvents)
	assert.Equal(t, []int{1, 2, 3, 4}, summary.Selected)
	require.Len(t, summary.PeakDocs, 4)
	assert.Equal(t, 0, summary.PeakDocs[3].NPeaks)

	// Metadata document round-trips from disk.
	var meta schema.RunMetadata
	data, err := os.ReadFile(filepath.Join(outputDir, schema.MetadataDocument))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &meta))
	assert.Equal(t, 66, meta.FileVersion)
	assert.Equal(t, 4, meta.NScans)

	// Scan index covers every scan in order.
	var index []schema.ScanIndexEntry
	data, err = os.ReadFile(filepath.Join(outputDir, schema.ScanIndexDocument))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &index))
	require.Len(t, index, 4)
	assert.Equal(t, 2, index[1].MSLevel)
	assert.Equal(t, "negative", index[1].Polarity)

	// The empty scan serializes its arrays as [], not null.
	data, err = os.ReadFile(filepath.Join(outputDir, schema.PeaksSubdir, "scan_4.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"mz": []`)
	assert.Contains(t, string(data), `"intensity": []`)

	// A fresh export always passes its own structural check.
	result, err := CheckFixtureDir(outputDir)
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Equal(t, 4, result.NPeakDocs)

	mockStore.AssertExpectations(t)
}

func TestRunExportPipelineWithoutTracking(t *testing.T) {
	ctx := context.Background()
	mockClient := &contract.MockRawClient{}
	setupPipelineMocks(ctx, mockClient)

	cfg := &contract.Config{
		RawPath:   "sample.raw",
		OutputDir: filepath.Join(t.TempDir(), "fixture"),
		Device:    schema.MSDevice,
		Stream:    1,
	}

	summary, err := runExportPipeline(ctx, cfg, mockClient, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, summary.Selected)
}

func TestRunExportPipelineTrackingFailureIsNonFatal(t *testing.T) {
	ctx := context.Background()
	mockClient := &contract.MockRawClient{}
	setupPipelineMocks(ctx, mockClient)

	cfg := &contract.Config{
		RawPath:   "sample.raw",
		OutputDir: filepath.Join(t.TempDir(), "fixture"),
		Device:    schema.MSDevice,
		Stream:    1,
	}

	mockStore := &iocache.MockRunStore{}
	mockStore.On("BeginRun", mock.Anything, "sample.raw", cfg.OutputDir).Return(int64(0), assert.AnError)
	mockMgr := &iocache.MockStoreManager{}
	mockMgr.On("GetRunStore").Return(mockStore)

	// The store is disabled for the rest of the run; the export succeeds.
	summary, err := runExportPipeline(ctx, cfg, mockClient, mockMgr)
	require.NoError(t, err)
	assert.Len(t, summary.PeakDocs, 4)
	mockStore.AssertNotCalled(t, "RecordSelectedScan", mock.Anything, mock.Anything)
	mockStore.AssertNotCalled(t, "EndRun", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRunExportPipelineSelectFailureIsFatal(t *testing.T) {
	ctx := context.Background()
	mockClient := &contract.MockRawClient{}

	mockClient.On("SelectInstrument", ctx, schema.PDADevice, 2).Return(assert.AnError)

	cfg := &contract.Config{
		RawPath:   "sample.raw",
		OutputDir: filepath.Join(t.TempDir(), "fixture"),
		Device:    schema.PDADevice,
		Stream:    2,
	}

	summary, err := runExportPipeline(ctx, cfg, mockClient, nil)
	assert.Nil(t, summary)
	assert.ErrorContains(t, err, "failed to select PDA device")
}
