package iocache

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/mzkit/rawtruth/internal/contract"
	"github.com/mzkit/rawtruth/schema"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetRunStore implements the StoreManager interface.
func (m *MockStoreManager) GetRunStore() contract.RunStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.RunStore)
	return store
}

// MockRunStore is a mock implementation of RunStore for testing.
type MockRunStore struct {
	mock.Mock
}

var _ contract.RunStore = &MockRunStore{} // Compile-time check

// BeginRun implements the RunStore interface.
func (m *MockRunStore) BeginRun(startTime time.Time, rawFile, outputDir string) (int64, error) {
	args := m.Called(startTime, rawFile, outputDir)
	return args.Get(0).(int64), args.Error(1)
}

// EndRun implements the RunStore interface.
func (m *MockRunStore) EndRun(runID int64, endTime time.Time, meta *schema.RunMetadata, nSelected int) error {
	args := m.Called(runID, endTime, meta, nSelected)
	return args.Error(0)
}

// RecordSelectedScan implements the RunStore interface.
func (m *MockRunStore) RecordSelectedScan(runID int64, scan schema.SelectedScanRecord) error {
	args := m.Called(runID, scan)
	return args.Error(0)
}

// GetAllRuns implements the RunStore interface.
func (m *MockRunStore) GetAllRuns() ([]schema.ExportRunRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.ExportRunRecord)
	return records, args.Error(1)
}

// GetAllSelectedScans implements the RunStore interface.
func (m *MockRunStore) GetAllSelectedScans() ([]schema.SelectedScanRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.SelectedScanRecord)
	return records, args.Error(1)
}

// GetStatus implements the RunStore interface.
func (m *MockRunStore) GetStatus() (schema.RunStoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.RunStoreStatus), args.Error(1)
}

// Close implements the RunStore interface.
func (m *MockRunStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
