package contract

import (
	"context"

	"github.com/mzkit/rawtruth/schema"
	"github.com/stretchr/testify/mock"
)

// MockRawClient is an autogenerated mock type for the RawClient type.
type MockRawClient struct {
	mock.Mock
}

var _ RawClient = &MockRawClient{} // Compile-time check

// Open implements the contract.RawClient interface.
func (m *MockRawClient) Open(ctx context.Context, path string) error {
	ret := m.Called(ctx, path)
	return ret.Error(0)
}

// IsOpen implements the contract.RawClient interface.
func (m *MockRawClient) IsOpen() bool {
	ret := m.Called()
	return ret.Bool(0)
}

// SelectInstrument implements the contract.RawClient interface.
func (m *MockRawClient) SelectInstrument(ctx context.Context, device schema.DeviceType, stream int) error {
	ret := m.Called(ctx, device, stream)
	return ret.Error(0)
}

// Close implements the contract.RawClient interface.
func (m *MockRawClient) Close() error {
	ret := m.Called()
	return ret.Error(0)
}

// FileHeader implements the contract.RawClient interface.
func (m *MockRawClient) FileHeader(ctx context.Context) (*schema.FileHeader, error) {
	ret := m.Called(ctx)
	header, _ := ret.Get(0).(*schema.FileHeader)
	return header, ret.Error(1)
}

// RunHeader implements the contract.RawClient interface.
func (m *MockRawClient) RunHeader(ctx context.Context) (*schema.RunHeader, error) {
	ret := m.Called(ctx)
	header, _ := ret.Get(0).(*schema.RunHeader)
	return header, ret.Error(1)
}

// InstrumentInfo implements the contract.RawClient interface.
func (m *MockRawClient) InstrumentInfo(ctx context.Context) (*schema.InstrumentInfo, error) {
	ret := m.Called(ctx)
	info, _ := ret.Get(0).(*schema.InstrumentInfo)
	return info, ret.Error(1)
}

// ScanStats implements the contract.RawClient interface.
func (m *MockRawClient) ScanStats(ctx context.Context, scan int) (*schema.ScanStats, error) {
	ret := m.Called(ctx, scan)
	stats, _ := ret.Get(0).(*schema.ScanStats)
	return stats, ret.Error(1)
}

// ScanFilter implements the contract.RawClient interface.
func (m *MockRawClient) ScanFilter(ctx context.Context, scan int) (*schema.ScanFilter, error) {
	ret := m.Called(ctx, scan)
	filter, _ := ret.Get(0).(*schema.ScanFilter)
	return filter, ret.Error(1)
}

// ScanReaction implements the contract.RawClient interface.
func (m *MockRawClient) ScanReaction(ctx context.Context, scan int, index int) (*schema.Reaction, error) {
	ret := m.Called(ctx, scan, index)
	reaction, _ := ret.Get(0).(*schema.Reaction)
	return reaction, ret.Error(1)
}

// CentroidStream implements the contract.RawClient interface.
func (m *MockRawClient) CentroidStream(ctx context.Context, scan int) (*schema.PeakData, error) {
	ret := m.Called(ctx, scan)
	peaks, _ := ret.Get(0).(*schema.PeakData)
	return peaks, ret.Error(1)
}

// SegmentedScan implements the contract.RawClient interface.
func (m *MockRawClient) SegmentedScan(ctx context.Context, scan int) (*schema.PeakData, error) {
	ret := m.Called(ctx, scan)
	peaks, _ := ret.Get(0).(*schema.PeakData)
	return peaks, ret.Error(1)
}
