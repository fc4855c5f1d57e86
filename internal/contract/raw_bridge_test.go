package contract

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/mzkit/rawtruth/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBridge answers bridge requests over in-memory pipes, standing in for
// the external reader subprocess.
type fakeBridge struct {
	t       *testing.T
	reqs    []bridgeRequest
	answers map[string]bridgeResponse
}

// wire connects a client to the fake bridge and starts serving.
func (b *fakeBridge) wire(c *BridgeRawClient) {
	clientIn, bridgeOut := io.Pipe()
	bridgeIn, clientOut := io.Pipe()
	c.stdin = clientOut
	c.stdout = bufio.NewReader(clientIn)

	go func() {
		scanner := bufio.NewScanner(bridgeIn)
		enc := json.NewEncoder(bridgeOut)
		for scanner.Scan() {
			var req bridgeRequest
			if err := json.Unmarshal(scanner.Bytes(), &req); err != nil {
				b.t.Errorf("fake bridge received malformed request: %v", err)
				return
			}
			b.reqs = append(b.reqs, req)
			resp, ok := b.answers[req.Op]
			if !ok {
				resp = bridgeResponse{OK: true}
			}
			if err := enc.Encode(resp); err != nil {
				return
			}
		}
	}()
}

func jsonData(t *testing.T, v any) json.RawMessage {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestBridgeRawClientDecodesRecords(t *testing.T) {
	analyzer := "FTMS"
	bridge := &fakeBridge{t: t, answers: map[string]bridgeResponse{
		opRunHeader: {OK: true, Data: jsonData(t, schema.RunHeader{FirstScan: 1, LastScan: 250, LowMass: 200, HighMass: 2000})},
		opScanStats: {OK: true, Data: jsonData(t, schema.ScanStats{ScanNumber: 12, RetentionTime: 0.52, TIC: 1.5e8, IsCentroid: true})},
		opScanFilter: {OK: true, Data: jsonData(t, schema.ScanFilter{
			MSOrder: 2, Polarity: "Positive", MassAnalyzer: &analyzer, Text: "FTMS + p ESI Full ms2",
		})},
	}}
	client := &BridgeRawClient{bridgePath: "unused"}
	bridge.wire(client)

	header, err := client.RunHeader(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, header.FirstScan)
	assert.Equal(t, 250, header.LastScan)

	stats, err := client.ScanStats(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, 0.52, stats.RetentionTime)
	assert.True(t, stats.IsCentroid)

	filter, err := client.ScanFilter(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, 2, filter.MSOrder)
	assert.Equal(t, "FTMS", filter.AnalyzerLabel())

	// Requests go out in call order with the scan number attached.
	require.Len(t, bridge.reqs, 3)
	assert.Equal(t, opScanStats, bridge.reqs[1].Op)
	assert.Equal(t, 12, bridge.reqs[1].Scan)
}

func TestBridgeRawClientNullDataMeansAbsentRecord(t *testing.T) {
	bridge := &fakeBridge{t: t, answers: map[string]bridgeResponse{
		opScanFilter:     {OK: true, Data: json.RawMessage("null")},
		opReaction:       {OK: true},
		opCentroidStream: {OK: true, Data: json.RawMessage("null")},
	}}
	client := &BridgeRawClient{bridgePath: "unused"}
	bridge.wire(client)

	filter, err := client.ScanFilter(context.Background(), 3)
	require.NoError(t, err)
	assert.Nil(t, filter)

	reaction, err := client.ScanReaction(context.Background(), 3, 0)
	require.NoError(t, err)
	assert.Nil(t, reaction)

	peaks, err := client.CentroidStream(context.Background(), 3)
	require.NoError(t, err)
	assert.Nil(t, peaks)
}

func TestBridgeRawClientErrorResponse(t *testing.T) {
	bridge := &fakeBridge{t: t, answers: map[string]bridgeResponse{
		opReaction: {OK: false, Error: "no acquisition event for scan 7"},
	}}
	client := &BridgeRawClient{bridgePath: "unused"}
	bridge.wire(client)

	_, err := client.ScanReaction(context.Background(), 7, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no acquisition event for scan 7")
}

func TestBridgeRawClientNotRunning(t *testing.T) {
	client := NewBridgeRawClient("rawnet-bridge")
	assert.False(t, client.IsOpen())

	_, err := client.RunHeader(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not running")

	// Closing a never-started client is a no-op.
	assert.NoError(t, client.Close())
}
