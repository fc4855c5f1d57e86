package contract

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/mzkit/rawtruth/schema"
)

// Bridge protocol operations.
const (
	opOpen             = "open"
	opSelectInstrument = "select_instrument"
	opFileHeader       = "file_header"
	opRunHeader        = "run_header"
	opInstrumentInfo   = "instrument_info"
	opScanStats        = "scan_stats"
	opScanFilter       = "scan_filter"
	opReaction         = "reaction"
	opCentroidStream   = "centroid_stream"
	opSegmentedScan    = "segmented_scan"
	opClose            = "close"
)

// bridgeRequest is one newline-delimited JSON request to the reader bridge.
type bridgeRequest struct {
	Op     string `json:"op"`
	Path   string `json:"path,omitempty"`
	Device string `json:"device,omitempty"`
	Stream int    `json:"stream,omitempty"`
	Scan   int    `json:"scan"`
	Index  int    `json:"index"`
}

// bridgeResponse is one newline-delimited JSON response from the reader
// bridge. Data is null for records the collaborator does not have.
type bridgeResponse struct {
	OK    bool            `json:"ok"`
	Error string          `json:"error"`
	Data  json.RawMessage `json:"data"`
}

// BridgeRawClient implements the RawClient interface by driving a long-lived
// reader bridge subprocess over newline-delimited JSON. The bridge wraps the
// vendor's proprietary reader library; one subprocess serves exactly one RAW
// file for its whole lifetime.
type BridgeRawClient struct {
	bridgePath string
	cmd        *exec.Cmd
	stdin      io.WriteCloser
	stdout     *bufio.Reader
	open       bool
}

var _ RawClient = &BridgeRawClient{} // Compile-time check

// NewBridgeRawClient creates a new client for the given bridge executable.
// The bridge is not started until Open is called.
func NewBridgeRawClient(bridgePath string) *BridgeRawClient {
	return &BridgeRawClient{bridgePath: bridgePath}
}

// call sends one request and decodes the matching response into out.
// The bridge answers strictly in request order, so no correlation IDs
// are needed. Not safe for concurrent use.
func (c *BridgeRawClient) call(req bridgeRequest, out any) error {
	if c.stdin == nil || c.stdout == nil {
		return errors.New("reader bridge is not running")
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("cannot encode bridge request: %w", err)
	}
	if _, err := c.stdin.Write(append(payload, '\n')); err != nil {
		return fmt.Errorf("bridge write failed: %w", err)
	}
	line, err := c.stdout.ReadBytes('\n')
	if err != nil {
		return fmt.Errorf("bridge read failed: %w", err)
	}
	var resp bridgeResponse
	if err := json.Unmarshal(line, &resp); err != nil {
		return fmt.Errorf("bridge sent a malformed response: %w", err)
	}
	if !resp.OK {
		return fmt.Errorf("bridge %s failed: %s", req.Op, resp.Error)
	}
	if out != nil && len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, out); err != nil {
			return fmt.Errorf("cannot decode bridge %s response: %w", req.Op, err)
		}
	}
	return nil
}

// Open starts the bridge subprocess and opens the RAW file through it.
func (c *BridgeRawClient) Open(_ context.Context, path string) error {
	if c.cmd != nil {
		return errors.New("reader bridge already started")
	}

	cmd := exec.Command(c.bridgePath, "serve")
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("cannot connect to reader bridge stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("cannot connect to reader bridge stdout: %w", err)
	}
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("cannot start reader bridge %q: %w. Ensure the bridge is installed and available on your PATH", c.bridgePath, err)
	}
	c.cmd = cmd
	c.stdin = stdin
	c.stdout = bufio.NewReader(stdout)

	var status struct {
		IsOpen bool `json:"is_open"`
	}
	if err := c.call(bridgeRequest{Op: opOpen, Path: path}, &status); err != nil {
		_ = c.shutdown()
		return err
	}
	if !status.IsOpen {
		_ = c.shutdown()
		return fmt.Errorf("reader bridge failed to open RAW file: %s", path)
	}
	c.open = true
	return nil
}

// IsOpen implements the RawClient interface.
func (c *BridgeRawClient) IsOpen() bool {
	return c.open
}

// SelectInstrument implements the RawClient interface.
func (c *BridgeRawClient) SelectInstrument(_ context.Context, device schema.DeviceType, stream int) error {
	return c.call(bridgeRequest{Op: opSelectInstrument, Device: string(device), Stream: stream}, nil)
}

// FileHeader implements the RawClient interface.
func (c *BridgeRawClient) FileHeader(_ context.Context) (*schema.FileHeader, error) {
	var header *schema.FileHeader
	if err := c.call(bridgeRequest{Op: opFileHeader}, &header); err != nil {
		return nil, err
	}
	if header == nil {
		return nil, errors.New("collaborator reported no file header")
	}
	return header, nil
}

// RunHeader implements the RawClient interface.
func (c *BridgeRawClient) RunHeader(_ context.Context) (*schema.RunHeader, error) {
	var header *schema.RunHeader
	if err := c.call(bridgeRequest{Op: opRunHeader}, &header); err != nil {
		return nil, err
	}
	if header == nil {
		return nil, errors.New("collaborator reported no run header")
	}
	return header, nil
}

// InstrumentInfo implements the RawClient interface.
func (c *BridgeRawClient) InstrumentInfo(_ context.Context) (*schema.InstrumentInfo, error) {
	var info *schema.InstrumentInfo
	if err := c.call(bridgeRequest{Op: opInstrumentInfo}, &info); err != nil {
		return nil, err
	}
	if info == nil {
		return nil, errors.New("collaborator reported no instrument data")
	}
	return info, nil
}

// ScanStats implements the RawClient interface.
func (c *BridgeRawClient) ScanStats(_ context.Context, scan int) (*schema.ScanStats, error) {
	var stats *schema.ScanStats
	if err := c.call(bridgeRequest{Op: opScanStats, Scan: scan}, &stats); err != nil {
		return nil, err
	}
	if stats == nil {
		return nil, fmt.Errorf("collaborator reported no statistics for scan %d", scan)
	}
	return stats, nil
}

// ScanFilter implements the RawClient interface. A nil filter without error
// means the collaborator has no filter record for the scan.
func (c *BridgeRawClient) ScanFilter(_ context.Context, scan int) (*schema.ScanFilter, error) {
	var filter *schema.ScanFilter
	if err := c.call(bridgeRequest{Op: opScanFilter, Scan: scan}, &filter); err != nil {
		return nil, err
	}
	return filter, nil
}

// ScanReaction implements the RawClient interface. A nil reaction without
// error means the acquisition event carries no reaction at that index.
func (c *BridgeRawClient) ScanReaction(_ context.Context, scan int, index int) (*schema.Reaction, error) {
	var reaction *schema.Reaction
	if err := c.call(bridgeRequest{Op: opReaction, Scan: scan, Index: index}, &reaction); err != nil {
		return nil, err
	}
	return reaction, nil
}

// CentroidStream implements the RawClient interface.
func (c *BridgeRawClient) CentroidStream(_ context.Context, scan int) (*schema.PeakData, error) {
	var peaks *schema.PeakData
	if err := c.call(bridgeRequest{Op: opCentroidStream, Scan: scan}, &peaks); err != nil {
		return nil, err
	}
	return peaks, nil
}

// SegmentedScan implements the RawClient interface.
func (c *BridgeRawClient) SegmentedScan(_ context.Context, scan int) (*schema.PeakData, error) {
	var peaks *schema.PeakData
	if err := c.call(bridgeRequest{Op: opSegmentedScan, Scan: scan}, &peaks); err != nil {
		return nil, err
	}
	return peaks, nil
}

// Close tells the bridge to release the RAW file and waits for the
// subprocess to exit. Safe to call after a failed Open.
func (c *BridgeRawClient) Close() error {
	if c.cmd == nil {
		return nil
	}
	// Best-effort close request; the bridge also shuts down on EOF.
	_ = c.call(bridgeRequest{Op: opClose}, nil)
	c.open = false
	return c.shutdown()
}

// shutdown closes the pipes and reaps the subprocess.
func (c *BridgeRawClient) shutdown() error {
	if c.stdin != nil {
		_ = c.stdin.Close()
	}
	var err error
	if c.cmd != nil {
		err = c.cmd.Wait()
	}
	c.cmd = nil
	c.stdin = nil
	c.stdout = nil
	c.open = false
	return err
}
