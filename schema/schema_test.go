package schema

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The fixture documents are diffed byte-for-byte against a second parser's
// output, so field names and order are load-bearing.
func TestPeakArrayWireFormat(t *testing.T) {
	arr := PeakArray{
		ScanNumber:   7,
		MSLevel:      1,
		IsCentroid:   false,
		NPeaks:       0,
		FilterString: "FTMS + p ESI Full ms [200.00-2000.00]",
		RT:           1.25,
		TIC:          1e6,
		Mz:           []float64{},
		Intensity:    []float64{},
	}

	data, err := json.Marshal(arr)
	require.NoError(t, err)

	// Empty peak arrays must serialize as [], never null.
	assert.Contains(t, string(data), `"mz":[]`)
	assert.Contains(t, string(data), `"intensity":[]`)

	var keys []string
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	require.NoError(t, err)
	require.Equal(t, json.Delim('{'), tok)
	for dec.More() {
		tok, err := dec.Token()
		require.NoError(t, err)
		keys = append(keys, tok.(string))
		var discard json.RawMessage
		require.NoError(t, dec.Decode(&discard))
	}
	assert.Equal(t, []string{
		"scan_number", "ms_level", "is_centroid", "n_peaks",
		"filter_string", "rt", "tic", "mz", "intensity",
	}, keys)
}

func TestRunMetadataWireFormat(t *testing.T) {
	meta := RunMetadata{FileVersion: 66, FirstScan: 1, LastScan: 10, NScans: 10}
	data, err := json.Marshal(meta)
	require.NoError(t, err)

	var asMap map[string]any
	require.NoError(t, json.Unmarshal(data, &asMap))
	for _, key := range []string{
		"file_version", "first_scan", "last_scan", "n_scans",
		"start_time", "end_time", "low_mass", "high_mass",
		"mass_resolution", "instrument_model", "instrument_name", "serial_number",
	} {
		assert.Contains(t, asMap, key)
	}
}
