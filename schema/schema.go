// Package schema has configs, models and wire-contract types for all parts of rawtruth.
package schema

// RunMetadata summarizes run-level bounds and instrument identity for one
// RAW file. It is computed once from the collaborator's run and file headers
// and never mutated afterwards. Field order and JSON names are part of the
// fixture wire contract; consumers diff these documents byte-for-byte.
type RunMetadata struct {
	FileVersion     int     `json:"file_version"`
	FirstScan       int     `json:"first_scan"`
	LastScan        int     `json:"last_scan"`
	NScans          int     `json:"n_scans"`
	StartTime       float64 `json:"start_time"`
	EndTime         float64 `json:"end_time"`
	LowMass         float64 `json:"low_mass"`
	HighMass        float64 `json:"high_mass"`
	MassResolution  float64 `json:"mass_resolution"`
	InstrumentModel string  `json:"instrument_model"`
	InstrumentName  string  `json:"instrument_name"`
	SerialNumber    string  `json:"serial_number"`
}

// ScanIndexEntry is one normalized per-scan index record.
// Entries cover [first_scan, last_scan] in ascending order with no gaps.
type ScanIndexEntry struct {
	ScanNumber        int     `json:"scan_number"`
	RT                float64 `json:"rt"`
	TIC               float64 `json:"tic"`
	BasePeakMz        float64 `json:"base_peak_mz"`
	BasePeakIntensity float64 `json:"base_peak_intensity"`
	MSLevel           int     `json:"ms_level"`
	Polarity          string  `json:"polarity"`
	Analyzer          string  `json:"analyzer"`
	IsCentroid        bool    `json:"is_centroid"`
	FilterString      string  `json:"filter_string"`
}

// ScanEvent is one normalized per-scan acquisition-event record.
// Precursor fields are zero-defaulted for MS1 scans and whenever the
// reaction lookup fails. Polarity here is the collaborator's own label,
// not the lowercased binary mapping used in the scan index.
type ScanEvent struct {
	ScanNumber      int     `json:"scan_number"`
	MSLevel         int     `json:"ms_level"`
	ActivationType  string  `json:"activation_type"`
	CollisionEnergy float64 `json:"collision_energy"`
	PrecursorMz     float64 `json:"precursor_mz"`
	IsolationWidth  float64 `json:"isolation_width"`
	Analyzer        string  `json:"analyzer"`
	Ionization      string  `json:"ionization"`
	Polarity        string  `json:"polarity"`
}

// PeakArray holds the parallel m/z and intensity arrays for one selected
// scan, in the representation (centroid or profile) native to that scan.
// Mz and Intensity are always non-nil so that empty arrays serialize as [].
type PeakArray struct {
	ScanNumber   int       `json:"scan_number"`
	MSLevel      int       `json:"ms_level"`
	IsCentroid   bool      `json:"is_centroid"`
	NPeaks       int       `json:"n_peaks"`
	FilterString string    `json:"filter_string"`
	RT           float64   `json:"rt"`
	TIC          float64   `json:"tic"`
	Mz           []float64 `json:"mz"`
	Intensity    []float64 `json:"intensity"`
}

// ChromatogramPoint is one (scan, rt, tic) sample of the total-ion-current
// trace across the run.
type ChromatogramPoint struct {
	ScanNumber int     `json:"scan_number"`
	RT         float64 `json:"rt"`
	TIC        float64 `json:"tic"`
}

// --- Collaborator-side records --------------------------------------------
//
// The types below are value snapshots of what the reader bridge reports.
// They hold no reference back into the collaborator.

// FileHeader is the file-level header reported by the collaborator.
type FileHeader struct {
	Revision int `json:"revision"`
}

// RunHeader is the run-level header reported by the collaborator.
type RunHeader struct {
	FirstScan      int     `json:"first_scan"`
	LastScan       int     `json:"last_scan"`
	StartTime      float64 `json:"start_time"`
	EndTime        float64 `json:"end_time"`
	LowMass        float64 `json:"low_mass"`
	HighMass       float64 `json:"high_mass"`
	MassResolution float64 `json:"mass_resolution"`
}

// InstrumentInfo identifies the acquiring instrument.
type InstrumentInfo struct {
	Model        string `json:"model"`
	Name         string `json:"name"`
	SerialNumber string `json:"serial_number"`
}

// ScanStats are the per-scan statistics reported by the collaborator.
type ScanStats struct {
	ScanNumber        int     `json:"scan_number"`
	RetentionTime     float64 `json:"retention_time"`
	TIC               float64 `json:"tic"`
	BasePeakMass      float64 `json:"base_peak_mass"`
	BasePeakIntensity float64 `json:"base_peak_intensity"`
	IsCentroid        bool    `json:"is_centroid"`
}

// ScanFilter is the per-scan acquisition filter. MassAnalyzer and
// IonizationMode are optional capabilities of the underlying vendor record;
// a nil pointer means the record does not expose the field.
type ScanFilter struct {
	MSOrder        int     `json:"ms_order"`
	Polarity       string  `json:"polarity"`
	MassAnalyzer   *string `json:"mass_analyzer"`
	IonizationMode *string `json:"ionization_mode"`
	Text           string  `json:"text"`
}

// AnalyzerLabel returns the mass analyzer label, or "Unknown" when the
// underlying record does not expose one.
func (f *ScanFilter) AnalyzerLabel() string {
	if f == nil || f.MassAnalyzer == nil {
		return UnknownLabel
	}
	return *f.MassAnalyzer
}

// IonizationLabel returns the ionization mode label, or "Unknown" when the
// underlying record does not expose one.
func (f *ScanFilter) IonizationLabel() string {
	if f == nil || f.IonizationMode == nil {
		return UnknownLabel
	}
	return *f.IonizationMode
}

// Reaction describes one fragmentation step of an acquisition event.
type Reaction struct {
	ActivationType  string  `json:"activation_type"`
	CollisionEnergy float64 `json:"collision_energy"`
	PrecursorMass   float64 `json:"precursor_mass"`
	IsolationWidth  float64 `json:"isolation_width"`
}

// PeakData carries the parallel mass and intensity channels of a centroid
// stream or a segmented (profile) scan.
type PeakData struct {
	Masses      []float64 `json:"masses"`
	Intensities []float64 `json:"intensities"`
}

// Len returns the number of peaks in the mass channel.
func (p *PeakData) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Masses)
}
