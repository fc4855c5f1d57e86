package schema

// PeakDocSummary condenses one exported peak-array document for display.
type PeakDocSummary struct {
	ScanNumber int  `json:"scan_number"`
	MSLevel    int  `json:"ms_level"`
	IsCentroid bool `json:"is_centroid"`
	NPeaks     int  `json:"n_peaks"`
}

// ExportSummary describes what a completed export run produced.
type ExportSummary struct {
	RawFile   string           `json:"raw_file"`
	OutputDir string           `json:"output_dir"`
	Metadata  *RunMetadata     `json:"metadata"`
	NIndexed  int              `json:"n_indexed"`
	NEvents   int              `json:"n_events"`
	Selected  []int            `json:"selected_scans"`
	PeakDocs  []PeakDocSummary `json:"peak_docs"`
}
