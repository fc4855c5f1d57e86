package schema

// CheckResult holds the results of a structural completeness check over
// an exported fixture directory.
type CheckResult struct {
	Passed     bool           `json:"passed"`
	FixtureDir string         `json:"fixture_dir"`
	NScans     int            `json:"n_scans"`
	NPeakDocs  int            `json:"n_peak_docs"`
	Problems   []CheckProblem `json:"problems,omitempty"`
}

// CheckProblem represents one structural violation found during a check.
type CheckProblem struct {
	Document   string `json:"document"`              // fixture document the problem was found in
	ScanNumber int    `json:"scan_number,omitempty"` // scan the problem refers to, 0 when document-level
	Message    string `json:"message"`
}
