package outwriter

import (
	"fmt"
	"io"

	"github.com/mzkit/rawtruth/internal/contract"
	"github.com/mzkit/rawtruth/schema"
)

// PrintCheckResult outputs the result of a structural fixture check,
// dispatching based on the output format configured.
func PrintCheckResult(result *schema.CheckResult, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeTextCheckResult(w, result, cfg)
	}, "Wrote report")
}

// writeTextCheckResult writes a human-readable check report.
func writeTextCheckResult(w io.Writer, result *schema.CheckResult, cfg *contract.Config) error {
	pass, fail := fmt.Sprint, fmt.Sprint
	if cfg.UseColors {
		pass = contract.PassColor.Sprint
		fail = contract.FailColor.Sprint
	}

	for _, p := range result.Problems {
		loc := p.Document
		if p.ScanNumber > 0 {
			loc = fmt.Sprintf("%s (scan %d)", p.Document, p.ScanNumber)
		}
		if _, err := fmt.Fprintf(w, "%s %s: %s\n", fail("FAIL"), loc, p.Message); err != nil {
			return err
		}
	}

	verdict := pass("PASS")
	if !result.Passed {
		verdict = fail("FAIL")
	}
	_, err := fmt.Fprintf(w, "%s %s: %d scans, %d peak docs, %d problems\n",
		verdict, result.FixtureDir, result.NScans, result.NPeakDocs, len(result.Problems))
	return err
}
