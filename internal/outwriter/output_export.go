package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/mzkit/rawtruth/internal/contract"
	"github.com/mzkit/rawtruth/schema"
)

// PrintExportSummary outputs the result of a completed export run, dispatching
// based on the output format configured. The fixture documents themselves are
// already on disk; this only reports what was produced.
func PrintExportSummary(summary *schema.ExportSummary, cfg *contract.Config, duration time.Duration) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summary)
		}, "Wrote JSON")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeTextExportSummary(w, summary, cfg, duration)
	}, "Wrote summary")
}

// writeTextExportSummary writes a human-readable export report.
func writeTextExportSummary(w io.Writer, summary *schema.ExportSummary, cfg *contract.Config, duration time.Duration) error {
	meta := summary.Metadata
	if _, err := fmt.Fprintf(w, "Exported %s -> %s\n", summary.RawFile, summary.OutputDir); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  %s (%s)\n", meta.InstrumentModel, meta.SerialNumber); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  Scans indexed: %d (%d..%d), events: %d\n",
		summary.NIndexed, meta.FirstScan, meta.LastScan, summary.NEvents); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  Representative scans: %v\n", summary.Selected); err != nil {
		return err
	}

	reprLabel := contract.GetPlainRepresentation
	if cfg.UseColors {
		reprLabel = contract.GetColorRepresentation
	}
	for _, doc := range summary.PeakDocs {
		if _, err := fmt.Fprintf(w, "    %s ms%d %s, %d peaks\n",
			PeakDocName(doc.ScanNumber), doc.MSLevel, reprLabel(doc.IsCentroid), doc.NPeaks); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Export completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}
