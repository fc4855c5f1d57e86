package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mzkit/rawtruth/internal/contract"
	"github.com/mzkit/rawtruth/schema"
)

// PrintChromatogram outputs the total-ion-current trace, dispatching based on
// the output format configured. Text mode falls back to CSV since a dense
// trace is not useful as a table.
func PrintChromatogram(points []schema.ChromatogramPoint, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, points)
		}, "Wrote JSON")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for chromatograms")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVChromatogram(w, points, fmtFloat)
		}, "Wrote CSV")
	}
}

// writeCSVChromatogram writes the chromatogram in CSV format.
func writeCSVChromatogram(w io.Writer, points []schema.ChromatogramPoint, fmtFloat func(float64) string) error {
	header := []string{"scan_number", "rt", "tic"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, p := range points {
			rec := []string{
				strconv.Itoa(p.ScanNumber),
				fmtFloat(p.RT),
				fmtFloat(p.TIC),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
