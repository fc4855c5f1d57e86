package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mzkit/rawtruth/internal/contract"
	"github.com/mzkit/rawtruth/schema"
)

// PrintRunMetadata outputs the run metadata snapshot, dispatching based on
// the output format configured.
func PrintRunMetadata(meta *schema.RunMetadata, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, meta)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVMetadata(w, meta, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for run metadata")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTextMetadata(w, meta, fmtFloat)
		}, "Wrote summary")
	}
}

// writeCSVMetadata writes the run metadata as a single CSV record.
func writeCSVMetadata(w io.Writer, meta *schema.RunMetadata, fmtFloat func(float64) string) error {
	header := []string{
		"file_version",
		"first_scan",
		"last_scan",
		"n_scans",
		"start_time",
		"end_time",
		"low_mass",
		"high_mass",
		"mass_resolution",
		"instrument_model",
		"instrument_name",
		"serial_number",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		rec := []string{
			strconv.Itoa(meta.FileVersion),
			strconv.Itoa(meta.FirstScan),
			strconv.Itoa(meta.LastScan),
			strconv.Itoa(meta.NScans),
			fmtFloat(meta.StartTime),
			fmtFloat(meta.EndTime),
			fmtFloat(meta.LowMass),
			fmtFloat(meta.HighMass),
			fmtFloat(meta.MassResolution),
			meta.InstrumentModel,
			meta.InstrumentName,
			meta.SerialNumber,
		}
		return cw.Write(rec)
	})
}

// writeTextMetadata writes a human-readable metadata summary.
func writeTextMetadata(w io.Writer, meta *schema.RunMetadata, fmtFloat func(float64) string) error {
	lines := []struct {
		label string
		value string
	}{
		{"Instrument", fmt.Sprintf("%s (%s, s/n %s)", meta.InstrumentModel, meta.InstrumentName, meta.SerialNumber)},
		{"File version", strconv.Itoa(meta.FileVersion)},
		{"Scans", fmt.Sprintf("%d (%d..%d)", meta.NScans, meta.FirstScan, meta.LastScan)},
		{"Time range", fmt.Sprintf("%s .. %s min", fmtFloat(meta.StartTime), fmtFloat(meta.EndTime))},
		{"Mass range", fmt.Sprintf("%s .. %s", fmtFloat(meta.LowMass), fmtFloat(meta.HighMass))},
		{"Mass resolution", fmtFloat(meta.MassResolution)},
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%-16s %s\n", line.label, line.value); err != nil {
			return err
		}
	}
	return nil
}
