package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/mzkit/rawtruth/internal/contract"
	"github.com/mzkit/rawtruth/internal/parquet"
	"github.com/mzkit/rawtruth/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintScanIndex outputs the normalized scan index listing, dispatching based
// on the output format configured.
func PrintScanIndex(index []schema.ScanIndexEntry, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, index)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVScanIndex(w, index, fmtFloat, intFmt)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		if err := parquet.WriteScanIndexParquet(parquet.ConvertScanIndexEntries(index), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote parquet to %s\n", cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScanTable(index, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeScanTable generates and writes the human-readable scan table.
func writeScanTable(index []schema.ScanIndexEntry, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	table.Header([]string{"Scan", "RT", "TIC", "Base Peak", "Level", "Polarity", "Repr", "Filter"})

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	reprLabel := contract.GetPlainRepresentation
	if cfg.UseColors {
		reprLabel = contract.GetColorRepresentation
	}

	var data [][]string
	for _, entry := range index {
		row := []string{
			strconv.Itoa(entry.ScanNumber),
			fmtFloat(entry.RT),
			fmt.Sprintf("%.3e", entry.TIC),
			fmtFloat(entry.BasePeakMz),
			fmt.Sprintf(intFmt, entry.MSLevel),
			entry.Polarity,
			reprLabel(entry.IsCentroid),
			contract.TruncatePath(entry.FilterString, getMaxTableFilterWidth(cfg)),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing %d scans. Listing completed in %v\n", len(index), duration); err != nil {
		return err
	}
	return nil
}

// writeCSVScanIndex writes the scan index in CSV format.
func writeCSVScanIndex(w io.Writer, index []schema.ScanIndexEntry, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"scan_number",
		"rt",
		"tic",
		"base_peak_mz",
		"base_peak_intensity",
		"ms_level",
		"polarity",
		"analyzer",
		"representation",
		"filter_string",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, entry := range index {
			rec := []string{
				strconv.Itoa(entry.ScanNumber),
				fmtFloat(entry.RT),
				fmtFloat(entry.TIC),
				fmtFloat(entry.BasePeakMz),
				fmtFloat(entry.BasePeakIntensity),
				fmt.Sprintf(intFmt, entry.MSLevel),
				entry.Polarity,
				entry.Analyzer,
				contract.GetPlainRepresentation(entry.IsCentroid),
				entry.FilterString,
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
