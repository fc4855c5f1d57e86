package cmd

import (
	"github.com/mzkit/rawtruth/core"
	"github.com/mzkit/rawtruth/internal/contract"
	"github.com/spf13/cobra"
)

// scansCmd lists the normalized scan index of a RAW file.
var scansCmd = &cobra.Command{
	Use:   "scans <raw-file>",
	Short: "List the normalized scan index of a RAW file.",
	Long: `Build the normalized scan index for a RAW file and print it without
writing fixture documents.

Each entry carries retention time, total ion current, base peak, MS level,
polarity, analyzer, centroid/profile representation, and the raw filter
string. A scan whose filter cannot be read is zero-filled rather than
aborting the listing.

Examples:
  # Show the first 25 scans as a table
  rawtruth scans sample.raw

  # Show more scans with higher numeric precision
  rawtruth scans sample.raw --limit 200 --precision 6

  # Export the index for analytics
  rawtruth scans sample.raw --output parquet --output-file scans.parquet`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScans(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list scans", err)
		}
	},
}
