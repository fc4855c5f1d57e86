package cmd

import (
	"github.com/mzkit/rawtruth/core"
	"github.com/mzkit/rawtruth/internal/contract"
	"github.com/spf13/cobra"
)

// infoCmd prints the run metadata snapshot for a RAW file.
var infoCmd = &cobra.Command{
	Use:   "info <raw-file>",
	Short: "Show run-level metadata for a RAW file.",
	Long: `Read the instrument headers of a RAW file and print the run metadata
snapshot without exporting any fixture documents.

Shows the instrument model, name, serial number, file version, scan bounds,
acquisition time range, mass range and mass resolution.

Examples:
  # Inspect a RAW file
  rawtruth info sample.raw

  # Emit metadata as JSON for scripting
  rawtruth info sample.raw --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteInfo(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot read RAW metadata", err)
		}
	},
}
