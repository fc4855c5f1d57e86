package cmd

import (
	"github.com/mzkit/rawtruth/core"
	"github.com/mzkit/rawtruth/internal/contract"
	"github.com/spf13/cobra"
)

// ticCmd extracts the total-ion-current chromatogram of a RAW file.
var ticCmd = &cobra.Command{
	Use:   "tic <raw-file>",
	Short: "Extract the total-ion-current chromatogram.",
	Long: `Walk every scan of a RAW file and emit (scan_number, rt, tic) points.

Useful for a quick acquisition sanity check before exporting a fixture, or
for plotting the chromatogram with external tools.

Examples:
  # Print the chromatogram as CSV
  rawtruth tic sample.raw

  # Write JSON points to a file
  rawtruth tic sample.raw --output json --output-file tic.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTic(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot extract chromatogram", err)
		}
	},
}
