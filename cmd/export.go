package cmd

import (
	"github.com/mzkit/rawtruth/core"
	"github.com/mzkit/rawtruth/internal/contract"
	"github.com/spf13/cobra"
)

// exportCmd runs the full ground-truth fixture export pipeline.
var exportCmd = &cobra.Command{
	Use:   "export <raw-file> <output-dir>",
	Short: "Export ground-truth fixture documents from a RAW file.",
	Long: `Run the full extraction pipeline against one RAW file and write the
fixture documents consumed by downstream test suites.

The pipeline produces, under <output-dir>:
- metadata.json     - run-level instrument metadata
- scan_index.json   - one normalized entry per scan
- scan_events.json  - acquisition event details per scan
- centroids/        - peak arrays for a representative scan subset

Representative scans are chosen deterministically from the scan index, so
re-running the export on the same RAW file yields identical selections.

Examples:
  # Export a fixture directory
  rawtruth export sample.raw testdata/sample

  # Use an explicit bridge binary and record the run
  rawtruth export sample.raw testdata/sample --bridge ./rawnet-bridge --runs-backend sqlite

  # Export a non-default instrument stream
  rawtruth export sample.raw testdata/sample --device PDA --stream 2`,
	Args:    cobra.ExactArgs(2),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(rootCtx, cfg, runManager); err != nil {
			contract.LogFatal("Cannot export fixture", err)
		}
	},
}
