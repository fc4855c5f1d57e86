package cmd

import (
	"os"

	"github.com/mzkit/rawtruth/core"
	"github.com/mzkit/rawtruth/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd verifies the structural completeness of an exported fixture.
var checkCmd = &cobra.Command{
	Use:   "check <fixture-dir>",
	Short: "Verify an exported fixture directory (fails on structural problems)",
	Long: `Validate that an exported fixture directory is structurally complete.

Checks that:
- metadata.json scan bounds agree with the declared scan count
- scan_index.json and scan_events.json cover every scan, in order, without gaps
- polarity labels stay within the positive/negative domain
- every peak document matches its filename, stays in scan bounds, and keeps
  its mz/intensity arrays the same length
- the first and last scans of the run have peak documents

Designed for CI pipelines that regenerate fixtures - exits non-zero when any
problem is found, so a truncated or hand-edited fixture fails the build.

Examples:
  # Validate a fixture after export
  rawtruth check testdata/sample

  # Machine-readable report
  rawtruth check testdata/sample --output json`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(_ *cobra.Command, args []string) error {
		return fixtureSetup(args[0])
	},
	Run: func(_ *cobra.Command, args []string) {
		result, err := core.ExecuteCheck(args[0], cfg)
		if err != nil {
			contract.LogFatal("Cannot check fixture", err)
		}
		if !result.Passed {
			os.Exit(1)
		}
	},
}
