package cmd

import (
	"github.com/mzkit/rawtruth/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp [fixture-dir]",
	Short: "Start the rawtruth MCP server",
	Long: `Launch an MCP server that lets AI agents query exported fixture
directories via standard tools.

The optional fixture directory becomes the default for tool calls that omit
fixture_dir. The server never touches the reader bridge; it only reads
documents already written by 'rawtruth export'.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(_ *cobra.Command, args []string) error {
		// Suppress the normal setup output when running in MCP mode
		// to avoid polluting stdio which is used for the protocol.
		fixtureDir := ""
		if len(args) == 1 {
			fixtureDir = args[0]
		}
		return fixtureSetup(fixtureDir)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
