// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mzkit/rawtruth/internal/contract"
)

// NewMCPServer initializes and configures the rawtruth MCP server without
// starting it. The server answers queries against already-exported fixture
// directories; it never touches the reader bridge. This is exposed for unit
// testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Rawtruth Fixture Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: get_run_metadata ---
	s.AddTool(mcp.NewTool("get_run_metadata",
		mcp.WithDescription("Read the run-level metadata document of an exported fixture directory."),
		mcp.WithString("fixture_dir", mcp.Description("Path to the fixture directory."), mcp.Required()),
	), h.handleGetRunMetadata)

	// --- 2. Tool: get_scan_index ---
	s.AddTool(mcp.NewTool("get_scan_index",
		mcp.WithDescription("Read the normalized per-scan index of an exported fixture directory."),
		mcp.WithString("fixture_dir", mcp.Description("Path to the fixture directory."), mcp.Required()),
		mcp.WithNumber("ms_level", mcp.Description("Only return scans with this MS level.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of entries returned.")),
	), h.handleGetScanIndex)

	// --- 3. Tool: get_scan_events ---
	s.AddTool(mcp.NewTool("get_scan_events",
		mcp.WithDescription("Read the normalized acquisition events of an exported fixture directory."),
		mcp.WithString("fixture_dir", mcp.Description("Path to the fixture directory."), mcp.Required()),
		mcp.WithNumber("ms_level", mcp.Description("Only return events with this MS level.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of entries returned.")),
	), h.handleGetScanEvents)

	// --- 4. Tool: get_peak_array ---
	s.AddTool(mcp.NewTool("get_peak_array",
		mcp.WithDescription("Read the peak-array document of one representative scan."),
		mcp.WithString("fixture_dir", mcp.Description("Path to the fixture directory."), mcp.Required()),
		mcp.WithNumber("scan", mcp.Description("Scan number of the peak document."), mcp.Required()),
	), h.handleGetPeakArray)

	// --- 5. Tool: check_fixture ---
	s.AddTool(mcp.NewTool("check_fixture",
		mcp.WithDescription("Run the structural completeness check over a fixture directory."),
		mcp.WithString("fixture_dir", mcp.Description("Path to the fixture directory."), mcp.Required()),
	), h.handleCheckFixture)

	return s
}

// StartMCPServer starts the rawtruth MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
