package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mzkit/rawtruth/core"
	"github.com/mzkit/rawtruth/internal/contract"
	"github.com/mzkit/rawtruth/internal/outwriter"
	"github.com/mzkit/rawtruth/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// resolveFixtureDir returns the fixture directory for a request, falling back
// to the configured output directory.
func (h *toolHandler) resolveFixtureDir(request mcp.CallToolRequest) (string, error) {
	dir := request.GetString("fixture_dir", "")
	if dir == "" {
		dir = h.baseCfg.OutputDir
	}
	if dir == "" {
		return "", fmt.Errorf("fixture_dir is required")
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return "", fmt.Errorf("fixture directory not found: %s", dir)
	}
	return dir, nil
}

// readFixtureDoc reads and decodes one fixture document.
func readFixtureDoc(fixtureDir, doc string, target any) error {
	data, err := os.ReadFile(filepath.Join(fixtureDir, doc))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", doc, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to decode %s: %w", doc, err)
	}
	return nil
}

func (h *toolHandler) handleGetRunMetadata(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dir, err := h.resolveFixtureDir(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var meta schema.RunMetadata
	if err := readFixtureDoc(dir, schema.MetadataDocument, &meta); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	jsonData, _ := json.MarshalIndent(meta, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetScanIndex(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dir, err := h.resolveFixtureDir(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var index []schema.ScanIndexEntry
	if err := readFixtureDoc(dir, schema.ScanIndexDocument, &index); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if level := request.GetInt("ms_level", 0); level > 0 {
		filtered := index[:0]
		for _, entry := range index {
			if entry.MSLevel == level {
				filtered = append(filtered, entry)
			}
		}
		index = filtered
	}
	if limit := request.GetInt("limit", 0); limit > 0 && len(index) > limit {
		index = index[:limit]
	}

	jsonData, _ := json.MarshalIndent(index, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetScanEvents(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dir, err := h.resolveFixtureDir(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var events []schema.ScanEvent
	if err := readFixtureDoc(dir, schema.ScanEventsDocument, &events); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if level := request.GetInt("ms_level", 0); level > 0 {
		filtered := events[:0]
		for _, event := range events {
			if event.MSLevel == level {
				filtered = append(filtered, event)
			}
		}
		events = filtered
	}
	if limit := request.GetInt("limit", 0); limit > 0 && len(events) > limit {
		events = events[:limit]
	}

	jsonData, _ := json.MarshalIndent(events, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetPeakArray(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dir, err := h.resolveFixtureDir(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	scan := request.GetInt("scan", 0)
	if scan <= 0 {
		return mcp.NewToolResultError("scan must be a positive scan number"), nil
	}

	var arr schema.PeakArray
	if err := readFixtureDoc(dir, outwriter.PeakDocName(scan), &arr); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("no peak document for scan %d: %v", scan, err)), nil
	}

	jsonData, _ := json.MarshalIndent(arr, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCheckFixture(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dir, err := h.resolveFixtureDir(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := core.CheckFixtureDir(dir)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("check failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
