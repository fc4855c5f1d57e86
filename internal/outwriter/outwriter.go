// Package outwriter has output and writer logic for fixture documents and
// console listings.
package outwriter

import (
	"os"

	"github.com/mzkit/rawtruth/internal/contract"
	"golang.org/x/term"
)

// getMaxTableFilterWidth calculates the maximum width for filter strings in
// table output based on terminal width and the fixed scan columns.
func getMaxTableFilterWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns with table formatting:
	// Scan + RT + TIC + Base Peak + Level + Polarity + Repr, plus borders,
	// separators, and padding.
	baseWidth := 75

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable filter width
		return 15
	}
	if available > 70 {
		// Maximum filter width to prevent overly long lines
		return 70
	}
	return available
}
