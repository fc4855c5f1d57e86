package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Peak representation labels used in console output.
const (
	CentroidValue = "centroid"
	ProfileValue  = "profile"
)

// Color variables for console output.
var (
	CentroidColor = color.New(color.FgCyan)            // discrete peak lists, the common case
	ProfileColor  = color.New(color.FgYellow)          // dense traces, larger documents
	FailColor     = color.New(color.FgRed, color.Bold) // structural check failures
	PassColor     = color.New(color.FgGreen)           // structural check passes
)

// GetPlainRepresentation returns the plain text label for a scan's peak
// representation. This is the core logic used for CSV, JSON, and table printing.
func GetPlainRepresentation(isCentroid bool) string {
	if isCentroid {
		return CentroidValue
	}
	return ProfileValue
}

// GetColorRepresentation returns a colored representation label for console
// output (table). It uses GetPlainRepresentation to determine the string,
// and then applies the appropriate color.
func GetColorRepresentation(isCentroid bool) string {
	text := GetPlainRepresentation(isCentroid)
	if isCentroid {
		return CentroidColor.Sprint(text)
	}
	return ProfileColor.Sprint(text)
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It returns os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetRunsDBFilePath returns the path to the SQLite DB file for run tracking.
func GetRunsDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".rawtruth_runs.db"
	}
	return filepath.Join(homeDir, ".rawtruth_runs.db")
}

// TruncatePath truncates a file path to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 to ensure there's space for both the "..." prefix and
// at least one character of content.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
