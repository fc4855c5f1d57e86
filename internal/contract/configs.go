package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/mzkit/rawtruth/schema"
)

// Default values for configuration.
const (
	DefaultPrecision   = 4
	DefaultStream      = 1
	DefaultBridge      = "rawnet-bridge"
	DefaultScanLimit   = 25
	MaxScanLimit       = 100000
	DefaultReactionIdx = 0
)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for an export or inspection run.
// This struct remains the "final, validated" config.
type Config struct {
	RawPath   string
	OutputDir string

	BridgePath string
	Device     schema.DeviceType
	Stream     int

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	ScanLimit  int
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	RunsBackend   schema.DatabaseBackend
	RunsDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// These are set manually from positional args, so no tag
	RawPathStr   string
	OutputDirStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Bridge        string `mapstructure:"bridge"`
	Device        string `mapstructure:"device"`
	Stream        int    `mapstructure:"stream"`
	Output        string `mapstructure:"output"`
	OutputFile    string `mapstructure:"output-file"`
	Precision     int    `mapstructure:"precision"`
	Limit         int    `mapstructure:"limit"`
	Width         int    `mapstructure:"width"`
	Color         string `mapstructure:"color"`
	RunsBackend   string `mapstructure:"runs-backend"`
	RunsDBConnect string `mapstructure:"runs-db-connect"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	return resolveRawPath(cfg, input)
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// --- Bridge executable ---
	cfg.BridgePath = input.Bridge
	if cfg.BridgePath == "" {
		cfg.BridgePath = DefaultBridge
	}

	// --- Device Validation ---
	cfg.Device = schema.DeviceType(input.Device)
	if _, ok := schema.ValidDevices[cfg.Device]; !ok {
		return fmt.Errorf("invalid device '%s'. must be MS, UV, Analog, PDA, MSAnalog, Other", input.Device)
	}
	if input.Stream <= 0 {
		return fmt.Errorf("stream must be greater than 0 (received %d)", input.Stream)
	}
	cfg.Stream = input.Stream

	// --- Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 8 {
		return fmt.Errorf("precision must be between 1 and 8 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", cfg.Output)
	}

	// --- Scan listing limit ---
	if input.Limit <= 0 || input.Limit > MaxScanLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxScanLimit, input.Limit)
	}
	cfg.ScanLimit = input.Limit

	// --- Color flag ---
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	return nil
}

// validateBackendConfigs validates the run-store backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	backend := schema.DatabaseBackend(strings.ToLower(input.RunsBackend))
	if backend == "" {
		backend = schema.NoneBackend
	}
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return fmt.Errorf("invalid runs backend '%s'. must be sqlite, mysql, postgresql, none", input.RunsBackend)
	}
	cfg.RunsBackend = backend
	cfg.RunsDBConnect = input.RunsDBConnect
	return ValidateDatabaseConnectionString(cfg.RunsBackend, cfg.RunsDBConnect)
}

// resolveRawPath validates the positional input path and output directory.
func resolveRawPath(cfg *Config, input *ConfigRawInput) error {
	if input.RawPathStr != "" {
		info, err := os.Stat(input.RawPathStr)
		if err != nil {
			return fmt.Errorf("RAW file not found: %s", input.RawPathStr)
		}
		if info.IsDir() {
			return fmt.Errorf("RAW path is a directory, expected a file: %s", input.RawPathStr)
		}
		cfg.RawPath = input.RawPathStr
	}
	cfg.OutputDir = input.OutputDirStr
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("runs-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("runs-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") && !strings.HasPrefix(connStr, "postgres://") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter or use a postgres:// URL")
		}
	}
	return nil
}

// ProcessProfilingConfig fills the profiling config from the flag value.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	profile.Enabled = profilePrefix != ""
	profile.Prefix = profilePrefix
	if profile.Enabled && strings.ContainsAny(profilePrefix, " \t") {
		return fmt.Errorf("profile prefix must not contain whitespace (received %q)", profilePrefix)
	}
	return nil
}
