package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run tracking.
	DatabaseBackend string

	// DeviceType represents an acquisition device category on the instrument.
	DeviceType string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All run-store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All acquisition devices supported by the reader bridge.
const (
	MSDevice       DeviceType = "MS" // default
	UVDevice       DeviceType = "UV"
	AnalogDevice   DeviceType = "Analog"
	PDADevice      DeviceType = "PDA"
	MSAnalogDevice DeviceType = "MSAnalog"
	OtherDevice    DeviceType = "Other"
)

// MS order values reported by the collaborator's filter enumeration.
// Orders beyond Ms3 pass through as their own integer level.
const (
	OrderMs  = 1
	OrderMs2 = 2
	OrderMs3 = 3
)

// Polarity labels on the wire. Exactly these two ever appear in the
// scan index; the collaborator's own label is passed through in events.
const (
	PositivePolarity = "positive"
	NegativePolarity = "negative"
)

// RawPositiveLabel is the collaborator label that maps to "positive".
// Anything else collapses to "negative" (known asymmetry, kept for
// bit-compatibility with existing fixtures).
const RawPositiveLabel = "Positive"

// Defaults for fields the collaborator does not expose.
const (
	UnknownLabel      = "Unknown"
	NoActivationLabel = "None"
)

// Fixture document names inside an export directory.
const (
	MetadataDocument   = "metadata.json"
	ScanIndexDocument  = "scan_index.json"
	ScanEventsDocument = "scan_events.json"
	PeaksSubdir        = "centroids"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid run-store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidDevices lists all devices the bridge can select.
var ValidDevices = map[DeviceType]struct{}{
	MSDevice:       {},
	UVDevice:       {},
	AnalogDevice:   {},
	PDADevice:      {},
	MSAnalogDevice: {},
	OtherDevice:    {},
}
