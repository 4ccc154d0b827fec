package config

// Default configuration values.
const (
	// DefaultPath is scanned when no directory argument is given.
	DefaultPath = "."

	// DefaultOutput is the formatter used when none is requested.
	DefaultOutput = "pretty"

	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"
)

// DefaultExclusions are paths skipped during scanning. The .zfs control
// directory exposes snapshots of the data being analyzed; including it
// would count every file once per snapshot and skew the distribution.
var DefaultExclusions = []string{".zfs"}
