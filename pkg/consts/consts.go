package consts

import "os"

const (
	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ConfigFile is the default configuration file name
	ConfigFile = "caretaker.yaml"

	// DefaultDialect is used when the configuration does not name one
	DefaultDialect = "spanner"

	// DefaultHistoryTable is the migration history table the migration engine
	// maintains. It is locked while a schema is cleaned.
	DefaultHistoryTable = "schema_history"
)
