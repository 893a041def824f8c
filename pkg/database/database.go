package database

import (
	"context"
)

type (
	// Database binds the contract to a single engine and connection.
	Database interface {
		// Dialect returns the registered name of the engine, e.g. "spanner".
		Dialect() string

		// Quote renders identifiers as an engine-safe, dot-separated name.
		// Empty parts are skipped, so Quote("", "users") == Quote("users").
		Quote(identifiers ...string) string

		// Schema returns the schema with the given name. It never touches the
		// database; use Schema.Exists to check for it.
		Schema(name string) Schema

		// CurrentSchema returns the schema unqualified names resolve against.
		CurrentSchema(ctx context.Context) (Schema, error)

		// Close releases the underlying connection.
		Close() error
	}

	// Schema is a named grouping of tables. An empty name stands for the
	// connection's default namespace.
	Schema interface {
		Name() string

		// Exists reports whether the schema exists.
		Exists(ctx context.Context) (bool, error)

		// Empty reports whether the schema contains no tables.
		Empty(ctx context.Context) (bool, error)

		// Create creates the schema.
		Create(ctx context.Context) error

		// Drop drops the schema.
		Drop(ctx context.Context) error

		// Clean drops every table returned by AllTables, in order, and stops at
		// the first failure.
		Clean(ctx context.Context) error

		// AllTables lists the tables in the schema in catalog order.
		AllTables(ctx context.Context) ([]Table, error)

		// Table returns the named table in this schema without checking that
		// it exists.
		Table(name string) Table

		// String returns the quoted schema name.
		String() string
	}

	// Table is a single table within a Schema.
	Table interface {
		Name() string
		Schema() Schema

		// Exists reports whether the table exists.
		Exists(ctx context.Context) (bool, error)

		// Drop permanently removes the table along with anything the engine
		// requires to be removed first.
		Drop(ctx context.Context) error

		// Lock serializes concurrent migration runs against the table as well
		// as the engine allows.
		Lock(ctx context.Context) error

		// String returns the qualified, quoted table name used in all SQL
		// emitted for the table.
		String() string
	}

	// Executor runs SQL against a live connection.
	Executor interface {
		Execute(ctx context.Context, query string, args ...any) error
		QueryForInt(ctx context.Context, query string, args ...any) (int, error)
		QueryForString(ctx context.Context, query string, args ...any) (string, error)
		MetaData() MetaData
	}

	// MetaData is a JDBC-style view over the engine's catalog.
	//
	// The catalog and schema arguments distinguish nil, meaning "do not
	// filter", from a pointer to "", meaning "objects without a
	// catalog/schema". Name patterns are SQL LIKE patterns.
	MetaData interface {
		// Tables returns rows of (TABLE_CAT, TABLE_SCHEM, TABLE_NAME, TABLE_TYPE).
		Tables(ctx context.Context, catalog, schemaPattern, tableNamePattern *string, types []string) (Rows, error)

		// IndexInfo returns rows of (TABLE_NAME, INDEX_NAME, NON_UNIQUE) for the
		// indexes defined on table.
		IndexInfo(ctx context.Context, catalog, schema *string, table string, unique, approximate bool) (Rows, error)
	}

	// Rows is the subset of *sql.Rows used to walk metadata results. Callers
	// must always Close it.
	Rows interface {
		Next() bool
		Scan(dest ...any) error
		Err() error
		Close() error
	}
)

// Label names a schema in messages. The default schema quotes to "", so it is
// rendered as "(default)".
func Label(s Schema) string {
	if s.Name() == "" {
		return "(default)"
	}

	return s.String()
}

// TableNames returns the names of the given tables, preserving order.
func TableNames(tables []Table) []string {
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.Name()
	}

	return names
}
