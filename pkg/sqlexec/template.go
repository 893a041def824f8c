package sqlexec

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/caretaker/pkg/database"
)

type (
	// Catalog builds the metadata queries for an engine. Both methods return
	// the SQL and its arguments; the result columns must match the ones
	// documented on database.MetaData.
	Catalog interface {
		TablesQuery(catalog, schemaPattern, tableNamePattern *string, types []string) (string, []any)
		IndexInfoQuery(catalog, schema *string, table string, unique, approximate bool) (string, []any)
	}

	// Template is a database.Executor backed by a *sql.DB.
	Template struct {
		db      *sql.DB
		catalog Catalog
		logger  *slog.Logger
	}

	metaData struct {
		t *Template
	}
)

// New creates a Template. A nil logger discards statement tracing.
func New(db *sql.DB, catalog Catalog, logger *slog.Logger) *Template {
	return &Template{
		db:      db,
		catalog: catalog,
		logger:  database.Logger(logger),
	}
}

// Close closes the underlying handle.
func (t *Template) Close() error {
	return t.db.Close()
}

// Execute runs a statement that returns no rows.
func (t *Template) Execute(ctx context.Context, query string, args ...any) error {
	t.logger.Debug("executing statement", "sql", query)

	if _, err := t.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "failed to execute statement")
	}

	return nil
}

// QueryForInt runs a query returning a single integer column in a single row.
func (t *Template) QueryForInt(ctx context.Context, query string, args ...any) (int, error) {
	t.logger.Debug("executing query", "sql", query)

	var n int64
	if err := t.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "failed to query for int")
	}

	return int(n), nil
}

// QueryForString runs a query returning a single string column in a single row.
func (t *Template) QueryForString(ctx context.Context, query string, args ...any) (string, error) {
	t.logger.Debug("executing query", "sql", query)

	var s string
	if err := t.db.QueryRowContext(ctx, query, args...).Scan(&s); err != nil {
		return "", errors.Wrap(err, "failed to query for string")
	}

	return s, nil
}

// MetaData returns the catalog view of the connection.
func (t *Template) MetaData() database.MetaData {
	return &metaData{t: t}
}

func (t *Template) query(ctx context.Context, query string, args []any) (database.Rows, error) {
	t.logger.Debug("executing metadata query", "sql", query)

	//nolint:rowserrcheck // rows.Err() must be checked by caller after iteration completes
	rows, err := t.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query metadata")
	}

	return rows, nil
}

func (m *metaData) Tables(ctx context.Context, catalog, schemaPattern, tableNamePattern *string, types []string) (database.Rows, error) {
	query, args := m.t.catalog.TablesQuery(catalog, schemaPattern, tableNamePattern, types)
	return m.t.query(ctx, query, args)
}

func (m *metaData) IndexInfo(ctx context.Context, catalog, schema *string, table string, unique, approximate bool) (database.Rows, error) {
	query, args := m.t.catalog.IndexInfoQuery(catalog, schema, table, unique, approximate)
	return m.t.query(ctx, query, args)
}
