package clickhouse

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/pkg/errors"
	"github.com/pseudomuto/caretaker/pkg/database"
	"github.com/pseudomuto/caretaker/pkg/sqlexec"
	"github.com/pseudomuto/caretaker/pkg/utils"
)

// DialectName is the name the dialect is registered under.
const DialectName = "clickhouse"

// systemDatabases are managed by ClickHouse itself and are never modified.
var systemDatabases = []string{
	"system",
	"information_schema",
	"INFORMATION_SCHEMA",
}

func init() {
	database.Register(database.Dialect{
		Name: DialectName,
		Open: Open,
		New: func(db *sql.DB, opts database.Options, logger *slog.Logger) database.Database {
			return New(sqlexec.New(db, Catalog{}, logger), opts.Cluster, logger)
		},
	})
}

// Open opens a database/sql handle. A DSN without a scheme is treated as a
// native protocol host:port. Configured TLS files enable mutual TLS.
func Open(opts database.Options) (*sql.DB, error) {
	dsn := opts.DSN
	if !strings.Contains(dsn, "://") {
		dsn = "clickhouse://" + dsn
	}

	chOpts, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse DSN")
	}

	if opts.TLS.Enabled() {
		if chOpts.TLS, err = TLSConfig(opts.TLS); err != nil {
			return nil, err
		}
	}

	return clickhouse.OpenDB(chOpts), nil
}

// Database is the ClickHouse implementation of database.Database.
type Database struct {
	exec    database.Executor
	cluster string
	logger  *slog.Logger
}

// New binds the dialect to an executor. DDL is distributed with ON CLUSTER
// when cluster is non-empty.
func New(exec database.Executor, cluster string, logger *slog.Logger) *Database {
	return &Database{
		exec:    exec,
		cluster: cluster,
		logger:  database.Logger(logger),
	}
}

// Executor returns the executor the dialect runs statements through.
func (d *Database) Executor() database.Executor { return d.exec }

func (d *Database) Dialect() string { return DialectName }

func (d *Database) Quote(identifiers ...string) string {
	return utils.BacktickIdentifier(identifiers...)
}

func (d *Database) Schema(name string) database.Schema {
	return &Schema{db: d, name: name}
}

// CurrentSchema resolves the connection's current database.
func (d *Database) CurrentSchema(ctx context.Context) (database.Schema, error) {
	name, err := d.exec.QueryForString(ctx, "SELECT currentDatabase()")
	if err != nil {
		return nil, database.NewQueryError("resolve current database", "", err)
	}

	return d.Schema(name), nil
}

func (d *Database) Close() error {
	if c, ok := d.exec.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

func (d *Database) onCluster() string {
	if d.cluster == "" {
		return ""
	}

	return " ON CLUSTER " + d.Quote(d.cluster)
}

func isSystemDatabase(name string) bool {
	return slices.Contains(systemDatabases, name)
}
