package spanner

import (
	"context"
	"database/sql"
	"io"
	"log/slog"

	_ "github.com/googleapis/go-sql-spanner" // registers the "spanner" driver
	"github.com/pkg/errors"
	"github.com/pseudomuto/caretaker/pkg/database"
	"github.com/pseudomuto/caretaker/pkg/sqlexec"
	"github.com/pseudomuto/caretaker/pkg/utils"
)

// DialectName is the name the dialect is registered under.
const DialectName = "spanner"

// Catalog reads Spanner's INFORMATION_SCHEMA. Primary keys show up as indexes
// of type PRIMARY_KEY and cannot be dropped, so only secondary indexes are
// listed.
var Catalog = sqlexec.InformationSchema{
	Placeholder: sqlexec.AtPlaceholder,
	IndexTypes:  []string{"INDEX"},
}

func init() {
	database.Register(database.Dialect{
		Name: DialectName,
		Open: Open,
		New: func(db *sql.DB, _ database.Options, logger *slog.Logger) database.Database {
			return New(sqlexec.New(db, Catalog, logger), logger)
		},
	})
}

// Open opens a database/sql handle for a DSN of the form
// projects/P/instances/I/databases/D. Credentials come from the DSN or the
// environment, so TLS files are rejected.
func Open(opts database.Options) (*sql.DB, error) {
	if opts.TLS.Enabled() {
		return nil, errors.New("spanner does not accept TLS files; configure credentials in the DSN")
	}

	return sql.Open("spanner", opts.DSN)
}

// Database is the Spanner implementation of database.Database.
type Database struct {
	exec   database.Executor
	logger *slog.Logger
}

// New binds the dialect to an executor. If exec implements io.Closer, Close
// closes it.
func New(exec database.Executor, logger *slog.Logger) *Database {
	return &Database{
		exec:   exec,
		logger: database.Logger(logger),
	}
}

func (d *Database) Dialect() string { return DialectName }

func (d *Database) Quote(identifiers ...string) string {
	return utils.BacktickIdentifier(identifiers...)
}

func (d *Database) Schema(name string) database.Schema {
	return &Schema{db: d, name: name}
}

// CurrentSchema is always the default schema.
func (d *Database) CurrentSchema(context.Context) (database.Schema, error) {
	return d.Schema(""), nil
}

func (d *Database) Close() error {
	if c, ok := d.exec.(io.Closer); ok {
		return c.Close()
	}

	return nil
}
