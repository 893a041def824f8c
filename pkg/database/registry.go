package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/pkg/errors"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Dialect)
)

type (
	// Options configure a connection opened through a Dialect.
	Options struct {
		// DSN is the engine-specific connection string.
		DSN string

		// Cluster is used by engines that distribute DDL across a cluster.
		// Dialects without the concept ignore it.
		Cluster string

		// TLS holds client certificate files for mutual TLS.
		TLS TLSOptions
	}

	// TLSOptions locate the PEM files used for mutual TLS. All three are
	// required when any is set.
	TLSOptions struct {
		CertFile string
		KeyFile  string
		CAFile   string
	}

	// Dialect describes how to connect to an engine and bind the contract to
	// the resulting connection.
	Dialect struct {
		// Name is the key used in configuration, e.g. "spanner".
		Name string

		// Open opens a database/sql handle for the connection options.
		Open func(opts Options) (*sql.DB, error)

		// New binds a Database to an open handle. The Database owns db and
		// closes it on Close.
		New func(db *sql.DB, opts Options, logger *slog.Logger) Database
	}

	// UnknownDialectError is returned when an unregistered dialect is requested.
	UnknownDialectError struct {
		Name      string
		Available []string
	}
)

// Enabled reports whether any TLS file is configured.
func (o TLSOptions) Enabled() bool {
	return o.CertFile != "" || o.KeyFile != "" || o.CAFile != ""
}

func (e *UnknownDialectError) Error() string {
	return fmt.Sprintf("unknown dialect %q (available: %v)", e.Name, e.Available)
}

// Register adds a dialect to the registry, replacing any dialect with the same
// name. Dialect packages call it from init().
func Register(d Dialect) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[d.Name] = d
}

// Lookup returns the dialect registered under name.
func Lookup(name string) (Dialect, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	d, ok := registry[name]
	return d, ok
}

// Dialects returns the names of all registered dialects, sorted.
func Dialects() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open connects to the database using the named dialect and verifies the
// connection before returning. A nil logger discards diagnostics.
func Open(ctx context.Context, dialect string, opts Options, logger *slog.Logger) (Database, error) {
	if dialect == "" {
		return nil, errors.New("dialect not specified")
	}

	d, ok := Lookup(dialect)
	if !ok {
		return nil, &UnknownDialectError{Name: dialect, Available: Dialects()}
	}

	db, err := d.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s connection", dialect)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "failed to connect to %s", dialect)
	}

	logger = Logger(logger).With("dialect", dialect)
	logger.Debug("connected to database")

	return d.New(db, opts, logger), nil
}
