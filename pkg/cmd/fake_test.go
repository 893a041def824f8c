package cmd

import (
	"context"
	"database/sql"
	"log/slog"
	"slices"
	"sync"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/pseudomuto/caretaker/pkg/database"
	"github.com/pseudomuto/caretaker/pkg/utils"
)

const fakeDialect = "fake"

var (
	enginesMu sync.Mutex
	engines   = map[string]*fakeEngine{}
)

func init() {
	database.Register(database.Dialect{
		Name: fakeDialect,
		Open: func(database.Options) (*sql.DB, error) {
			db, _, err := sqlmock.New()
			return db, err
		},
		New: func(db *sql.DB, opts database.Options, _ *slog.Logger) database.Database {
			enginesMu.Lock()
			defer enginesMu.Unlock()

			e, ok := engines[opts.DSN]
			if !ok {
				e = newFakeEngine()
				engines[opts.DSN] = e
			}
			return &fakeDatabase{db: db, engine: e}
		},
	})
}

// fakeEngine is the in-memory state behind a DSN. Schemas map to their tables
// in the order AllTables returns them.
type fakeEngine struct {
	schemas  map[string][]string
	locked   []string
	failDrop string
	closed   int
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{schemas: map[string][]string{"": nil}}
}

// useEngine installs state for dsn and returns it for inspection.
func useEngine(dsn string, schemas map[string][]string) *fakeEngine {
	enginesMu.Lock()
	defer enginesMu.Unlock()

	e := &fakeEngine{schemas: schemas}
	engines[dsn] = e
	return e
}

type (
	fakeDatabase struct {
		db     *sql.DB
		engine *fakeEngine
	}

	fakeSchema struct {
		db   *fakeDatabase
		name string
	}

	fakeTable struct {
		schema *fakeSchema
		name   string
	}
)

func (d *fakeDatabase) Dialect() string { return fakeDialect }

func (d *fakeDatabase) Quote(identifiers ...string) string {
	return utils.BacktickIdentifier(identifiers...)
}

func (d *fakeDatabase) Schema(name string) database.Schema {
	return &fakeSchema{db: d, name: name}
}

func (d *fakeDatabase) CurrentSchema(context.Context) (database.Schema, error) {
	return d.Schema(""), nil
}

func (d *fakeDatabase) Close() error {
	d.engine.closed++
	_ = d.db.Close()
	return nil
}

func (s *fakeSchema) Name() string   { return s.name }
func (s *fakeSchema) String() string { return s.db.Quote(s.name) }

func (s *fakeSchema) Exists(context.Context) (bool, error) {
	_, ok := s.db.engine.schemas[s.name]
	return ok, nil
}

func (s *fakeSchema) Empty(ctx context.Context) (bool, error) {
	tables, err := s.AllTables(ctx)
	return len(tables) == 0, err
}

func (s *fakeSchema) Create(context.Context) error {
	if _, ok := s.db.engine.schemas[s.name]; !ok {
		s.db.engine.schemas[s.name] = nil
	}
	return nil
}

func (s *fakeSchema) Drop(context.Context) error {
	if _, ok := s.db.engine.schemas[s.name]; !ok {
		return database.NewQueryError("drop schema", s.String(), errors.New("schema not found"))
	}
	delete(s.db.engine.schemas, s.name)
	return nil
}

func (s *fakeSchema) Clean(ctx context.Context) error {
	tables, err := s.AllTables(ctx)
	if err != nil {
		return err
	}

	for _, t := range tables {
		if err := t.Drop(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *fakeSchema) AllTables(context.Context) ([]database.Table, error) {
	names := s.db.engine.schemas[s.name]
	tables := make([]database.Table, 0, len(names))
	for _, n := range names {
		tables = append(tables, s.Table(n))
	}
	return tables, nil
}

func (s *fakeSchema) Table(name string) database.Table {
	return &fakeTable{schema: s, name: name}
}

func (t *fakeTable) Name() string            { return t.name }
func (t *fakeTable) Schema() database.Schema { return t.schema }
func (t *fakeTable) String() string          { return t.schema.db.Quote(t.schema.name, t.name) }

func (t *fakeTable) Exists(context.Context) (bool, error) {
	return slices.Contains(t.schema.db.engine.schemas[t.schema.name], t.name), nil
}

func (t *fakeTable) Drop(context.Context) error {
	e := t.schema.db.engine
	if e.failDrop == t.name {
		return database.NewQueryError("drop table", t.String(), errors.New("table is in use"))
	}

	e.schemas[t.schema.name] = slices.DeleteFunc(e.schemas[t.schema.name], func(n string) bool {
		return n == t.name
	})
	return nil
}

func (t *fakeTable) Lock(context.Context) error {
	e := t.schema.db.engine
	e.locked = append(e.locked, t.String())
	return nil
}
