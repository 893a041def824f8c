package clickhouse

import (
	"context"

	"github.com/pkg/errors"
	"github.com/pseudomuto/caretaker/pkg/database"
	"github.com/pseudomuto/caretaker/pkg/sqlexec"
	"github.com/pseudomuto/caretaker/pkg/utils"
)

// Schema is a ClickHouse database. The empty name is the current database.
type Schema struct {
	db   *Database
	name string
}

func (s *Schema) Name() string { return s.name }

func (s *Schema) String() string { return s.db.Quote(s.name) }

func (s *Schema) Exists(ctx context.Context) (bool, error) {
	if s.name == "" {
		return true, nil
	}

	n, err := s.db.exec.QueryForInt(ctx, "SELECT count() FROM system.databases WHERE name = ?", s.name)
	if err != nil {
		return false, database.NewQueryError("check whether schema exists", s.String(), err)
	}

	return n > 0, nil
}

func (s *Schema) Empty(ctx context.Context) (bool, error) {
	tables, err := s.AllTables(ctx)
	if err != nil {
		return false, err
	}

	return len(tables) == 0, nil
}

func (s *Schema) Create(ctx context.Context) error {
	if s.name == "" {
		s.db.logger.Info("The current database always exists. Schema not created")
		return nil
	}

	if isSystemDatabase(s.name) {
		return errors.Errorf("refusing to create system database %s", s.String())
	}

	stmt := "CREATE DATABASE IF NOT EXISTS " + s.String() + s.db.onCluster()
	if err := s.db.exec.Execute(ctx, stmt); err != nil {
		return database.NewQueryError("create schema", s.String(), err)
	}

	return nil
}

func (s *Schema) Drop(ctx context.Context) error {
	if s.name == "" {
		return errors.New("refusing to drop the current database without naming it")
	}

	if isSystemDatabase(s.name) {
		return errors.Errorf("refusing to drop system database %s", s.String())
	}

	stmt := "DROP DATABASE IF EXISTS " + s.String() + s.db.onCluster() + " SYNC"
	if err := s.db.exec.Execute(ctx, stmt); err != nil {
		return database.NewQueryError("drop schema", s.String(), err)
	}

	return nil
}

func (s *Schema) Clean(ctx context.Context) error {
	if isSystemDatabase(s.name) {
		return errors.Errorf("refusing to clean system database %s", s.String())
	}

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

// AllTables lists the objects in this database. The name is matched exactly;
// rows reported for any other database are skipped.
func (s *Schema) AllTables(ctx context.Context) ([]database.Table, error) {
	rows, err := s.db.exec.MetaData().Tables(ctx, nil, utils.Ptr(sqlexec.EscapeLike(s.name)), nil, nil)
	if err != nil {
		return nil, database.NewQueryError("list tables in schema", database.Label(s), err)
	}
	defer func() { _ = rows.Close() }()

	tables := []database.Table{}
	for rows.Next() {
		var catalog, schema, name, engine string
		if err := rows.Scan(&catalog, &schema, &name, &engine); err != nil {
			return nil, database.NewQueryError("list tables in schema", database.Label(s), errors.Wrap(err, "failed to scan table row"))
		}

		if s.name != "" && schema != s.name {
			s.db.logger.Debug("skipping table from another database", "database", schema, "table", name)
			continue
		}

		tables = append(tables, &Table{schema: s, name: name, engine: engine})
	}

	if err := rows.Err(); err != nil {
		return nil, database.NewQueryError("list tables in schema", database.Label(s), errors.Wrap(err, "error iterating table rows"))
	}

	return tables, nil
}

func (s *Schema) Table(name string) database.Table {
	return &Table{schema: s, name: name}
}
