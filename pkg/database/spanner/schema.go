package spanner

import (
	"context"

	"github.com/pkg/errors"
	"github.com/pseudomuto/caretaker/pkg/database"
	"github.com/pseudomuto/caretaker/pkg/utils"
)

// Schema is a Spanner schema. Only the default schema, named "", exists.
type Schema struct {
	db   *Database
	name string
}

func (s *Schema) Name() string { return s.name }

func (s *Schema) String() string { return s.db.Quote(s.name) }

func (s *Schema) Exists(context.Context) (bool, error) {
	return s.name == "", nil
}

func (s *Schema) Empty(ctx context.Context) (bool, error) {
	tables, err := s.AllTables(ctx)
	if err != nil {
		return false, err
	}

	return len(tables) == 0, nil
}

func (s *Schema) Create(context.Context) error {
	s.db.logger.Info("Google Cloud Spanner does not support creating schemas. Schema not created", "schema", s.name)
	return nil
}

func (s *Schema) Drop(context.Context) error {
	s.db.logger.Info("Google Cloud Spanner does not support dropping schemas. Schema not dropped", "schema", s.name)
	return nil
}

func (s *Schema) Clean(ctx context.Context) error {
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

// AllTables lists the tables without a catalog or schema, which on Spanner is
// every user table. INFORMATION_SCHEMA and SPANNER_SYS views are excluded by
// the same filter.
func (s *Schema) AllTables(ctx context.Context) ([]database.Table, error) {
	rows, err := s.db.exec.MetaData().Tables(ctx, utils.Ptr(""), utils.Ptr(""), nil, nil)
	if err != nil {
		return nil, database.NewQueryError("list tables in schema", database.Label(s), err)
	}
	defer func() { _ = rows.Close() }()

	tables := []database.Table{}
	for rows.Next() {
		var catalog, schema, name, kind string
		if err := rows.Scan(&catalog, &schema, &name, &kind); err != nil {
			return nil, database.NewQueryError("list tables in schema", database.Label(s), errors.Wrap(err, "failed to scan table row"))
		}

		tables = append(tables, s.Table(name))
	}

	if err := rows.Err(); err != nil {
		return nil, database.NewQueryError("list tables in schema", database.Label(s), errors.Wrap(err, "error iterating table rows"))
	}

	return tables, nil
}

func (s *Schema) Table(name string) database.Table {
	return &Table{schema: s, name: name}
}
