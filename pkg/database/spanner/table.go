package spanner

import (
	"context"

	"github.com/pkg/errors"
	"github.com/pseudomuto/caretaker/pkg/database"
	"github.com/pseudomuto/caretaker/pkg/utils"
)

// Table is a Spanner table.
type Table struct {
	schema *Schema
	name   string
}

func (t *Table) Name() string { return t.name }

func (t *Table) Schema() database.Schema { return t.schema }

// String renders `schema`.`table`, or just `table` in the default schema.
func (t *Table) String() string {
	return t.schema.db.Quote(t.schema.name, t.name)
}

// Exists matches on the bare table name; the schema is not part of the lookup.
func (t *Table) Exists(ctx context.Context) (bool, error) {
	rows, err := t.schema.db.exec.MetaData().Tables(ctx, utils.Ptr(""), utils.Ptr(""), utils.Ptr(t.name), nil)
	if err != nil {
		return false, database.NewQueryError("check whether table exists", t.String(), err)
	}
	defer func() { _ = rows.Close() }()

	found := rows.Next()
	if err := rows.Err(); err != nil {
		return false, database.NewQueryError("check whether table exists", t.String(), err)
	}

	return found, nil
}

// Drop drops the table's secondary indexes in catalog order, then the table.
// Both statements name objects unqualified since Spanner resolves them in the
// default schema.
func (t *Table) Drop(ctx context.Context) error {
	db := t.schema.db

	indexes, err := t.indexes(ctx)
	if err != nil {
		return database.NewQueryError("drop table", t.String(), err)
	}

	for _, index := range indexes {
		db.logger.Debug("dropping index", "table", t.name, "index", index)
		if err := db.exec.Execute(ctx, "DROP INDEX "+db.Quote(index)); err != nil {
			return database.NewQueryError("drop table", t.String(), errors.Wrapf(err, "failed to drop index %s", index))
		}
	}

	db.logger.Debug("dropping table", "table", t.name)
	if err := db.exec.Execute(ctx, "DROP TABLE "+db.Quote(t.name)); err != nil {
		return database.NewQueryError("drop table", t.String(), err)
	}

	return nil
}

// Lock reads the row count of the whole table. Spanner has no table lock; the
// full read is an approximation that serializes competing migration runs.
func (t *Table) Lock(ctx context.Context) error {
	if _, err := t.schema.db.exec.QueryForInt(ctx, "SELECT COUNT(*) FROM "+t.String()); err != nil {
		return database.NewQueryError("lock table", t.String(), err)
	}

	return nil
}

func (t *Table) indexes(ctx context.Context) ([]string, error) {
	rows, err := t.schema.db.exec.MetaData().IndexInfo(ctx, utils.Ptr(""), utils.Ptr(""), t.name, false, false)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var indexes []string
	for rows.Next() {
		var table, index string
		var nonUnique bool
		if err := rows.Scan(&table, &index, &nonUnique); err != nil {
			return nil, errors.Wrap(err, "failed to scan index row")
		}

		indexes = append(indexes, index)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating index rows")
	}

	return indexes, nil
}
