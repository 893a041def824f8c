package clickhouse

import (
	"context"

	"github.com/pseudomuto/caretaker/pkg/database"
)

// Table is any object listed in system.tables: a table, a view or a
// dictionary. The engine is only known for tables returned by AllTables.
type Table struct {
	schema *Schema
	name   string
	engine string
}

func (t *Table) Name() string { return t.name }

func (t *Table) Schema() database.Schema { return t.schema }

func (t *Table) String() string {
	return t.schema.db.Quote(t.schema.name, t.name)
}

func (t *Table) Exists(ctx context.Context) (bool, error) {
	query := "SELECT count() FROM system.tables WHERE database = currentDatabase() AND name = ?"
	args := []any{t.name}
	if t.schema.name != "" {
		query = "SELECT count() FROM system.tables WHERE database = ? AND name = ?"
		args = []any{t.schema.name, t.name}
	}

	n, err := t.schema.db.exec.QueryForInt(ctx, query, args...)
	if err != nil {
		return false, database.NewQueryError("check whether table exists", t.String(), err)
	}

	return n > 0, nil
}

func (t *Table) Drop(ctx context.Context) error {
	db := t.schema.db

	stmt := t.dropKeyword() + " " + t.String() + db.onCluster() + " SYNC"
	db.logger.Debug("dropping table", "table", t.String(), "engine", t.engine)

	if err := db.exec.Execute(ctx, stmt); err != nil {
		return database.NewQueryError("drop table", t.String(), err)
	}

	return nil
}

// Lock reads the table's row count. ClickHouse has no table locks.
func (t *Table) Lock(ctx context.Context) error {
	if _, err := t.schema.db.exec.QueryForInt(ctx, "SELECT count() FROM "+t.String()); err != nil {
		return database.NewQueryError("lock table", t.String(), err)
	}

	return nil
}

func (t *Table) dropKeyword() string {
	switch t.engine {
	case "Dictionary":
		return "DROP DICTIONARY"
	case "View", "MaterializedView", "LiveView", "WindowView":
		return "DROP VIEW"
	default:
		return "DROP TABLE"
	}
}
