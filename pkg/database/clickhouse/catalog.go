package clickhouse

import (
	"github.com/pseudomuto/caretaker/pkg/sqlexec"
)

// Catalog reads ClickHouse's system tables.
//
// ClickHouse has no catalogs, so the catalog argument is ignored. A schema of
// "" selects the current database. Tables are ordered views first, then
// dictionaries, then everything else, and the hidden .inner tables backing
// materialized views are left out since they go away with their view.
type Catalog struct{}

// TablesQuery reports the engine as TABLE_TYPE.
func (Catalog) TablesQuery(_, schemaPattern, tableNamePattern *string, types []string) (string, []any) {
	f := sqlexec.NewFilter(sqlexec.QuestionPlaceholder).
		Raw("is_temporary = 0").
		Raw("name NOT LIKE '.inner%'")

	if schemaPattern != nil {
		if *schemaPattern == "" {
			f.Raw("database = currentDatabase()")
		} else {
			f.Add("database LIKE %s", *schemaPattern)
		}
	}
	if tableNamePattern != nil {
		f.Add("name LIKE %s", *tableNamePattern)
	}
	f.In("engine", types)

	query := "SELECT '' AS TABLE_CAT, database AS TABLE_SCHEM, name AS TABLE_NAME, engine AS TABLE_TYPE FROM system.tables" +
		f.Where() +
		" ORDER BY multiIf(engine IN ('View', 'MaterializedView', 'LiveView', 'WindowView'), 0, engine = 'Dictionary', 1, 2), database, name"

	return query, f.Args()
}

// IndexInfoQuery lists data skipping indexes, none of which are unique.
func (Catalog) IndexInfoQuery(_, schema *string, table string, unique, _ bool) (string, []any) {
	f := sqlexec.NewFilter(sqlexec.QuestionPlaceholder)
	if schema != nil {
		if *schema == "" {
			f.Raw("database = currentDatabase()")
		} else {
			f.Add("database = %s", *schema)
		}
	}
	f.Add("table = %s", table)
	if unique {
		f.Raw("0")
	}

	query := "SELECT table AS TABLE_NAME, name AS INDEX_NAME, true AS NON_UNIQUE FROM system.data_skipping_indices" +
		f.Where() +
		" ORDER BY name"

	return query, f.Args()
}
