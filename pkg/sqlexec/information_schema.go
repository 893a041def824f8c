package sqlexec

// InformationSchema is a Catalog for engines exposing ANSI-style
// INFORMATION_SCHEMA.TABLES and INFORMATION_SCHEMA.INDEXES views.
type InformationSchema struct {
	// Placeholder renders bind parameters. Defaults to QuestionPlaceholder.
	Placeholder Placeholder

	// IndexTypes restricts IndexInfo to the given INDEX_TYPE values. Engines
	// that list the primary key as an index use this to hide it.
	IndexTypes []string
}

// TablesQuery orders results by catalog, schema and name, like JDBC.
func (c InformationSchema) TablesQuery(catalog, schemaPattern, tableNamePattern *string, types []string) (string, []any) {
	f := NewFilter(c.Placeholder)
	if catalog != nil {
		f.Add("TABLE_CATALOG = %s", *catalog)
	}
	if schemaPattern != nil {
		f.Add("TABLE_SCHEMA LIKE %s", *schemaPattern)
	}
	if tableNamePattern != nil {
		f.Add("TABLE_NAME LIKE %s", *tableNamePattern)
	}
	f.In("TABLE_TYPE", types)

	query := "SELECT TABLE_CATALOG, TABLE_SCHEMA, TABLE_NAME, TABLE_TYPE FROM INFORMATION_SCHEMA.TABLES" +
		f.Where() +
		" ORDER BY TABLE_CATALOG, TABLE_SCHEMA, TABLE_NAME"

	return query, f.Args()
}

// IndexInfoQuery orders unique indexes first, then by name, like JDBC. The
// approximate flag has no meaning without index statistics and is ignored.
func (c InformationSchema) IndexInfoQuery(catalog, schema *string, table string, unique, _ bool) (string, []any) {
	f := NewFilter(c.Placeholder)
	if catalog != nil {
		f.Add("TABLE_CATALOG = %s", *catalog)
	}
	if schema != nil {
		f.Add("TABLE_SCHEMA = %s", *schema)
	}
	f.Add("TABLE_NAME = %s", table)
	if unique {
		f.Raw("IS_UNIQUE")
	}
	f.In("INDEX_TYPE", c.IndexTypes)

	query := "SELECT TABLE_NAME, INDEX_NAME, NOT IS_UNIQUE AS NON_UNIQUE FROM INFORMATION_SCHEMA.INDEXES" +
		f.Where() +
		" ORDER BY NON_UNIQUE, INDEX_NAME"

	return query, f.Args()
}
