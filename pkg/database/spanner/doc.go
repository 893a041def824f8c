// Package spanner binds the database contract to Google Cloud Spanner.
//
// Spanner has no schema-level DDL for the default namespace, refuses to drop a
// table while secondary indexes exist on it, and offers no explicit table lock.
// The dialect accounts for each of these:
//
//   - Only the default schema ("") exists. Creating or dropping a schema is a
//     no-op that is reported at info level.
//   - Table.Drop drops every secondary index of the table before the table
//     itself. The drops are separate DDL statements; a failure part way through
//     leaves the remaining indexes and the table in place and is not retried.
//   - Table.Lock issues SELECT COUNT(*) against the table. The read makes the
//     session depend on the whole table, which is enough to serialize
//     concurrent migration runs for the tool's purposes. It is not an exclusive
//     lock.
//
// Metadata is read from INFORMATION_SCHEMA. Table lookups match on the bare
// table name only, so same-named tables in other contexts are not told apart.
//
// Importing the package registers the "spanner" dialect and the database/sql
// driver of the same name:
//
//	import _ "github.com/pseudomuto/caretaker/pkg/database/spanner"
//
//	db, err := database.Open(ctx, "spanner", database.Options{
//		DSN: "projects/my-project/instances/my-instance/databases/my-db",
//	}, logger)
package spanner
