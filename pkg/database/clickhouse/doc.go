// Package clickhouse binds the database contract to ClickHouse.
//
// ClickHouse databases play the role of schemas. Unlike Spanner they are real
// objects: Exists consults system.databases, and Create and Drop issue
// CREATE DATABASE and DROP DATABASE, distributed with ON CLUSTER when a cluster
// is configured. The empty schema name stands for the connection's current
// database.
//
// Clean walks system.tables with views first, then dictionaries, then
// everything else, so objects that read from a table are dropped before it.
// Data skipping indexes belong to their table and need no separate drop.
// ClickHouse has no table locks; Table.Lock reads the table's row count, as the
// Spanner dialect does.
//
// The system databases (system, information_schema, INFORMATION_SCHEMA) are
// never created, dropped or cleaned.
//
// Importing the package registers the "clickhouse" dialect. The DSN may be a
// bare host:port or any DSN understood by clickhouse-go:
//
//	import _ "github.com/pseudomuto/caretaker/pkg/database/clickhouse"
//
//	db, err := database.Open(ctx, "clickhouse", database.Options{
//		DSN:     "clickhouse://default:@localhost:9000/default",
//		Cluster: "production",
//		TLS: database.TLSOptions{
//			CertFile: "tls.crt",
//			KeyFile:  "tls.key",
//			CAFile:   "ca.crt",
//		},
//	}, logger)
package clickhouse
