// Package database defines the dialect contract used by the migration engine to
// inspect and reset target schemas.
//
// A Database binds a connection to one engine; it hands out Schema values, which in turn hand out Table values.
// Schemas and tables are stateless accessors over live database state: every
// call queries the database, nothing is cached, and values may be recreated at
// will.
//
//	db, err := database.Open(ctx, "spanner", database.Options{DSN: dsn}, logger)
//	if err != nil {
//		return err
//	}
//	defer db.Close()
//
//	schema := db.Schema("")
//	if empty, err := schema.Empty(ctx); err != nil || empty {
//		return err
//	}
//
//	// Drop everything, stopping at the first failure
//	if err := schema.Clean(ctx); err != nil {
//		return err
//	}
//
// # Dialects
//
// Concrete engines live in sub-packages and register themselves from init():
//
//	import _ "github.com/pseudomuto/caretaker/pkg/database/spanner"
//
// Each dialect talks to the database exclusively through an Executor, which
// runs statements and exposes a JDBC-style MetaData view of the catalog. The
// sqlexec package provides the database/sql implementation.
//
// # Errors
//
// Every failure reported by the Executor reaches the caller as a *QueryError
// naming the operation and object. No operation retries or swallows errors.
package database
