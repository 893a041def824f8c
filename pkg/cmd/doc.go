// Package cmd provides CLI commands for the caretaker tool.
//
// This package implements the command-line interface for caretaker. The
// commands drive the dialect layer in pkg/database: they inspect the schemas a
// migration engine manages and, when explicitly allowed, clean them.
//
// # Available Commands
//
//   - init: Write a default caretaker.yaml
//   - info: Show existence, emptiness and tables of each configured schema
//   - clean: Drop every table in each configured schema
//   - schema create/drop: Create or drop named schemas
//   - dialects: List the registered database dialects
//
// # Global Options
//
// All commands support global flags:
//   - --config, -c: Configuration file (default caretaker.yaml, env CARETAKER_CONFIG)
//   - --dialect: Override database.dialect (env CARETAKER_DIALECT)
//   - --dsn: Override database.dsn (env CARETAKER_DSN)
//   - --cluster: Override database.cluster (env CARETAKER_CLUSTER)
//   - --log-level: debug, info, warn or error
//
// # Example Usage
//
//	caretaker init --dialect spanner
//	caretaker --dsn projects/p/instances/i/databases/d info
//	caretaker clean --force
//	caretaker --dialect clickhouse --dsn localhost:9000 schema create analytics
package cmd
