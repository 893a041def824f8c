package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/pseudomuto/caretaker/pkg/database"
	"github.com/urfave/cli/v3"
)

// schemaCmd groups the schema DDL subcommands. Dialects that cannot create or
// drop schemas log the request and leave the database unchanged.
//
// Example usage:
//
//	caretaker schema create analytics staging
//	caretaker schema drop staging
func schemaCmd(a *app) *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "Commands for creating and dropping schemas",
		Commands: []*cli.Command{
			schemaAction(a, "create", "Create schemas", "Created", database.Schema.Create),
			schemaAction(a, "drop", "Drop schemas", "Dropped", database.Schema.Drop),
		},
	}
}

func schemaAction(a *app, name, usage, verb string, fn func(database.Schema, context.Context) error) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "NAME...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			names := cmd.Args().Slice()
			if len(names) == 0 {
				return errors.New("at least one schema name is required")
			}

			db, err := a.open(ctx)
			if err != nil {
				return err
			}
			defer closeDatabase(db, a.logger)

			for _, n := range names {
				schema := db.Schema(n)
				if err := fn(schema, ctx); err != nil {
					return errors.Wrapf(err, "failed to %s schema %s", name, database.Label(schema))
				}
				fmt.Fprintf(cmd.Root().Writer, "%s schema %s\n", verb, database.Label(schema))
			}

			return nil
		},
	}
}
