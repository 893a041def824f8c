package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/pseudomuto/caretaker/pkg/database"
	"github.com/urfave/cli/v3"
)

// infoCmd reports the state of every configured schema and whether the
// migration history table is present.
//
// Example output:
//
//	Dialect: spanner
//
//	Schema (default)
//	  Exists: true
//	  Empty:  false
//	  Tables: 2
//	    `Albums`
//	    `Singers`
//
//	History table `schema_history`: absent
func infoCmd(a *app) *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "Show the state of the configured schemas",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			db, err := a.open(ctx)
			if err != nil {
				return err
			}
			defer closeDatabase(db, a.logger)

			w := cmd.Root().Writer
			fmt.Fprintf(w, "Dialect: %s\n", db.Dialect())

			for _, name := range a.cfg.Schemas {
				schema := db.Schema(name)
				fmt.Fprintf(w, "\nSchema %s\n", database.Label(schema))

				exists, err := schema.Exists(ctx)
				if err != nil {
					return errors.Wrapf(err, "failed to inspect schema %s", database.Label(schema))
				}
				fmt.Fprintf(w, "  Exists: %t\n", exists)
				if !exists {
					continue
				}

				tables, err := schema.AllTables(ctx)
				if err != nil {
					return errors.Wrapf(err, "failed to inspect schema %s", database.Label(schema))
				}

				fmt.Fprintf(w, "  Empty:  %t\n", len(tables) == 0)
				fmt.Fprintf(w, "  Tables: %d\n", len(tables))
				for _, t := range tables {
					fmt.Fprintf(w, "    %s\n", t)
				}
			}

			history := a.historyTable(db)
			present, err := history.Exists(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to inspect history table")
			}

			state := "absent"
			if present {
				state = "present"
			}
			fmt.Fprintf(w, "\nHistory table %s: %s\n", history, state)
			return nil
		},
	}
}
