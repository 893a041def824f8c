package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/caretaker/pkg/database"
	"github.com/urfave/cli/v3"
)

// cleanCmd drops every table in each configured schema, in the configured
// order, stopping at the first failure. The history table is locked first when
// it exists.
//
// Clean is destructive, so it refuses to run while clean_disabled is true
// unless --force is given.
//
// Example usage:
//
//	caretaker clean --force
func cleanCmd(a *app) *cli.Command {
	return &cli.Command{
		Name:  "clean",
		Usage: "Drop all tables in the configured schemas",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "clean even when clean_disabled is set",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if a.cfg.CleanDisabled && !cmd.Bool("force") {
				return errors.New("clean is disabled (set clean_disabled: false or pass --force)")
			}

			db, err := a.open(ctx)
			if err != nil {
				return err
			}
			defer closeDatabase(db, a.logger)

			history := a.historyTable(db)
			present, err := history.Exists(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to inspect history table")
			}
			if present {
				if err := history.Lock(ctx); err != nil {
					return errors.Wrap(err, "failed to lock history table")
				}
				a.logger.Debug("Locked history table", "table", history.String())
			}

			w := cmd.Root().Writer
			for _, name := range a.cfg.Schemas {
				schema := db.Schema(name)
				logger := a.logger.With(slog.String("schema", database.Label(schema)))

				exists, err := schema.Exists(ctx)
				if err != nil {
					return errors.Wrapf(err, "failed to inspect schema %s", database.Label(schema))
				}
				if !exists {
					logger.Info("Schema does not exist, skipping")
					continue
				}

				logger.Info("Cleaning schema")
				if err := schema.Clean(ctx); err != nil {
					return errors.Wrapf(err, "failed to clean schema %s", database.Label(schema))
				}
				fmt.Fprintf(w, "Cleaned schema %s\n", database.Label(schema))
			}

			return nil
		},
	}
}
