package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/caretaker/pkg/config"
	"github.com/pseudomuto/caretaker/pkg/consts"
	"github.com/pseudomuto/caretaker/pkg/database"
	"github.com/urfave/cli/v3"

	// Dialects register themselves with pkg/database on import.
	_ "github.com/pseudomuto/caretaker/pkg/database/clickhouse"
	_ "github.com/pseudomuto/caretaker/pkg/database/spanner"
)

type (
	// Version describes the build being run.
	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}

	// app carries the state resolved by the root command's Before hook to the
	// subcommands.
	app struct {
		configPath string
		cfg        *config.Config
		logger     *slog.Logger
	}
)

// Run creates and executes the caretaker CLI application with the given
// version and command-line arguments.
//
// Example usage:
//
//	err := Run(ctx, &Version{Version: "v1.0.0"}, []string{"caretaker", "info"})
func Run(ctx context.Context, version *Version, args []string) error {
	return New(version).Run(ctx, args)
}

// New builds the root command. Output is written to the command's Writer and
// log records to its ErrWriter.
func New(version *Version) *cli.Command {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", version.Timestamp)
	}

	a := &app{}

	return &cli.Command{
		Name:  "caretaker",
		Usage: "Inspect and reset the schemas managed by your migrations",
		Description: `caretaker works with the schemas a migration engine manages. It reports
whether schemas exist and what they contain, creates and drops schemas, and
cleans them by dropping every table they hold.`,
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the caretaker config file",
				Sources: cli.EnvVars("CARETAKER_CONFIG"),
				Value:   consts.ConfigFile,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringFlag{
				Name:    "dialect",
				Usage:   "the database dialect (see the dialects command)",
				Sources: cli.EnvVars("CARETAKER_DIALECT"),
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringFlag{
				Name:    "dsn",
				Usage:   "the database connection string",
				Sources: cli.EnvVars("CARETAKER_DSN"),
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringFlag{
				Name:    "cluster",
				Usage:   "ClickHouse cluster name for distributed deployments",
				Sources: cli.EnvVars("CARETAKER_CLUSTER"),
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
				Value: "info",
			},
		},
		Before: a.setup,
		Commands: []*cli.Command{
			initCmd(a),
			infoCmd(a),
			cleanCmd(a),
			schemaCmd(a),
			dialectsCmd(),
		},
	}
}

func (a *app) setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cmd.String("log-level"))); err != nil {
		return ctx, errors.Wrap(err, "invalid log level")
	}

	var w io.Writer = os.Stderr
	if cmd.ErrWriter != nil {
		w = cmd.ErrWriter
	}
	a.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))

	a.configPath = cmd.String("config")
	cfg, err := config.LoadConfigFile(a.configPath)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			return ctx, err
		}

		a.logger.Debug("No config file found, using defaults", "path", a.configPath)
		cfg = config.Default()
	}

	if cmd.IsSet("dialect") {
		cfg.Database.Dialect = cmd.String("dialect")
	}
	if cmd.IsSet("dsn") {
		cfg.Database.DSN = cmd.String("dsn")
	}
	if cmd.IsSet("cluster") {
		cfg.Database.Cluster = cmd.String("cluster")
	}

	a.cfg = cfg
	return ctx, nil
}

// open connects to the configured database. Callers must Close the result.
func (a *app) open(ctx context.Context) (database.Database, error) {
	if a.cfg.Database.DSN == "" {
		return nil, errors.New("no DSN configured (set database.dsn, --dsn or CARETAKER_DSN)")
	}

	a.logger.Debug("Connecting to database", "dialect", a.cfg.Database.Dialect)
	return database.Open(ctx, a.cfg.Database.Dialect, a.cfg.Database.Options(), a.logger)
}

// historyTable is the migration history table, which lives in the first
// configured schema.
func (a *app) historyTable(db database.Database) database.Table {
	return db.Schema(a.cfg.Schemas[0]).Table(a.cfg.HistoryTable)
}

func closeDatabase(db database.Database, logger *slog.Logger) {
	if err := db.Close(); err != nil {
		logger.Warn("Failed to close database", "error", err)
	}
}
