package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/caretaker/pkg/consts"
	"github.com/urfave/cli/v3"
)

// initCmd writes a default configuration file. Global --dialect, --dsn and
// --cluster values are written into it. An existing file is never overwritten.
//
// Example usage:
//
//	caretaker init
//	caretaker --dialect clickhouse --dsn localhost:9000 init
func initCmd(a *app) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a default caretaker.yaml",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := os.Stat(a.configPath); err == nil {
				return errors.Errorf("%s already exists", a.configPath)
			} else if !os.IsNotExist(err) {
				return errors.Wrapf(err, "failed to stat %s", a.configPath)
			}

			f, err := os.OpenFile(a.configPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, consts.ModeFile)
			if err != nil {
				return errors.Wrapf(err, "failed to create %s", a.configPath)
			}
			defer func() { _ = f.Close() }()

			if err := a.cfg.Write(f); err != nil {
				return err
			}

			fmt.Fprintf(cmd.Root().Writer, "Wrote %s\n", a.configPath)
			return nil
		},
	}
}
