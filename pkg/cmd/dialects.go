package cmd

import (
	"context"
	"fmt"

	"github.com/pseudomuto/caretaker/pkg/database"
	"github.com/urfave/cli/v3"
)

func dialectsCmd() *cli.Command {
	return &cli.Command{
		Name:  "dialects",
		Usage: "List the supported database dialects",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			for _, name := range database.Dialects() {
				fmt.Fprintln(cmd.Root().Writer, name)
			}
			return nil
		},
	}
}
