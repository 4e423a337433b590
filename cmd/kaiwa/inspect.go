package main

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	kaiwa "github.com/kaiwadb/kaiwa-go"
)

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Render the derived schema as a human-readable tree",
		ArgsUsage: "<definitions.yaml>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
		},
		Action: runInspect,
	}
}

func runInspect(ctx context.Context, cmd *cli.Command) error {
	logger := newLogger(cmd)
	defer func() { _ = logger.Sync() }()

	path := cmd.Args().First()
	if path == "" {
		return ErrMissingDefinitions
	}

	defs, err := kaiwa.LoadDefinitions(path)
	if err != nil {
		return err
	}

	tables, err := kaiwa.MapDocuments(defs.Documents)
	if err != nil {
		return err
	}

	logger.Info("derived tables", zap.String("path", path), zap.Int("tables", len(tables)))

	color := !cmd.Bool("no-color") && isatty.IsTerminal(os.Stdout.Fd())

	_, err = os.Stdout.WriteString(newRenderer(color).renderTables(tables))

	return err
}
