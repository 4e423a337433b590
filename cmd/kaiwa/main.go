// Command kaiwa derives query-service schema payloads from document
// definition files.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	cmd := &cli.Command{
		Name:  "kaiwa",
		Usage: "Derive schema tables from document definitions",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable verbose logging",
			},
		},
		Commands: []*cli.Command{
			tablesCommand(),
			inspectCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "kaiwa:", err)
		os.Exit(1)
	}
}

// newLogger returns a development logger when --verbose is set, else a
// no-op logger.
func newLogger(cmd *cli.Command) *zap.Logger {
	if cmd.Bool("verbose") {
		return zap.Must(zap.NewDevelopment())
	}

	return zap.NewNop()
}
