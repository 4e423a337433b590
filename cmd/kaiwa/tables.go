package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	kaiwa "github.com/kaiwadb/kaiwa-go"
)

// Tables command errors.
var (
	ErrMissingDefinitions = errors.New("missing definitions file argument")
	ErrUnknownEngine      = errors.New("unknown engine")
	ErrMissingEngine      = errors.New("--engine is required with --instance")
)

func tablesCommand() *cli.Command {
	return &cli.Command{
		Name:      "tables",
		Usage:     "Derive tables from a definitions file and emit the JSON payload",
		ArgsUsage: "<definitions.yaml>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output file (default: stdout)",
			},
			&cli.StringFlag{
				Name:  "instance",
				Usage: "wrap the tables in a registration payload with this identifier",
			},
			&cli.StringFlag{
				Name:  "description",
				Usage: "instance description for the registration payload",
			},
			&cli.StringFlag{
				Name:    "engine",
				Aliases: []string{"e"},
				Usage:   "target engine (mongo, postgres, mysql, mssql, oracle, sqlite, mariadb, clickhouse)",
			},
			&cli.IntFlag{
				Name:  "engine-version",
				Usage: "target engine version",
			},
		},
		Action: runTables,
	}
}

func runTables(ctx context.Context, cmd *cli.Command) error {
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

	logger.Info("loaded definitions",
		zap.String("path", path),
		zap.Int("documents", len(defs.Documents)),
		zap.Int("enums", len(defs.Enums)),
	)

	tables, err := kaiwa.MapDocuments(defs.Documents)
	if err != nil {
		return err
	}

	logger.Info("derived tables", zap.Int("tables", len(tables)))

	var payload any = tables

	if identifier := cmd.String("instance"); identifier != "" {
		engine, err := engineForFlags(cmd)
		if err != nil {
			return err
		}

		payload = &kaiwa.Instance{
			Name:        identifier,
			Description: cmd.String("description"),
			Engine:      engine,
			Tables:      tables,
		}
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	data = append(data, '\n')

	if out := cmd.String("out"); out != "" {
		return os.WriteFile(out, data, 0o644)
	}

	_, err = os.Stdout.Write(data)

	return err
}

// engineForFlags resolves the --engine/--engine-version flags to an engine
// descriptor.
func engineForFlags(cmd *cli.Command) (kaiwa.Engine, error) {
	version := int(cmd.Int("engine-version"))

	switch name := cmd.String("engine"); name {
	case "mongo":
		return kaiwa.Mongo{Version: version}, nil
	case "postgres":
		return kaiwa.PostgreSQL{Version: version}, nil
	case "mysql":
		return kaiwa.MySQL{Version: version}, nil
	case "mssql":
		return kaiwa.MSSQL{Version: version}, nil
	case "oracle":
		return kaiwa.Oracle{Version: version}, nil
	case "sqlite":
		return kaiwa.SQLite{Version: version}, nil
	case "mariadb":
		return kaiwa.MariaDB{Version: version}, nil
	case "clickhouse":
		return kaiwa.ClickHouse{}, nil
	case "":
		return nil, ErrMissingEngine
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEngine, name)
	}
}
