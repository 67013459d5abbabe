package main

import (
	"context"
	"fmt"
	"os"

	"kanban/internal/cli"
	"kanban/internal/config"
	"kanban/internal/persistence"
	"kanban/internal/server"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	log.SetOutput(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.SetLevel(log.WarnLevel)

	app := &cli.App{
		JWTSecret:   cfg.JWTSecret,
		TokenTTL:    cfg.JWTExpiry,
		SnapshotKey: cfg.SnapshotKey,
		Snapshots: func(ctx context.Context) (persistence.SnapshotStore, func(), error) {
			backends, err := server.OpenBackends(ctx, cfg)
			if err != nil {
				return nil, nil, err
			}
			return backends.Snapshots, backends.Close, nil
		},
	}

	return cli.NewRootCmd(app).ExecuteContext(context.Background())
}
