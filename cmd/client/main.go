package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/userdir/internal/client/cli"
	"github.com/dmitrijs2005/userdir/internal/client/client"
	"github.com/dmitrijs2005/userdir/internal/client/config"
	"github.com/dmitrijs2005/userdir/internal/client/directory"
	"github.com/dmitrijs2005/userdir/internal/client/repositories/session"
	"github.com/dmitrijs2005/userdir/internal/logging"
)

func main() {
	ctx := context.Background()
	logger := logging.NewText(os.Stderr, slog.LevelWarn)

	cfg := config.LoadConfig()

	db, err := client.InitDatabase(ctx, cfg.SessionDBPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	api, err := client.NewGRPCClient(cfg.ServerEndpointAddr, session.NewSQLiteRepository(db), logger)
	if err != nil {
		logger.Error(ctx, "error creating client", "error", err)
		os.Exit(1)
	}
	defer api.Close()

	s := directory.NewSession(api, api, logger)
	cli.NewApp(s, api, cfg.OnlineCheckInterval, os.Stdin, os.Stdout, logger).Run(ctx)
}
