package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/recruit/internal/buildinfo"
	"github.com/dmitrijs2005/recruit/internal/client/cli"
	"github.com/dmitrijs2005/recruit/internal/client/config"
	"github.com/dmitrijs2005/recruit/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn(ctx, "close", "error", err)
		}
	}()

	app.Run(ctx)
}
