package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/recruit/internal/buildinfo"
	"github.com/dmitrijs2005/recruit/internal/logging"
	"github.com/dmitrijs2005/recruit/internal/stubapi"
	"github.com/dmitrijs2005/recruit/internal/stubapi/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewJSON(os.Stdout, cfg.LogLevel)

	srv := stubapi.NewServer(cfg.Addr, stubapi.NewData(), logger, cfg.SecretKey, cfg.TokenValidityDuration)
	if err := srv.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
