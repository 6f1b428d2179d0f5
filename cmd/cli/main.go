package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophonboard/internal/buildinfo"
	"github.com/dmitrijs2005/gophonboard/internal/client/cli"
	"github.com/dmitrijs2005/gophonboard/internal/client/config"
	"github.com/dmitrijs2005/gophonboard/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, cfg.Verbose)

	app, err := cli.NewApp(ctx, cfg, cli.WithLogger(logger))
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "client stopped", "error", err)
	}

}
