package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/driverdesk/internal/buildinfo"
	"github.com/dmitrijs2005/driverdesk/internal/client/cli"
	"github.com/dmitrijs2005/driverdesk/internal/client/config"
	"github.com/dmitrijs2005/driverdesk/internal/common"
	"github.com/dmitrijs2005/driverdesk/internal/filex"
	"github.com/dmitrijs2005/driverdesk/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	var logOut io.Writer = os.Stderr
	if cfg.LogFile != "" {
		if err := filex.EnsureParentDir(cfg.LogFile); err != nil {
			log.Fatalf("%v", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := logging.New(logOut, cfg.LogLevel, cfg.LogFormat)
	logger.SetDefault()

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, common.ErrSessionClosed) {
		logger.Error(ctx, "session ended with error", "error", err)
		os.Exit(1)
	}
}
