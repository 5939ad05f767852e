package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/vsinha/wallcalc/pkg/infrastructure/config"
	"github.com/vsinha/wallcalc/pkg/infrastructure/logging"
	"github.com/vsinha/wallcalc/pkg/interfaces/bootstrap"
	wallhttp "github.com/vsinha/wallcalc/pkg/interfaces/http"
)

func main() {
	configFile := flag.String("config", "", "Path to configuration file")
	addr := flag.String("addr", "", "Listen address, overrides http.addr")
	flag.Parse()

	if err := run(*configFile, *addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile, addr string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if addr != "" {
		cfg.HTTP.Addr = addr
	}

	logger, err := logging.NewLogger(cfg.Log.Level, cfg.Log.Format, "wallcalc-server")
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("failed to release resources", zap.Error(err))
		}
	}()

	logger.Info("starting wallcalc server",
		zap.String("storage", cfg.Storage.Driver),
		zap.Bool("redis", cfg.Redis.Addr != ""))

	return wallhttp.NewServerForService(app.Service, logger).Run(ctx, cfg.HTTP.Addr)
}
