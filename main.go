package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/econectar/econectar-web/config"
	"github.com/econectar/econectar-web/internal/router"
)

var configPath = flag.String("c", "config.yaml", "Path to the configuration file (in YAML format)")

func main() {
	flag.Parse()

	cfg, err := config.InitConfig(*configPath)
	if err != nil {
		slog.Error("fail to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.SetLogLoggerLevel(cfg.LogLevel)
	slog.Info("starting econectar-web server...")

	r, err := router.NewRouter(cfg)
	if err != nil {
		slog.Error("fail to initialize router", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.InitRoutes()

	errCh := make(chan error, 1)
	go func() {
		errCh <- r.Listen(cfg.Listen)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("server stopped unexpectedly", slog.String("error", err.Error()))
		}
	case sig := <-sigCh:
		slog.Info("shutting down on signal", slog.String("signal", sig.String()))
	}

	if err := r.Close(); err != nil {
		slog.Error("fail to shut down cleanly", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
