package main

import (
	"log/slog"
	"os"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	"github.com/ericfisherdev/prtriage/internal/adapter/driving/cli"
	"github.com/ericfisherdev/prtriage/internal/config"
	"github.com/ericfisherdev/prtriage/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))
	slog.SetDefault(logger)

	opts := &cli.Options{Config: cfg, Logger: logger}
	if err := cli.Execute(os.Args[1:], opts); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
