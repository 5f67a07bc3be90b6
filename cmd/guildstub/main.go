// Command guildstub serves a local stand-in for the roster API backed by sqlite.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/10Draken01/Docker-Front/internal/config"
	"github.com/10Draken01/Docker-Front/internal/log"
	"github.com/10Draken01/Docker-Front/internal/storage"
	"github.com/10Draken01/Docker-Front/internal/stubapi"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "guildstub: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configFile := flag.String("config", "./data/config.json", "path to the configuration file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	seed := flag.String("seed", "", "roster export (json or xml) to import on startup")
	level := flag.String("log-level", "INFO", "log level: COMMAND, ERROR, WARN, INFO or DEBUG")
	flag.Parse()

	config.SetPath(*configFile)
	if err := config.ConfigLoad(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg := config.ConfigGet()
	if *addr != "" {
		cfg.StubAddr = *addr
	}

	logger := log.NewWriterLogger(os.Stderr, log.ParseLevel(*level))
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.NewStorage(cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	if *seed != "" {
		roster, err := storage.FileImport(*seed, storage.FormatFromFilename(*seed))
		if err != nil {
			return fmt.Errorf("failed to read seed %s: %w", *seed, err)
		}
		n, err := store.UserImport(ctx, roster.Users)
		if err != nil {
			return fmt.Errorf("failed to import seed: %w", err)
		}
		logger.Info(ctx, "Seed imported", log.Fields{"file": *seed, "imported": n, "total": len(roster.Users)})
	}

	return stubapi.NewServer(cfg.StubAddr, store, logger).Run(ctx)
}
