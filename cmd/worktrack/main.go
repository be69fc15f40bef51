// Package main is the entry point for the worktrack CLI.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"worktrack/internal/backend/filestore"
	"worktrack/internal/backend/googletasks"
	"worktrack/internal/cli"
	"worktrack/internal/commands"
	"worktrack/internal/config"
	"worktrack/internal/service"
	"worktrack/internal/tracker"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Sync talks to Google Tasks; commands only see service.Exporter
	commands.NewExporter = func(ctx context.Context, cfg *config.Config) (service.Exporter, error) {
		client, err := googletasks.New(ctx, cfg, cfg.Logger(os.Stderr))
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	// Local files hold the task, category and status collections
	factory := func(ctx context.Context, cfg *config.Config, errOut io.Writer) (*tracker.State, error) {
		logger := cfg.Logger(errOut)
		store, err := filestore.New(cfg.DataPath(), logger)
		if err != nil {
			return nil, err
		}
		return tracker.Load(ctx, store, logger)
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
