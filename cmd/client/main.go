package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/platebook/platebook/internal/client/api"
	"github.com/platebook/platebook/internal/client/auth"
	"github.com/platebook/platebook/internal/client/cli"
	"github.com/platebook/platebook/internal/client/data"
	"github.com/platebook/platebook/internal/client/iocli"
	"github.com/platebook/platebook/internal/client/storage/boltdb"
	"github.com/platebook/platebook/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "platebook.db", "Path to local database")
	verbose := flag.Bool("verbose", false, "Enable debug logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	logger := newLogger(*verbose)
	ctx := context.Background()

	store, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	stdio := iocli.NewStdio()
	apiClient := api.NewClient(*serverURL)
	authService := auth.NewService(apiClient, store, logger)
	dataService := data.NewService(store)

	resolver := cli.NewInteractiveResolver(stdio)
	syncService := sync.NewService(apiClient, store, store, resolver, sync.NewBus(), logger)

	c := cli.New(stdio, authService, dataService, syncService)
	if err := c.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger sends debug output to stderr when asked and drops it otherwise,
// keeping command output clean.
func newLogger(verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func printVersion() {
	fmt.Printf("Platebook Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
