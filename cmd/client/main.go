package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	clientapi "github.com/kuhaku/kuhaku/internal/client/api"
	"github.com/kuhaku/kuhaku/internal/client/cli"
	"github.com/kuhaku/kuhaku/internal/client/iocli"
	"github.com/kuhaku/kuhaku/internal/client/session"
	"github.com/kuhaku/kuhaku/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:3333", "Server URL")
	dbPath := flag.String("db", "kuhaku-client.db", "Path to local session database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	stdio := iocli.NewStdio()

	args := flag.Args()
	if len(args) == 0 {
		cli.New(stdio, nil).PrintUsage()
		os.Exit(1)
	}

	command := args[0]
	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	sessionStore, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := sessionStore.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := clientapi.NewClient(*serverURL)
	sessionManager := session.NewManager(apiClient, sessionStore, logger)

	app := cli.New(stdio, sessionManager)
	if err := app.Run(ctx, command); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("Kuhaku Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
