package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kuhaku/kuhaku/internal/server"
	"github.com/kuhaku/kuhaku/internal/server/config"
	"github.com/kuhaku/kuhaku/internal/server/jwt"
	"github.com/kuhaku/kuhaku/internal/server/storage"
	"github.com/kuhaku/kuhaku/internal/server/storage/jsonfile"
	"github.com/kuhaku/kuhaku/internal/server/storage/sqlite"
)

// tokenTTL is the fixed session token validity window
const tokenTTL = 24 * time.Hour

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "kuhaku-server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional, the environment itself wins
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := newLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	users, closeStore, err := openUserStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open user store: %w", err)
	}
	defer closeStore()

	tokens := jwt.NewService(cfg.JWTSecret, tokenTTL)

	handler := server.New(server.Options{
		Logger:     logger,
		Users:      users,
		Tokens:     tokens,
		CORSOrigin: cfg.CORSOrigin,
		Version:    Version,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.String("addr", cfg.Addr()),
			slog.String("store", cfg.UserStore),
			slog.String("version", Version))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}

// openUserStore selects the storage backend from config
func openUserStore(ctx context.Context, cfg *config.Config) (storage.UserStorage, func(), error) {
	switch cfg.UserStore {
	case config.StoreSQLite:
		store, err := sqlite.New(ctx, cfg.DatabasePath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	default:
		return jsonfile.New(cfg.UsersFile), func() {}, nil
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func printVersion() {
	fmt.Printf("Kuhaku Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
