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

	"github.com/platebook/platebook/internal/server/handlers"
	"github.com/platebook/platebook/internal/server/middleware"
	"github.com/platebook/platebook/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 10 * time.Second

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "Listen address")
	dbPath := flag.String("db", "platebook-server.db", "Path to SQLite database")
	jwtSecret := flag.String("jwt-secret", "", "JWT signing secret (or PLATEBOOK_JWT_SECRET)")
	tokenTTL := flag.Duration("token-ttl", 15*time.Minute, "Access token lifetime")
	rateLimit := flag.Int("rate-limit", 100, "Requests per client per minute")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	secret := *jwtSecret
	if secret == "" {
		secret = os.Getenv("PLATEBOOK_JWT_SECRET")
	}
	if secret == "" {
		logger.Error("a JWT secret is required, set --jwt-secret or PLATEBOOK_JWT_SECRET")
		os.Exit(1)
	}

	if err := run(logger, *addr, *dbPath, secret, *tokenTTL, *rateLimit); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, addr, dbPath, secret string, tokenTTL time.Duration, rateLimit int) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	jwtConfig := handlers.JWTConfig{
		Secret:         []byte(secret),
		AccessTokenTTL: tokenTTL,
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           newRouter(logger, store, jwtConfig, rateLimit),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.String("addr", addr), slog.String("version", Version))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

// newRouter builds the HTTP routing tree. Record routes sit behind the auth
// middleware; auth and health routes do not.
func newRouter(logger *slog.Logger, store *sqlite.Storage, jwtConfig handlers.JWTConfig, rateLimit int) http.Handler {
	authHandler := handlers.NewAuthHandler(logger, store, jwtConfig)
	recordsHandler := handlers.NewRecordsHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, Version)

	records := http.NewServeMux()
	records.HandleFunc("GET /api/v1/{collection}", recordsHandler.List)
	records.HandleFunc("POST /api/v1/{collection}", recordsHandler.Create)
	records.HandleFunc("GET /api/v1/{collection}/{id}", recordsHandler.Get)
	records.HandleFunc("PATCH /api/v1/{collection}/{id}", recordsHandler.Patch)

	authRequired := middleware.AuthMiddleware(logger, jwtConfig)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.Handle("/api/v1/", authRequired(records))

	chain := middleware.RecoveryMiddleware(logger)(
		middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(
			middleware.RateLimitMiddleware(rateLimit, time.Minute, logger)(mux)))

	return chain
}

func printVersion() {
	fmt.Printf("Platebook Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
