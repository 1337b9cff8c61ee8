package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Harisshabbir76/todo/adapters/db"
	"github.com/Harisshabbir76/todo/adapters/rest"
	"github.com/Harisshabbir76/todo/adapters/rest/handlers"
	"github.com/Harisshabbir76/todo/config"
	"github.com/Harisshabbir76/todo/core"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "server configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using system environment")
	}

	cfg := config.MustLoad(configPath)
	logger := mustMakeLogger(cfg.LogLevel)

	if err := run(cfg, logger); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	log.Info("starting todo server")

	// graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// database adapter
	storage, err := db.New(log, cfg.DB.Address, cfg.DB.MaxConns)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func(storage *db.DB) {
		if err := storage.Close(); err != nil {
			log.Error("failed to close db connection", "error", err)
		}
	}(storage)

	// the process must not serve traffic against an unreachable store
	if err := storage.WaitReady(ctx, cfg.DB.ReadyAttempts, cfg.DB.ReadyDelay); err != nil {
		return fmt.Errorf("database never became reachable: %w", err)
	}

	if err := storage.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate db: %w", err)
	}

	// service
	svc := core.NewService(storage)

	mux := http.NewServeMux()
	handlers.Register(mux, log, svc)

	server := http.Server{
		Addr:              cfg.HTTP.Address,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		Handler:           rest.Logging(log, rest.CORS(cfg.AllowedOrigins, mux)),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "address", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped unexpectedly: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful drain stalled, forcing close", "error", err)
		_ = server.Close()
	}
	return nil
}

func mustMakeLogger(levelStr string) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
