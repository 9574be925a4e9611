package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logistics/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Info("No .env file loaded, reading the environment only")
	}

	configs, err := cmd.LoadConfig(viper.New())
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logger := newLogger(configs)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder, closeRecorder, err := cmd.OpenStateRecorder(ctx, configs, logger)
	if err != nil {
		log.Fatalf("Failed to open state store: %v", err)
	}
	defer func() {
		if err := closeRecorder(); err != nil {
			logger.Error("failed to close state store", "error", err)
		}
	}()

	if latest, err := recorder.Latest(ctx); err == nil {
		logger.Info("previous run state summary",
			"recorded_at", latest.RecordedAt,
			"warehouses", latest.Warehouses,
			"lines", latest.Lines,
			"packages", latest.Packages,
			"pallets", latest.Pallets,
		)
	}

	app, err := cmd.NewCompositionRoot(recorder, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	e, err := app.NewEcho()
	if err != nil {
		log.Fatalf("Failed to build HTTP server: %v", err)
	}

	jobManager := app.NewJobManager(configs)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	if err = run(ctx, e, configs.HTTPPort, logger); err != nil {
		logger.Error("HTTP server stopped", "error", err)
	}
}

func newLogger(configs cmd.Config) *slog.Logger {
	level, _ := configs.Level()
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// run serves until ctx is cancelled, then shuts the server down gracefully.
func run(ctx context.Context, e *echo.Echo, port string, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
