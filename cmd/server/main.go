// Package main is the entry point for the task service. It wires every
// dependency explicitly, starts the HTTP server, and handles graceful
// shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsamuelsen11/go-task-service/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/go-task-service/internal/adapters/http"
	"github.com/jsamuelsen11/go-task-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-task-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-task-service/internal/app"
	"github.com/jsamuelsen11/go-task-service/internal/platform/config"
	"github.com/jsamuelsen11/go-task-service/internal/platform/health"
	"github.com/jsamuelsen11/go-task-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-task-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-task-service/internal/platform/telemetry"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	server := adapthttp.NewServer(cfg.Server, buildHandler(cfg, logger, otel.Metrics), logger)

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := server.Run(sigCtx)
	if serveErr != nil {
		logger.Error("server stopped", slog.Any("error", serveErr))
	}

	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return serveErr
}

// buildHandler assembles the object graph behind the router: downstream
// client, services, and handlers. metrics may be nil.
func buildHandler(cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) nethttp.Handler {
	httpClient := httpclient.New(&cfg.Client, "todo-api", metrics, logger)
	todoClient := acl.NewTodoClient(httpClient, logger)

	todoSvc := app.NewTodoService(todoClient, logger)
	projectSvc := app.NewProjectService(todoClient, app.BulkLimits{
		MaxWorkers: cfg.Bulk.MaxWorkers,
		MaxItems:   cfg.Bulk.MaxItems,
	}, logger).WithMetrics(metrics)

	registry := health.New()
	registry.Register(todoClient)

	return adapthttp.NewRouter(
		handlers.NewProjectHandler(projectSvc, todoSvc),
		handlers.NewTodoHandler(todoSvc),
		handlers.NewHealthHandler(registry),
		middleware.Stack(logger, metrics, cfg.Server.RequestTimeout),
	)
}
