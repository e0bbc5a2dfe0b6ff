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

	"ordering/cmd"
	httpadapter "ordering/internal/adapters/in/http"
	"ordering/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	app := cmd.NewCompositionRoot(configs, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	// .env is optional; real environment variables take precedence.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	return cmd.NewConfig(
		os.Getenv("HTTP_PORT"),
		os.Getenv("AUDIT_SCHEDULE"),
	)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(app.Metrics().Middleware())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}))

	doc, err := httpadapter.LoadOpenAPI(ctx)
	if err != nil {
		log.Fatalf("Invalid OpenAPI document: %v", err)
	}
	if err = app.CreateHTTPServer().RegisterRoutes(e, doc); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(app.Registry())))

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("HTTP server shutdown failed: %v", err)
	}
}
