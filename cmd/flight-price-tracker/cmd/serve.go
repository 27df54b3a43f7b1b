package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/flight-price-tracker/api/openapi"
	"github.com/donaldgifford/flight-price-tracker/internal/api/handlers"
	"github.com/donaldgifford/flight-price-tracker/internal/api/middleware"
	"github.com/donaldgifford/flight-price-tracker/internal/config"
	"github.com/donaldgifford/flight-price-tracker/internal/engine"
	"github.com/donaldgifford/flight-price-tracker/internal/telemetry"
)

const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and price check scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, &cfg.Telemetry, Version)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.store.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	if n, err := a.store.RecoverStalePassRuns(ctx, 0); err != nil {
		log.Warn("recovering stale pass runs", "error", err)
	} else if n > 0 {
		log.Info("marked stale pass runs interrupted", "count", n)
	}

	sched, err := engine.NewScheduler(a.engine, cfg.Schedule.CheckInterval, log.With("component", "scheduler"))
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}

	e := newServer(cfg, log, a)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", addr, "base_url", cfg.Server.BaseURL)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sched.Start()
	log.Info("scheduler started",
		"interval", cfg.Schedule.CheckInterval.String(),
		"next", sched.Next(),
	)

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-errCh:
		log.Error("server error", "error", err)
	}

	return shutdown(log, e, sched, shutdownTelemetry)
}

func newServer(cfg *config.Config, log *slog.Logger, a *app) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log.With("component", "http")))
	e.Use(middleware.Metrics())

	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(a.store))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("Flight Price Tracker API", Version))

	alerts := handlers.NewAlertsHandler(a.subs)
	handlers.RegisterAlertRoutes(api, alerts)
	handlers.RegisterSubscriptionRoutes(api, alerts)
	handlers.RegisterCheckRoutes(api, handlers.NewCheckHandler(a.engine))
	handlers.RegisterPassRoutes(api, handlers.NewPassesHandler(a.store))
	handlers.RegisterSearchRoutes(api, handlers.NewSearchHandler(a.provider))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(a.provider))
	handlers.RegisterSystemStateRoutes(api, handlers.NewSystemStateHandler(a.store, a.engine))

	openapi.RegisterRoutes(e, api)

	return e
}

// shutdown stops the scheduler (interrupting any running pass), then the
// HTTP server, then flushes telemetry.
func shutdown(
	log *slog.Logger,
	e *echo.Echo,
	sched *engine.Scheduler,
	shutdownTelemetry telemetry.ShutdownFunc,
) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	select {
	case <-sched.Stop().Done():
	case <-ctx.Done():
		log.Warn("scheduler did not stop in time")
	}

	var errs []error
	if err := e.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutting down server: %w", err))
	}
	if err := shutdownTelemetry(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutting down telemetry: %w", err))
	}

	log.Info("server stopped")
	return errors.Join(errs...)
}
