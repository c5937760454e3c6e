// Package main is the entry point for the recurring todo service. It wires
// the store, the optional list cache and the HTTP adapter using samber/do v2,
// starts the server, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/recurring-todo-service/internal/adapters/cache/rediscache"
	adapthttp "github.com/jsamuelsen11/recurring-todo-service/internal/adapters/http"
	"github.com/jsamuelsen11/recurring-todo-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/recurring-todo-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/recurring-todo-service/internal/adapters/store/sqlstore"

	"github.com/jsamuelsen11/recurring-todo-service/internal/app"
	"github.com/jsamuelsen11/recurring-todo-service/internal/platform/clock"
	"github.com/jsamuelsen11/recurring-todo-service/internal/platform/config"
	"github.com/jsamuelsen11/recurring-todo-service/internal/platform/database"
	"github.com/jsamuelsen11/recurring-todo-service/internal/platform/health"
	"github.com/jsamuelsen11/recurring-todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/recurring-todo-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/recurring-todo-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

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

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*sqlstore.Store](injector))
	var listCache *rediscache.Cache
	if cfg.Cache.Enabled {
		listCache = do.MustInvoke[*rediscache.Cache](injector)
		registry.Register(listCache)
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Release backing stores once no request can reach them.
	if listCache != nil {
		if err := listCache.Close(); err != nil {
			logger.Error("cache close error", slog.Any("error", err))
		}
	}
	if err := do.MustInvoke[*sql.DB](injector).Close(); err != nil {
		logger.Error("database close error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*clock.Clock, error) {
		return clock.New(cfg.Clock.Timezone)
	})

	do.Provide(injector, func(_ do.Injector) (*sql.DB, error) {
		ctx := context.Background()
		db, err := database.Open(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			if err := database.Migrate(ctx, db, cfg.Database.Driver, logger); err != nil {
				_ = db.Close()
				return nil, err
			}
		}
		return db, nil
	})

	do.Provide(injector, func(i do.Injector) (*sqlstore.Store, error) {
		db := do.MustInvoke[*sql.DB](i)
		clk := do.MustInvoke[*clock.Clock](i)
		return sqlstore.New(db, cfg.Database.Driver, clk, logger), nil
	})

	// The list cache is only provided when enabled.
	if cfg.Cache.Enabled {
		do.Provide(injector, func(i do.Injector) (*rediscache.Cache, error) {
			metrics := do.MustInvoke[*telemetry.Metrics](i)
			return rediscache.New(cfg.Cache, metrics, logger)
		})
	}

	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		store := do.MustInvoke[*sqlstore.Store](i)
		clk := do.MustInvoke[*clock.Clock](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		opts := []app.Option{app.WithMetrics(metrics)}
		if cfg.Cache.Enabled {
			opts = append(opts, app.WithCache(do.MustInvoke[*rediscache.Cache](i)))
		}
		return app.NewTodoService(store, clk, logger, opts...), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TodoHandler, error) {
		svc := do.MustInvoke[ports.TodoService](i)
		clk := do.MustInvoke[*clock.Clock](i)
		return handlers.NewTodoHandler(svc, clk), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		todoH := do.MustInvoke[*handlers.TodoHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(todoH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
