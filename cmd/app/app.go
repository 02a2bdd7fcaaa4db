// Package main is the entry point for the currency conversion service.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"converterservice/internal/config"
	"converterservice/internal/metrics"
	"converterservice/internal/provider"
	"converterservice/internal/rates"
	"converterservice/internal/repository"
	"converterservice/internal/service"
	"converterservice/internal/worker"
)

// App holds all application dependencies and manages their lifecycle.
type App struct {
	cfg         *config.Config
	logger      *zap.SugaredLogger
	metrics     *metrics.Metrics
	db          *sql.DB
	rdbState    *redis.Client
	rdbAsynq    *redis.Client
	asynqClient *asynq.Client
	asynqServer *asynq.Server
	asynqMux    *asynq.ServeMux
	scheduler   *worker.Scheduler
	httpServer  *http.Server
}

// NewApp initializes all dependencies and returns a ready-to-run App.
func NewApp(cfg *config.Config, logger *zap.SugaredLogger) (*App, error) {
	app := &App{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics.NewMetrics(prometheus.DefaultRegisterer),
	}

	if err := app.initStorage(); err != nil {
		_ = app.close()
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.close()
		return nil, err
	}

	return app, nil
}

// close releases database and Redis connections
func (app *App) close() error {
	var errs []error
	if app.asynqClient != nil {
		if err := app.asynqClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("asynq client close: %w", err))
		}
	}
	if app.rdbAsynq != nil {
		if err := app.rdbAsynq.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis asynq close: %w", err))
		}
	}
	if app.rdbState != nil {
		if err := app.rdbState.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis state close: %w", err))
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("db close: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (app *App) initStorage() error {
	db, err := repository.NewPostgresDB(&app.cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to Postgres: %w", err)
	}
	app.db = db

	if err := repository.RunMigrations(app.db); err != nil {
		return fmt.Errorf("run DB migrations: %w", err)
	}

	app.rdbState = redis.NewClient(&redis.Options{
		Addr: app.cfg.Redis.StateAddr,
	})
	if err := app.rdbState.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("connect to Redis (state, %s): %w", app.cfg.Redis.StateAddr, err)
	}
	app.logger.Infow("Connected to state Redis", "addr", app.cfg.Redis.StateAddr)

	return nil
}

func (app *App) initServices() error {
	redisOpt := asynq.RedisClientOpt{Addr: app.cfg.Redis.AsynqAddr}

	app.rdbAsynq = redis.NewClient(&redis.Options{Addr: app.cfg.Redis.AsynqAddr})
	app.asynqClient = asynq.NewClient(redisOpt)

	source, err := newRateSource(app.cfg, app.metrics)
	if err != nil {
		return err
	}
	rateProvider := rates.NewProvider(
		source,
		time.Duration(app.cfg.Cache.RateTTLSec)*time.Second,
		app.metrics,
		app.logger,
	)

	historyRepo := repository.NewPostgresHistoryRepository(app.db)
	favoritesRepo := repository.NewRedisFavoritesRepository(app.rdbState)
	converterService := service.NewConverterService(
		rateProvider,
		historyRepo,
		favoritesRepo,
		app.metrics,
		app.logger,
		app.cfg.History,
		app.cfg.Rates,
	)

	if app.cfg.Worker.Enabled {
		app.asynqServer = asynq.NewServer(
			redisOpt,
			asynq.Config{
				Concurrency: app.cfg.Worker.Concurrency,
			},
		)
		app.asynqMux = asynq.NewServeMux()
		app.asynqMux.HandleFunc(worker.TaskTypeRefreshRates, worker.NewRefreshHandler(converterService, app.logger))

		enqueuer := worker.NewAsynqEnqueuer(
			app.asynqClient,
			app.cfg.Worker.MaxRetry,
			time.Duration(app.cfg.Worker.TimeoutSec)*time.Second,
		)
		app.scheduler = worker.NewScheduler(
			converterService,
			enqueuer,
			time.Duration(app.cfg.Worker.RefreshIntervalSec)*time.Second,
			app.cfg.Rates.DefaultBase,
			app.logger,
		)
		app.logger.Infow("Background refresh enabled",
			"addr", app.cfg.Redis.AsynqAddr,
			"interval_sec", app.cfg.Worker.RefreshIntervalSec,
		)
	}

	app.initHTTP(converterService)
	return nil
}

// newRateSource builds the rate source chain: each configured external source
// is instrumented, the facade tries them in order, and a single retry guards
// transient failures.
func newRateSource(cfg *config.Config, m *metrics.Metrics) (provider.RateSource, error) {
	var sources []provider.RateSource

	if cfg.ExchangeRateAPI.BaseURL != "" && cfg.ExchangeRateAPI.APIKey != "" {
		s := provider.NewExchangeRateAPISource(cfg.ExchangeRateAPI.BaseURL, cfg.ExchangeRateAPI.APIKey, cfg.ExchangeRateAPI.Timeout)
		sources = append(sources, provider.NewInstrumentedSource(s, m.SourceFetches))
	}

	if cfg.Frankfurter.BaseURL != "" {
		s := provider.NewFrankfurterSource(cfg.Frankfurter.BaseURL, cfg.Frankfurter.Timeout)
		sources = append(sources, provider.NewInstrumentedSource(s, m.SourceFetches))
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("no rate sources are correctly configured: " +
			"frankfurter requires base_url, exchangerate_api requires base_url and api_key")
	}

	var source provider.RateSource
	if len(sources) == 1 {
		source = sources[0]
	} else {
		source = provider.NewSourceFacade(sources...)
	}

	retryDelay := time.Duration(cfg.Provider.RetryDelayMs) * time.Millisecond
	return provider.NewRetrySource(source, retryDelay), nil
}

// Run starts the HTTP server, the Asynq worker and the refresh scheduler,
// blocking until the context is canceled.
func (app *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	if app.cfg.Worker.Enabled {
		g.Go(func() error {
			app.logger.Infow("Starting Asynq worker server")
			if err := app.asynqServer.Start(app.asynqMux); err != nil {
				return fmt.Errorf("asynq worker failed to start: %w", err)
			}

			<-ctx.Done()
			return nil
		})

		g.Go(func() error {
			return app.scheduler.Run(ctx)
		})
	}

	g.Go(func() error {
		app.logger.Infow("HTTP server listening", "port", app.cfg.Server.Port)
		if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown: triggered by context cancellation (signal or component failure).
	g.Go(func() error {
		<-ctx.Done()
		return app.shutdown()
	})

	return g.Wait()
}

// shutdown performs ordered teardown: HTTP server -> Asynq worker -> connections.
// This ensures in-flight tasks finish before the DB and Redis connections close.
func (app *App) shutdown() error {
	app.logger.Infow("Shutting down server...")

	var errs []error

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// 1. Stop accepting new HTTP requests, drain in-flight
	if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
		app.logger.Errorw("HTTP server shutdown error", "error", err)
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}

	// 2. Drain in-flight Asynq tasks
	if app.asynqServer != nil {
		app.asynqServer.Shutdown()
	}

	// 3. Close connections (asynq client, Redis, database)
	if err := app.close(); err != nil {
		app.logger.Errorw("Connection cleanup errors", "error", err)
		errs = append(errs, err)
	}

	app.logger.Infow("Shutdown complete")
	return errors.Join(errs...)
}
