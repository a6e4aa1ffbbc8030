package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ratesgateway/internal/config"
	"ratesgateway/internal/fixer"
	"ratesgateway/internal/metrics"
)

// App holds all application dependencies and manages their lifecycle.
type App struct {
	cfg        *config.Config
	logger     *zap.SugaredLogger
	registry   *prometheus.Registry
	httpServer *http.Server
}

// NewApp initializes all dependencies and returns a ready-to-run App.
func NewApp(cfg *config.Config, logger *zap.SugaredLogger) (*App, error) {
	app := &App{
		cfg:      cfg,
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}

	rates, err := app.newRatesAPI()
	if err != nil {
		return nil, err
	}

	app.initHTTP(rates)
	return app, nil
}

func (app *App) newRatesAPI() (fixer.API, error) {
	client := fixer.New(app.cfg.Fixer.AccessKey,
		fixer.WithBaseURL(app.cfg.Fixer.BaseURL),
		fixer.WithDefaultSymbols(app.cfg.Fixer.DefaultSymbols...),
		fixer.WithTimeout(app.cfg.Fixer.Timeout()),
		fixer.WithLogger(app.logger.Named("fixer")),
	)
	app.logger.Infow("fixer.io client configured",
		"base_url", app.cfg.Fixer.BaseURL,
		"default_symbols", app.cfg.Fixer.DefaultSymbols,
		"timeout", app.cfg.Fixer.Timeout(),
	)

	instrumented, err := metrics.NewInstrumentedRates(client, app.registry)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	return instrumented, nil
}

// Run starts the HTTP server, blocking until the context is canceled.
func (app *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Infow("HTTP server listening", "port", app.cfg.Server.Port)
		if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown: triggered by context cancellation (signal or server failure).
	g.Go(func() error {
		<-ctx.Done()
		return app.shutdown()
	})

	return g.Wait()
}

func (app *App) shutdown() error {
	app.logger.Infow("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
		app.logger.Errorw("HTTP server shutdown error", "error", err)
		return fmt.Errorf("http shutdown: %w", err)
	}

	app.logger.Infow("Shutdown complete")
	return nil
}
