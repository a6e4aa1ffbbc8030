package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ratesgateway/internal/api"
	"ratesgateway/internal/api/middleware"
	"ratesgateway/internal/fixer"
)

func (app *App) initHTTP(rates fixer.API) {
	app.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Server.Port),
		Handler:           app.routes(rates),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      writeTimeout(app.cfg.Fixer.Timeout()),
		IdleTimeout:       60 * time.Second,
	}
}

// writeTimeout leaves room for one upstream call. Without an upstream
// timeout there is no bound to derive, so writes are not limited either.
func writeTimeout(upstream time.Duration) time.Duration {
	if upstream <= 0 {
		return 0
	}
	return upstream + 15*time.Second
}

func (app *App) routes(rates fixer.API) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RequestLoggingMiddleware(app.logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/symbols", api.HandleSymbols(rates, app.logger))
	r.Get("/latest", api.HandleLatest(rates, app.logger))
	r.Get("/historical/{date}", api.HandleHistorical(rates, app.logger))
	r.Get("/healthz", api.HandleHealthz())

	if app.cfg.Server.ServeMetrics {
		r.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))
	}

	if app.cfg.Server.ServeSwagger {
		r.Get("/swagger/*", api.SwaggerUIHandler())
		r.Get("/openapi.json", api.OpenAPISpecHandler())
	}

	return r
}
