package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ratesgateway/internal/fixer"
)

const dateLayout = "2006-01-02"

// HandleSymbols godoc
// @Summary List supported currencies
// @Description Returns the fixer.io symbols response unchanged.
// @Tags rates
// @Produce json
// @Success 200 {object} map[string]interface{} "fixer.io response body"
// @Failure 502 {object} ErrorResponse "Upstream request failed"
// @Router /symbols [get]
func HandleSymbols(rates fixer.API, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := rates.Symbols(r.Context())
		writeUpstreamResult(w, r, logger, res, err)
	}
}

// HandleLatest godoc
// @Summary Get latest rates
// @Description Returns the latest fixer.io rates unchanged. Without the symbols parameter the configured default filter applies; an empty value disables filtering.
// @Tags rates
// @Produce json
// @Param symbols query string false "Comma-separated currency codes" example(USD,GBP)
// @Success 200 {object} map[string]interface{} "fixer.io response body"
// @Failure 400 {object} ErrorResponse "Invalid currency code"
// @Failure 502 {object} ErrorResponse "Upstream request failed"
// @Router /latest [get]
func HandleLatest(rates fixer.API, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := symbolOptions(r.URL.Query())
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		res, err := rates.Latest(r.Context(), opts...)
		writeUpstreamResult(w, r, logger, res, err)
	}
}

// HandleHistorical godoc
// @Summary Get historical rates
// @Description Returns the fixer.io rates for the given day unchanged.
// @Tags rates
// @Produce json
// @Param date path string true "Date in YYYY-MM-DD format" example(2013-12-24)
// @Param symbols query string false "Comma-separated currency codes" example(USD,GBP)
// @Success 200 {object} map[string]interface{} "fixer.io response body"
// @Failure 400 {object} ErrorResponse "Invalid date or currency code"
// @Failure 502 {object} ErrorResponse "Upstream request failed"
// @Router /historical/{date} [get]
func HandleHistorical(rates fixer.API, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := chi.URLParam(r, "date")
		if _, err := time.Parse(dateLayout, date); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "date must be in YYYY-MM-DD format"})
			return
		}

		opts, err := symbolOptions(r.URL.Query())
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		res, err := rates.HistoricalAt(r.Context(), date, opts...)
		writeUpstreamResult(w, r, logger, res, err)
	}
}

// HandleHealthz godoc
// @Summary Health check (liveness)
// @Description Always returns 200 OK if the service is running. Used for liveness probes.
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("OK"))
	}
}
