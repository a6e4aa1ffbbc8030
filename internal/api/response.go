// Package api implements the HTTP handlers of the rates gateway.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"ratesgateway/internal/api/middleware"
	"ratesgateway/internal/fixer"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"invalid currency code: US"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeUpstreamResult writes a fixer.io response verbatim, or maps the
// failure to an error response.
func writeUpstreamResult(w http.ResponseWriter, r *http.Request, logger *zap.SugaredLogger, res fixer.Response, err error) {
	if err == nil {
		writeJSON(w, http.StatusOK, res)
		return
	}

	var reqErr *fixer.RequestError
	if errors.As(err, &reqErr) {
		logger.Warnw("Upstream request failed",
			"request_id", middleware.RequestIDFromContext(r.Context()),
			"op", reqErr.Op,
			"error", err,
		)
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: "Upstream request failed"})
		return
	}

	logger.Errorw("Unexpected upstream error",
		"request_id", middleware.RequestIDFromContext(r.Context()),
		"error", err,
	)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal error"})
}
