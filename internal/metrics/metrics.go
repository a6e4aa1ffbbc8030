// Package metrics instruments calls to the upstream rates API with Prometheus.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"ratesgateway/internal/fixer"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"

	endpointSymbols    = "symbols"
	endpointLatest     = "latest"
	endpointHistorical = "historical"
)

var _ fixer.API = (*InstrumentedRates)(nil)

// InstrumentedRates wraps a fixer.API and records request counts and latency.
type InstrumentedRates struct {
	next     fixer.API
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewInstrumentedRates registers its collectors on reg and returns the decorator.
func NewInstrumentedRates(next fixer.API, reg prometheus.Registerer) (*InstrumentedRates, error) {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fixer_upstream_requests_total",
			Help: "Number of requests made to fixer.io by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fixer_upstream_request_duration_seconds",
			Help:    "Latency of requests made to fixer.io",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	var errs []error
	for _, c := range []prometheus.Collector{requests, duration} {
		if err := reg.Register(c); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return &InstrumentedRates{
		next:     next,
		requests: requests,
		duration: duration,
	}, nil
}

// Symbols forwards to the wrapped API.
func (m *InstrumentedRates) Symbols(ctx context.Context) (fixer.Response, error) {
	start := time.Now()
	res, err := m.next.Symbols(ctx)
	m.observe(endpointSymbols, start, err)
	return res, err
}

// Latest forwards to the wrapped API.
func (m *InstrumentedRates) Latest(ctx context.Context, opts ...fixer.RequestOption) (fixer.Response, error) {
	start := time.Now()
	res, err := m.next.Latest(ctx, opts...)
	m.observe(endpointLatest, start, err)
	return res, err
}

// HistoricalAt forwards to the wrapped API.
func (m *InstrumentedRates) HistoricalAt(ctx context.Context, date string, opts ...fixer.RequestOption) (fixer.Response, error) {
	start := time.Now()
	res, err := m.next.HistoricalAt(ctx, date, opts...)
	m.observe(endpointHistorical, start, err)
	return res, err
}

func (m *InstrumentedRates) observe(endpoint string, start time.Time, err error) {
	outcome := outcomeOK
	if err != nil {
		outcome = outcomeError
	}
	m.requests.WithLabelValues(endpoint, outcome).Inc()
	m.duration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
