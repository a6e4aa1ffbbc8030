// Package fixer implements a client for the fixer.io exchange rates API.
package fixer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL is the fixer.io API root. Endpoint names are appended to it.
const DefaultBaseURL = "http://data.fixer.io/api/"

const (
	symbolsPath = "symbols"
	latestPath  = "latest"

	dateLayout = "2006-01-02"

	paramAccessKey = "access_key"
	paramSymbols   = "symbols"
)

// Response is the decoded JSON body returned by fixer.io. It is passed
// through as-is; fields such as "success" or "rates" are not inspected.
type Response map[string]any

// API is the set of fixer.io operations. It is implemented by Client and by
// decorators wrapping it.
type API interface {
	Symbols(ctx context.Context) (Response, error)
	Latest(ctx context.Context, opts ...RequestOption) (Response, error)
	HistoricalAt(ctx context.Context, date string, opts ...RequestOption) (Response, error)
}

var _ API = (*Client)(nil)

// Client issues requests against the fixer.io API. Its configuration is
// fixed at construction, so a single Client may be shared between goroutines.
type Client struct {
	accessKey      string
	defaultSymbols []string
	timeout        time.Duration
	baseURL        string
	httpClient     *http.Client
	logger         *zap.SugaredLogger
}

// Option configures a Client.
type Option func(*Client)

// WithDefaultSymbols sets the symbol filter used when a call does not pass its own.
func WithDefaultSymbols(codes ...string) Option {
	return func(c *Client) {
		c.defaultSymbols = append([]string(nil), codes...)
	}
}

// WithTimeout bounds every request. Zero leaves requests bounded only by the
// caller's context and the transport.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBaseURL overrides DefaultBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL == "" {
			return
		}
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger used for per-request debug output.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Client authenticated with accessKey. The key is not checked;
// no request is made until an operation is called.
func New(accessKey string, opts ...Option) *Client {
	c := &Client{
		accessKey:  accessKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
		logger:     zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefaultSymbols returns a copy of the configured default symbol filter.
func (c *Client) DefaultSymbols() []string {
	return append([]string(nil), c.defaultSymbols...)
}

// Symbols returns all currencies supported by fixer.io.
func (c *Client) Symbols(ctx context.Context) (Response, error) {
	return c.get(ctx, "symbols", symbolsPath, c.payload(nil))
}

// Latest returns the latest exchange rates. Without WithSymbols the
// client's default filter applies.
func (c *Client) Latest(ctx context.Context, opts ...RequestOption) (Response, error) {
	return c.get(ctx, "latest", latestPath, c.payload(c.effectiveSymbols(opts)))
}

// Historical returns the exchange rates for the calendar day of date.
func (c *Client) Historical(ctx context.Context, date time.Time, opts ...RequestOption) (Response, error) {
	return c.HistoricalAt(ctx, date.Format(dateLayout), opts...)
}

// HistoricalAt returns the exchange rates for an ISO-8601 (YYYY-MM-DD) date.
// The date is used as the endpoint path and is not validated.
func (c *Client) HistoricalAt(ctx context.Context, date string, opts ...RequestOption) (Response, error) {
	return c.get(ctx, "historical", url.PathEscape(date), c.payload(c.effectiveSymbols(opts)))
}

// payload builds the query for a single call. The symbols key is omitted
// entirely when there is nothing to filter on.
func (c *Client) payload(symbols []string) url.Values {
	q := url.Values{}
	q.Set(paramAccessKey, c.accessKey)
	if len(symbols) > 0 {
		q.Set(paramSymbols, strings.Join(symbols, ","))
	}
	return q
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values) (Response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	reqURL := c.baseURL + path + "?" + query.Encode()
	safeURL := redactedURL(c.baseURL+path, query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, newRequestError(op, fmt.Errorf("build request for %s: %w", safeURL, unwrapURLError(err)))
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		cause := unwrapURLError(err)
		c.logger.Debugw("fixer request failed", "op", op, "url", safeURL, "error", cause)
		return nil, newRequestError(op, fmt.Errorf("GET %s: %w", safeURL, cause))
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	c.logger.Debugw("fixer request",
		"op", op,
		"url", safeURL,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if err := checkStatus(resp, safeURL); err != nil {
		return nil, newRequestError(op, err)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newRequestError(op, fmt.Errorf("read response from %s: %w", safeURL, err))
	}

	var result Response
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, newRequestError(op, fmt.Errorf("decode response from %s: %w", safeURL, err))
	}
	return result, nil
}

// redactedURL renders the request URL with the access key masked, for use
// in logs and error messages.
func redactedURL(endpoint string, query url.Values) string {
	masked := make(url.Values, len(query))
	for k, v := range query {
		masked[k] = v
	}
	masked.Set(paramAccessKey, "REDACTED")
	return endpoint + "?" + masked.Encode()
}
