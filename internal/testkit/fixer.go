// Package testkit provides shared test infrastructure: an in-process
// stand-in for the fixer.io API.
package testkit

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

const defaultBody = `{"success":true}`

// RecordedRequest is a request served by FakeFixer.
type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
}

// FakeFixer serves canned fixer.io responses and records every request.
type FakeFixer struct {
	srv *httptest.Server

	mu       sync.Mutex
	status   int
	body     string
	requests []RecordedRequest
}

// NewFakeFixer starts a FakeFixer that is closed when t finishes.
// Until Respond is called it answers 200 with {"success":true}.
func NewFakeFixer(t testing.TB) *FakeFixer {
	t.Helper()
	f := &FakeFixer{status: http.StatusOK, body: defaultBody}
	f.srv = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.srv.Close)
	return f
}

// URL returns the API base URL, with trailing slash, to pass as the client base.
func (f *FakeFixer) URL() string {
	return f.srv.URL + "/api/"
}

// Respond sets the status and body returned for subsequent requests.
func (f *FakeFixer) Respond(status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
	f.body = body
}

// Last returns the most recent request. It fails the test if none was made.
func (f *FakeFixer) Last(t testing.TB) RecordedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		t.Fatal("fake fixer: no requests recorded")
		return RecordedRequest{}
	}
	return f.requests[len(f.requests)-1]
}

// Count returns the number of requests served.
func (f *FakeFixer) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *FakeFixer) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
	})
	status, body := f.status, f.body
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
