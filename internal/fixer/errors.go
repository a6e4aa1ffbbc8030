package fixer

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const maxErrorBody = 512

// RequestError reports a failed call to fixer.io: a network error, a
// cancelled or expired context, an HTTP status of 400 or above, or a body
// that is not JSON. It is the only error type returned by Client.
type RequestError struct {
	Op  string
	Err error
}

func newRequestError(op string, err error) *RequestError {
	return &RequestError{Op: op, Err: err}
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("fixer %s: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// StatusError is the cause of a RequestError raised for an HTTP status >= 400.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	kind := "Client Error"
	if e.StatusCode >= 500 {
		kind = "Server Error"
	}
	msg := fmt.Sprintf("%d %s: %s for url: %s", e.StatusCode, kind, e.reason(), e.URL)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// reason returns the reason phrase sent by the server, falling back to the
// standard text for the code.
func (e *StatusError) reason() string {
	if r := strings.TrimSpace(strings.TrimPrefix(e.Status, strconv.Itoa(e.StatusCode))); r != "" {
		return r
	}
	return http.StatusText(e.StatusCode)
}

func checkStatus(resp *http.Response, safeURL string) error {
	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		URL:        safeURL,
		Body:       strings.TrimSpace(string(body)),
	}
}

// unwrapURLError drops the *url.Error envelope, whose message embeds the
// full request URL including the access key.
func unwrapURLError(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}
