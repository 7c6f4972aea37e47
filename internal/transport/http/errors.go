package http

import (
	"errors"
	"fmt"
	"net/http"
)

// Static error definitions for better error handling.
var (
	// ErrNilRequest indicates that the HTTP request is nil.
	ErrNilRequest = errors.New("request is nil")
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrUnsupportedMethod indicates a method other than GET or POST.
	ErrUnsupportedMethod = errors.New("unsupported HTTP method")
	// ErrIncompleteDownload indicates that fewer bytes than announced were received.
	ErrIncompleteDownload = errors.New("incomplete download")
)

// StatusError reports a non-2xx response. It matches ErrUnexpectedHTTPStatus with errors.Is.
type StatusError struct {
	// StatusCode is the response status code.
	StatusCode int
	// Body is the response body, possibly empty.
	Body []byte
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d %s", ErrUnexpectedHTTPStatus, e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap returns ErrUnexpectedHTTPStatus.
func (e *StatusError) Unwrap() error {
	return ErrUnexpectedHTTPStatus
}

// Retryable reports whether the status is worth retrying: 429 and any 5xx.
func (e *StatusError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}
