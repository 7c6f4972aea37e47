package http

import "time"

const (
	// DefaultTimeout is the per-request timeout used when neither the request nor the config sets one.
	DefaultTimeout = 10 * time.Second

	// Header names set by the transport chain.
	headerUserAgent     = "User-Agent"
	headerAccept        = "Accept"
	headerContentType   = "Content-Type"
	headerAuthorization = "Authorization"

	// contentTypeJSON is the media type of JSON request bodies.
	contentTypeJSON = "application/json"
)
