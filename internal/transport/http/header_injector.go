package http

import (
	"net/http"

	"github.com/oshokin/utilkit/internal/utils"
)

// HeaderInjector is a custom http.RoundTripper that fills in default headers.
// The User-Agent comes from a UserAgentProvider; other defaults are static.
// Headers already present on the request are never overwritten.
type HeaderInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// userAgentProvider provides the User-Agent string to inject.
	userAgentProvider utils.UserAgentProvider
	// defaults are static headers set when missing.
	defaults http.Header
}

// NewHeaderInjector creates a HeaderInjector in front of next.
// defaults may be nil.
func NewHeaderInjector(
	next http.RoundTripper,
	userAgentProvider utils.UserAgentProvider,
	defaults http.Header,
) http.RoundTripper {
	return &HeaderInjector{
		next:              next,
		userAgentProvider: userAgentProvider,
		defaults:          defaults.Clone(),
	}
}

// RoundTrip executes a single HTTP transaction after filling in missing headers.
// It implements the http.RoundTripper interface.
func (t *HeaderInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if req.Header == nil {
		req.Header = make(http.Header)
	}

	if req.Header.Get(headerUserAgent) == "" {
		req.Header.Set(headerUserAgent, t.userAgentProvider.GetUserAgent())
	}

	for name, values := range t.defaults {
		if req.Header.Get(name) == "" {
			req.Header[name] = append([]string(nil), values...)
		}
	}

	return t.next.RoundTrip(req)
}
