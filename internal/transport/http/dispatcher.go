package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/oshokin/utilkit/internal/config"
	"github.com/oshokin/utilkit/internal/hashing"
	"github.com/oshokin/utilkit/internal/logger"
	"github.com/oshokin/utilkit/internal/utils"
)

// RequestOptions describes a single request.
type RequestOptions struct {
	// Headers are sent as-is and take precedence over injected defaults.
	Headers map[string]string
	// Query is merged into the query string of the URL.
	Query url.Values
	// Body is sent with POST requests. []byte and string are sent raw,
	// anything else is encoded as JSON.
	Body any
	// Timeout bounds each attempt. Zero means the dispatcher default.
	Timeout time.Duration
	// SkipCache bypasses the GET response cache for this request.
	SkipCache bool
}

// Response is a decoded HTTP response.
type Response[T any] struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Header holds the response headers.
	Header http.Header
	// Data is the decoded body.
	Data T
	// Cached is true when the response was served from the cache.
	Cached bool
}

// cachedResponse is a successful GET response kept in the cache.
type cachedResponse struct {
	statusCode int
	header     http.Header
	body       []byte
}

// Dispatcher sends HTTP requests through the shared transport chain.
// It is safe for concurrent use.
type Dispatcher struct {
	// httpClient carries the header injector and log transport.
	httpClient *http.Client
	// cache holds successful GET responses; nil when caching is disabled.
	cache *expirable.LRU[string, *cachedResponse]
	// timeout is the default per-attempt timeout.
	timeout time.Duration
	// retryAttemptsCount is the total number of attempts per request.
	retryAttemptsCount int64
	// minRetryPause and maxRetryPause bound the pause between attempts.
	minRetryPause time.Duration
	maxRetryPause time.Duration
	// userAgentProvider supplies the default User-Agent.
	userAgentProvider utils.UserAgentProvider
	// defaultHeaders are injected into every request that lacks them.
	defaultHeaders http.Header
	// baseTransport is the innermost round tripper.
	baseTransport http.RoundTripper
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithUserAgentProvider overrides the User-Agent taken from the config.
func WithUserAgentProvider(provider utils.UserAgentProvider) Option {
	return func(d *Dispatcher) {
		if provider != nil {
			d.userAgentProvider = provider
		}
	}
}

// WithDefaultHeaders sets headers injected into every request that lacks them.
func WithDefaultHeaders(headers http.Header) Option {
	return func(d *Dispatcher) {
		d.defaultHeaders = headers.Clone()
	}
}

// WithBaseTransport replaces http.DefaultTransport at the bottom of the chain.
func WithBaseTransport(transport http.RoundTripper) Option {
	return func(d *Dispatcher) {
		if transport != nil {
			d.baseTransport = transport
		}
	}
}

// NewDispatcher creates a Dispatcher from a validated config.
// A nil config yields a dispatcher with package defaults, a single attempt and no cache.
func NewDispatcher(cfg *config.Config, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		timeout:            DefaultTimeout,
		retryAttemptsCount: 1,
		userAgentProvider:  utils.StaticUserAgent(config.DefaultUserAgent()),
		baseTransport:      http.DefaultTransport,
	}

	var maxLogLength uint64

	if cfg != nil {
		if cfg.ParsedHTTPTimeout > 0 {
			d.timeout = cfg.ParsedHTTPTimeout
		}

		if cfg.RetryAttemptsCount > 0 {
			d.retryAttemptsCount = cfg.RetryAttemptsCount
		}

		d.minRetryPause = cfg.ParsedMinRetryPause
		d.maxRetryPause = cfg.ParsedMaxRetryPause

		if userAgent := strings.TrimSpace(cfg.HTTPUserAgent); userAgent != "" {
			d.userAgentProvider = utils.StaticUserAgent(userAgent)
		}

		if cfg.HTTPCacheSize > 0 {
			d.cache = expirable.NewLRU[string, *cachedResponse](cfg.HTTPCacheSize, nil, cfg.ParsedHTTPCacheTTL)
		}

		maxLogLength = cfg.ParsedHTTPMaxLogLength
	}

	for _, opt := range opts {
		opt(d)
	}

	d.httpClient = &http.Client{
		Transport: NewHeaderInjector(
			NewLogTransport(d.baseTransport, maxLogLength),
			d.userAgentProvider,
			d.defaultHeaders,
		),
	}

	return d
}

// HTTPClient returns the client with the dispatcher's transport chain.
func (d *Dispatcher) HTTPClient() *http.Client {
	return d.httpClient
}

// PurgeCache drops every cached response.
func (d *Dispatcher) PurgeCache() {
	if d.cache != nil {
		d.cache.Purge()
	}
}

// Do sends a GET or POST request and returns the raw body.
// Non-2xx responses fail with a *StatusError. Attempts failing with 429, 5xx
// or a per-attempt timeout are retried up to the configured attempt count.
func (d *Dispatcher) Do(ctx context.Context, method, rawURL string, options RequestOptions) (*Response[[]byte], error) {
	method = strings.ToUpper(strings.TrimSpace(method))
	if method != http.MethodGet && method != http.MethodPost {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMethod, method)
	}

	target, err := buildURL(rawURL, options.Query)
	if err != nil {
		return nil, err
	}

	var cacheKey string

	if method == http.MethodGet && d.cache != nil && !options.SkipCache {
		cacheKey = requestCacheKey(target, options.Headers)

		if cached, ok := d.cache.Get(cacheKey); ok {
			logger.Debugf(ctx, "Serving %s from cache", target)

			return &Response[[]byte]{
				StatusCode: cached.statusCode,
				Header:     cached.header.Clone(),
				Data:       bytes.Clone(cached.body),
				Cached:     true,
			}, nil
		}
	}

	var (
		body        []byte
		contentType string
	)

	if method == http.MethodPost {
		body, contentType, err = encodeBody(options.Body)
		if err != nil {
			return nil, err
		}
	}

	timeout := options.Timeout
	if timeout <= 0 {
		timeout = d.timeout
	}

	var result *Response[[]byte]

	for i := range d.retryAttemptsCount {
		result, err = d.attempt(ctx, method, target, options.Headers, body, contentType, timeout)
		if err == nil {
			break
		}

		attemptsLeft := d.retryAttemptsCount - i - 1
		if attemptsLeft == 0 || !isRetryable(ctx, err) {
			return nil, err
		}

		logger.Infof(ctx, "Retrying due to error (%d attempts left): %v", attemptsLeft, err)

		if pauseErr := utils.RandomPause(ctx, d.minRetryPause, d.maxRetryPause); pauseErr != nil {
			return nil, fmt.Errorf("%w (retry aborted: %w)", err, pauseErr)
		}
	}

	if cacheKey != "" {
		d.cache.Add(cacheKey, &cachedResponse{
			statusCode: result.StatusCode,
			header:     result.Header.Clone(),
			body:       bytes.Clone(result.Data),
		})
	}

	return result, nil
}

// Request sends a request and decodes the body into T.
// A T of []byte or string receives the raw body, any other T is decoded from JSON.
// An empty body leaves Data at its zero value.
//
//nolint:revive // Go doesn't allow struct methods to be generic.
func Request[T any](
	ctx context.Context,
	d *Dispatcher,
	method, rawURL string,
	options RequestOptions,
) (*Response[T], error) {
	raw, err := d.Do(ctx, method, rawURL, options)
	if err != nil {
		return nil, err
	}

	result := &Response[T]{
		StatusCode: raw.StatusCode,
		Header:     raw.Header,
		Cached:     raw.Cached,
	}

	switch data := any(&result.Data).(type) {
	case *[]byte:
		*data = raw.Data
	case *string:
		*data = string(raw.Data)
	default:
		if len(bytes.TrimSpace(raw.Data)) == 0 {
			return result, nil
		}

		if err = json.Unmarshal(raw.Data, &result.Data); err != nil {
			return result, fmt.Errorf("failed to decode response body: %w", err)
		}
	}

	return result, nil
}

// Get is a shorthand for a GET Request.
//
//nolint:revive // Go doesn't allow struct methods to be generic.
func Get[T any](ctx context.Context, d *Dispatcher, rawURL string, options RequestOptions) (*Response[T], error) {
	return Request[T](ctx, d, http.MethodGet, rawURL, options)
}

// Post is a shorthand for a POST Request.
//
//nolint:revive // Go doesn't allow struct methods to be generic.
func Post[T any](ctx context.Context, d *Dispatcher, rawURL string, options RequestOptions) (*Response[T], error) {
	return Request[T](ctx, d, http.MethodPost, rawURL, options)
}

func (d *Dispatcher) attempt(
	ctx context.Context,
	method, target string,
	headers map[string]string,
	body []byte,
	contentType string,
	timeout time.Duration,
) (*Response[[]byte], error) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}

	request, err := http.NewRequestWithContext(attemptCtx, method, target, reader)
	if err != nil {
		return nil, err
	}

	if contentType != "" {
		request.Header.Set(headerContentType, contentType)
	}

	for name, value := range headers {
		request.Header.Set(name, value)
	}

	response, err := d.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{
			StatusCode: response.StatusCode,
			Body:       data,
		}
	}

	return &Response[[]byte]{
		StatusCode: response.StatusCode,
		Header:     response.Header,
		Data:       data,
	}, nil
}

// isRetryable reports whether an attempt error is worth another try.
// Cancellation of the caller's context is never retried.
func isRetryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Retryable()
	}

	return errors.Is(err, context.DeadlineExceeded)
}

// buildURL merges query into the query string of rawURL.
func buildURL(rawURL string, query url.Values) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}

	if len(query) == 0 {
		return parsed.String(), nil
	}

	merged := parsed.Query()

	for key, values := range query {
		for _, value := range values {
			merged.Add(key, value)
		}
	}

	parsed.RawQuery = merged.Encode()

	return parsed.String(), nil
}

// encodeBody serializes a POST body and reports the content type to send with it.
func encodeBody(body any) ([]byte, string, error) {
	switch value := body.(type) {
	case nil:
		return nil, "", nil
	case []byte:
		return value, "", nil
	case string:
		return []byte(value), "", nil
	default:
		data, err := json.Marshal(value)
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode request body: %w", err)
		}

		return data, contentTypeJSON, nil
	}
}

// requestCacheKey identifies a GET request by URL and caller-supplied headers.
func requestCacheKey(target string, headers map[string]string) string {
	var builder strings.Builder

	builder.WriteString(target)

	for _, name := range slices.Sorted(maps.Keys(headers)) {
		builder.WriteByte('\n')
		builder.WriteString(http.CanonicalHeaderKey(name))
		builder.WriteByte(':')
		builder.WriteString(headers[name])
	}

	return hashing.FastHash(builder.String())
}
