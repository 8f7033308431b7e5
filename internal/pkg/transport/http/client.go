// Package http provides the per-provider HTTP transport used by every explorer
// provider. It wraps the retryablehttp.Client from HashiCorp and adds what the
// providers need on top of it: a logical-operation URL table, client-side
// request pacing, a post-429 backoff window and a typed error taxonomy.
//
// One Client is created per provider at start-up and shared by every caller of
// that provider. Its pacing and backoff state is therefore shared too.
package http

import (
	"context"
	"crypto/tls"
	"errors"
	nethttp "net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/gabapcia/blockexplorer/internal/pkg/resilience/retry"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"
)

// Endpoints maps a logical operation name (e.g. "get_balance") to a URL or path
// template. Templates use {name} placeholders that are filled from the request
// parameters; {apikey} is always available. Relative templates are appended to
// the client's base URL.
type Endpoints map[string]string

// config holds internal settings for the HTTP client.
type config struct {
	name           string            // provider name used in errors and logs
	apiKey         string            // value substituted for {apikey}
	headers        map[string]string // headers sent with every request
	timeout        time.Duration     // default per-request timeout
	rateLimit      time.Duration     // minimum spacing between requests, zero disables pacing
	backoffTime    time.Duration     // how long to stop calling the provider after a 429
	proxy          *url.URL          // optional outbound proxy
	certificates   []tls.Certificate // optional TLS client certificates
	reliability    uint              // attempts for the opt-in same-provider retry
	reliableStatus map[int]struct{}  // status codes that trigger the opt-in retry
	retryDelay     time.Duration     // base delay of the opt-in retry
}

// Option defines a functional option for configuring the HTTP client.
type Option func(*config)

// Client is the transport of a single provider.
type Client struct {
	name       string
	baseURL    string
	apiKey     string
	endpoints  Endpoints
	headers    map[string]string
	timeout    time.Duration
	backoff    time.Duration
	httpClient *retryablehttp.Client
	limiter    *rate.Limiter // nil when pacing is disabled
	retry      retry.Retry   // nil unless the reliability option is set

	backoffUntil   atomic.Int64 // unix nanoseconds; zero when no backoff is active
	lastResponseAt atomic.Int64 // unix nanoseconds of the last received response

	now func() time.Time
}

// NewClient creates the transport of a provider reachable at baseURL, serving
// the given operations. If no options are given, default values are used:
//
//   - timeout:     5 seconds
//   - rateLimit:   disabled
//   - backoffTime: 1 minute
//   - reliability: disabled (a failed call is never repeated)
func NewClient(baseURL string, endpoints Endpoints, opts ...Option) *Client {
	cfg := config{
		name:        baseURL,
		headers:     map[string]string{},
		timeout:     5 * time.Second,
		backoffTime: 1 * time.Minute,
		retryDelay:  500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	httpClient := retryablehttp.NewClient()
	httpClient.Logger = nil
	httpClient.RetryMax = 0
	httpClient.CheckRetry = neverRetry
	httpClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	if transport, ok := httpClient.HTTPClient.Transport.(*nethttp.Transport); ok {
		if cfg.proxy != nil {
			transport.Proxy = nethttp.ProxyURL(cfg.proxy)
		}
		if len(cfg.certificates) > 0 {
			transport.TLSClientConfig = &tls.Config{
				Certificates: cfg.certificates,
				MinVersion:   tls.VersionTLS12,
			}
		}
	}

	c := &Client{
		name:       cfg.name,
		baseURL:    baseURL,
		apiKey:     cfg.apiKey,
		endpoints:  endpoints,
		headers:    cfg.headers,
		timeout:    cfg.timeout,
		backoff:    cfg.backoffTime,
		httpClient: httpClient,
		now:        time.Now,
	}

	if cfg.rateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Every(cfg.rateLimit), 1)
	}

	if cfg.reliability > 1 {
		statuses := cfg.reliableStatus
		c.retry = retry.New(
			retry.WithAttempts(cfg.reliability),
			retry.WithDelay(cfg.retryDelay),
			retry.WithRetryIf(func(err error) bool {
				var statusErr *StatusError
				if !errors.As(err, &statusErr) {
					return false
				}
				_, ok := statuses[statusErr.StatusCode]
				return ok
			}),
		)
	}

	return c
}

// Name returns the provider name the client was configured with.
func (c *Client) Name() string {
	return c.name
}

// BackoffUntil returns the end of the current backoff window, or the zero time
// when the provider has not been rate limited.
func (c *Client) BackoffUntil() time.Time {
	until := c.backoffUntil.Load()
	if until == 0 {
		return time.Time{}
	}

	return time.Unix(0, until)
}

// LastResponseAt returns when the last response was received, or the zero time.
func (c *Client) LastResponseAt() time.Time {
	at := c.lastResponseAt.Load()
	if at == 0 {
		return time.Time{}
	}

	return time.Unix(0, at)
}

// neverRetry disables the retry loop of retryablehttp. Failover across
// providers is the recovery mechanism, and the opt-in retry is handled above
// the HTTP client where status codes are already classified.
func neverRetry(_ context.Context, _ *nethttp.Response, _ error) (bool, error) {
	return false, nil
}

// WithName sets the provider name used in errors.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithAPIKey sets the value substituted for {apikey} in endpoint templates.
func WithAPIKey(key string) Option {
	return func(c *config) {
		c.apiKey = key
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *config) {
		c.headers[key] = value
	}
}

// WithTimeout sets the default maximum duration of a single request.
// Default: 5 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRateLimit sets the minimum spacing between two requests of this client.
// Default: disabled.
func WithRateLimit(d time.Duration) Option {
	return func(c *config) {
		c.rateLimit = d
	}
}

// WithBackoffTime sets how long the client refuses to call the provider after
// receiving HTTP 429. Default: 1 minute.
func WithBackoffTime(d time.Duration) Option {
	return func(c *config) {
		c.backoffTime = d
	}
}

// WithProxy routes every request through the given proxy.
func WithProxy(u *url.URL) Option {
	return func(c *config) {
		c.proxy = u
	}
}

// WithTLSClientCertificate presents cert to providers requiring mutual TLS.
func WithTLSClientCertificate(cert tls.Certificate) Option {
	return func(c *config) {
		c.certificates = append(c.certificates, cert)
	}
}

// WithReliability repeats a request up to attempts times in total when the
// provider answers with one of statusCodes. Any other failure is returned on
// the first attempt.
func WithReliability(attempts uint, statusCodes ...int) Option {
	return func(c *config) {
		c.reliability = attempts
		c.reliableStatus = make(map[int]struct{}, len(statusCodes))
		for _, code := range statusCodes {
			c.reliableStatus[code] = struct{}{}
		}
	}
}

// WithReliabilityDelay sets the base delay between the attempts of
// WithReliability. Default: 500 milliseconds.
func WithReliabilityDelay(d time.Duration) Option {
	return func(c *config) {
		c.retryDelay = d
	}
}
