// Package retry repeats an operation with exponential backoff, on top of
// avast/retry-go.
//
// Explorer calls fail over to the next provider rather than retry. This
// package covers the two places where repeating makes sense: a provider that
// answers some status codes transiently, and a scan cycle whose whole
// provider list was briefly unavailable.
//
//	r := retry.New(
//	    retry.WithAttempts(3),
//	    retry.WithRetryIf(func(err error) bool { return errors.Is(err, http.ErrServerFault) }),
//	)
//	err := r.Execute(ctx, func() error { return fetch(ctx) })
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry runs an operation until it succeeds, the attempts are used up, the
// error is not retryable, or ctx is done.
type Retry interface {
	Execute(ctx context.Context, operation func() error) error
}

// OnRetryFunc observes a failed attempt that is about to be repeated. attempt
// counts from zero.
type OnRetryFunc func(attempt uint, err error)

type config struct {
	attempts    uint
	delay       time.Duration
	maxDelay    time.Duration
	lastErrOnly bool
	retryIf     func(error) bool
	onRetry     OnRetryFunc
}

// Option configures a Retry.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry. Defaults:
//
//   - 3 attempts in total
//   - 1 second base delay, doubling up to 5 seconds
//   - only the last error is returned
//   - every error is retried
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
		retryIf:     func(error) bool { return true },
		onRetry:     func(uint, error) {},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{cfg: cfg}
}

// Execute implements Retry. The first attempt runs immediately.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	return retry.Do(operation,
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.RetryIf(r.cfg.retryIf),
		retry.OnRetry(retry.OnRetryFunc(r.cfg.onRetry)),
		retry.Context(ctx),
	)
}

// WithAttempts sets the number of attempts, the first one included.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between attempts.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the delay between attempts.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly returns only the last error when true, or every attempt's
// error joined when false.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithRetryIf restricts retries to errors for which f returns true. Any other
// error stops the loop and is returned as is.
func WithRetryIf(f func(error) bool) Option {
	return func(c *config) {
		c.retryIf = f
	}
}

// WithOnRetry calls f after each failed attempt that will be repeated.
func WithOnRetry(f OnRetryFunc) Option {
	return func(c *config) {
		if f != nil {
			c.onRetry = f
		}
	}
}
