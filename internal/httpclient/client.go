// Package httpclient routes outbound calls to weather and language-model
// providers through a circuit breaker with retries and backoff.
package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/sony/gobreaker/v2"
)

// Client errors.
var (
	ErrCircuitOpen         = errors.New("upstream circuit is open")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// RetryPolicy configures retries of 429 and 5xx responses.
type RetryPolicy struct {
	MaxRetries int
	MinWait    time.Duration
	MaxWait    time.Duration
}

// DefaultRetryPolicy returns the policy used for provider calls.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: 3,
		MinWait:    500 * time.Millisecond,
		MaxWait:    10 * time.Second,
	}
}

// BaseClient wraps an *http.Client with a circuit breaker and retries.
type BaseClient struct {
	client      *http.Client
	breaker     *gobreaker.CircuitBreaker[*http.Response]
	retryPolicy RetryPolicy
	userAgent   string
	sleepFn     func(time.Duration)
}

// Option configures a BaseClient.
type Option func(*BaseClient)

// WithSleepFunc replaces the wait between retries. The request context is
// checked after fn returns.
func WithSleepFunc(fn func(time.Duration)) Option {
	return func(c *BaseClient) {
		c.sleepFn = fn
	}
}

// WithRetryPolicy overrides DefaultRetryPolicy.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(c *BaseClient) {
		c.retryPolicy = p
	}
}

// New creates a BaseClient whose breaker trips after more than five
// consecutive failures and half-opens after 30 seconds.
func New(httpClient *http.Client, breakerName, userAgent string, opts ...Option) *BaseClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	cb := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})

	c := &BaseClient{
		client:      httpClient,
		breaker:     cb,
		retryPolicy: DefaultRetryPolicy(),
		userAgent:   userAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Do executes req, retrying 429 and 5xx responses and transport errors.
// Other responses, including 4xx, are returned as-is and the caller closes the body.
func (c *BaseClient) Do(req *http.Request) (*http.Response, error) {
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	// snapshot the body so it can be replayed
	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
		req.Body.Close()
	}

	var lastErr error

	attempts := 1 + c.retryPolicy.MaxRetries
	for attempt := 0; attempt < attempts; attempt++ {
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		resp, err := c.breaker.Execute(func() (*http.Response, error) {
			r, err := c.client.Do(req)
			if err != nil {
				return nil, err
			}
			if r.StatusCode >= http.StatusInternalServerError || r.StatusCode == http.StatusTooManyRequests {
				return r, fmt.Errorf("upstream returned %d", r.StatusCode)
			}
			return r, nil
		})
		if err == nil {
			return resp, nil
		}

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %s", ErrCircuitOpen, c.breaker.Name())
		}

		if ctxErr := req.Context().Err(); ctxErr != nil {
			if resp != nil {
				resp.Body.Close()
			}
			return nil, ctxErr
		}

		lastErr = err
		wait := c.backoff(attempt)
		if resp != nil {
			if ra := retryAfter(resp); ra > 0 {
				wait = ra
				if c.retryPolicy.MaxWait > 0 && wait > c.retryPolicy.MaxWait {
					wait = c.retryPolicy.MaxWait
				}
			}
			resp.Body.Close()
		}

		if attempt < attempts-1 {
			if err := c.wait(req.Context(), wait); err != nil {
				return nil, err
			}
		}
	}

	return nil, fmt.Errorf("%w after %d attempts: %v", ErrUpstreamUnavailable, attempts, lastErr)
}

// wait blocks for d or until ctx is done.
func (c *BaseClient) wait(ctx context.Context, d time.Duration) error {
	if c.sleepFn != nil {
		c.sleepFn(d)
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// backoff is exponential with full jitter, bounded by the policy.
func (c *BaseClient) backoff(attempt int) time.Duration {
	ceil := float64(c.retryPolicy.MinWait) * math.Pow(2, float64(attempt))
	if ceil > float64(c.retryPolicy.MaxWait) {
		ceil = float64(c.retryPolicy.MaxWait)
	}
	if ceil <= 0 {
		return 0
	}

	wait := time.Duration(rand.Int63n(int64(ceil) + 1))
	if wait < c.retryPolicy.MinWait {
		wait = c.retryPolicy.MinWait
	}
	return wait
}

// retryAfter parses a Retry-After header given in seconds.
func retryAfter(resp *http.Response) time.Duration {
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0
	}

	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
