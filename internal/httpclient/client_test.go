package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tj/assert"
)

func noSleep(time.Duration) {}

func TestDoRetriesServerErrors(t *testing.T) {
	var hits int32
	var bodies []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(b))
		assert.Equal(t, "planner-test", r.Header.Get("User-Agent"))

		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.Client(), "test", "planner-test", WithSleepFunc(noSleep))

	req, err := http.NewRequest(http.MethodPost, srv.URL, strings.NewReader(`{"q":"Napa"}`))
	assert.Nil(t, err)

	resp, err := c.Do(req)
	assert.Nil(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
	assert.Equal(t, []string{`{"q":"Napa"}`, `{"q":"Napa"}`, `{"q":"Napa"}`}, bodies)
}

func TestDoReturnsClientErrors(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.Client(), "test", "", WithSleepFunc(noSleep))

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	assert.Nil(t, err)

	resp, err := c.Do(req)
	assert.Nil(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestDoHonoursRetryAfter(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.Header().Set("Retry-After", "2")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	var slept []time.Duration
	c := New(srv.Client(), "test", "", WithSleepFunc(func(d time.Duration) { slept = append(slept, d) }))

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	assert.Nil(t, err)

	resp, err := c.Do(req)
	assert.Nil(t, err)
	defer resp.Body.Close()

	assert.Equal(t, []time.Duration{2 * time.Second}, slept)
}

func TestDoCapsRetryAfter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "3600")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	var slept []time.Duration
	c := New(srv.Client(), "test", "", WithSleepFunc(func(d time.Duration) { slept = append(slept, d) }))

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	assert.Nil(t, err)

	_, err = c.Do(req)
	assert.True(t, errors.Is(err, ErrUpstreamUnavailable))

	maxWait := DefaultRetryPolicy().MaxWait
	assert.Equal(t, []time.Duration{maxWait, maxWait, maxWait}, slept)
}

func TestDoStopsWaitingOnCancel(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Retry-After", "3600")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New(srv.Client(), "test", "", WithRetryPolicy(RetryPolicy{MaxRetries: 3, MinWait: time.Second, MaxWait: time.Hour}))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	assert.Nil(t, err)

	start := time.Now()
	resp, err := c.Do(req)
	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.True(t, time.Since(start) < 5*time.Second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestDoExhaustsRetries(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.Client(), "test", "", WithSleepFunc(noSleep))

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	assert.Nil(t, err)

	resp, err := c.Do(req)
	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, ErrUpstreamUnavailable))
	assert.Equal(t, int32(4), atomic.LoadInt32(&hits))
}

func TestDoOpensCircuit(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.Client(), "weather", "",
		WithSleepFunc(noSleep),
		WithRetryPolicy(RetryPolicy{MaxRetries: 0}),
	)

	for i := 0; i < 6; i++ {
		req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
		assert.Nil(t, err)

		_, err = c.Do(req)
		assert.True(t, errors.Is(err, ErrUpstreamUnavailable))
	}

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	assert.Nil(t, err)

	_, err = c.Do(req)
	assert.True(t, errors.Is(err, ErrCircuitOpen))
	assert.Equal(t, int32(6), atomic.LoadInt32(&hits))
}

func TestBackoffBounds(t *testing.T) {
	c := New(nil, "test", "", WithRetryPolicy(RetryPolicy{MaxRetries: 5, MinWait: 100 * time.Millisecond, MaxWait: time.Second}))

	for attempt := 0; attempt < 10; attempt++ {
		wait := c.backoff(attempt)
		assert.True(t, wait >= 100*time.Millisecond, "attempt %d: %v", attempt, wait)
		assert.True(t, wait <= time.Second, "attempt %d: %v", attempt, wait)
	}
}
