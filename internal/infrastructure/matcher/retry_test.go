package matcher

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestCategorize(t *testing.T) {
	t.Run("rate limit is retryable and flagged", func(t *testing.T) {
		err := &googleapi.Error{Code: http.StatusTooManyRequests}
		ce := categorize(err)

		assert.True(t, ce.retryable)
		assert.True(t, ce.rateLimit)
		assert.Equal(t, http.StatusTooManyRequests, ce.statusCode)
	})

	t.Run("rate limit honors Retry-After header", func(t *testing.T) {
		err := &googleapi.Error{
			Code:   http.StatusTooManyRequests,
			Header: http.Header{"Retry-After": []string{"7"}},
		}
		ce := categorize(err)

		assert.Equal(t, 7*time.Second, ce.retryAfter)
	})

	t.Run("server errors are retryable", func(t *testing.T) {
		for _, code := range []int{500, 502, 503} {
			ce := categorize(&googleapi.Error{Code: code})
			assert.True(t, ce.retryable, "status %d should be retryable", code)
			assert.False(t, ce.rateLimit)
		}
	})

	t.Run("client errors are not retryable", func(t *testing.T) {
		for _, code := range []int{400, 401, 403, 404} {
			ce := categorize(&googleapi.Error{Code: code})
			assert.False(t, ce.retryable, "status %d should not be retryable", code)
		}
	})

	t.Run("deadline exceeded is retryable", func(t *testing.T) {
		ce := categorize(context.DeadlineExceeded)
		assert.True(t, ce.retryable)
	})

	t.Run("cancellation is not retryable", func(t *testing.T) {
		ce := categorize(context.Canceled)
		assert.False(t, ce.retryable)
	})

	t.Run("transient-looking messages are retryable", func(t *testing.T) {
		for _, msg := range []string{
			"connection reset by peer",
			"request timeout",
			"service unavailable",
		} {
			ce := categorize(errors.New(msg))
			assert.True(t, ce.retryable, "%q should be retryable", msg)
		}
	})

	t.Run("unknown errors are not retryable", func(t *testing.T) {
		ce := categorize(errors.New("invalid api key"))
		assert.False(t, ce.retryable)
	})
}

func TestBackoffDelay(t *testing.T) {
	cfg := RetryConfig{
		MaxAttempts:  4,
		InitialDelay: 1 * time.Second,
		MaxDelay:     8 * time.Second,
		Multiplier:   2.0,
	}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 1 * time.Second},
		{2, 2 * time.Second},
		{3, 4 * time.Second},
		{4, 8 * time.Second},
		{5, 8 * time.Second}, // capped
	}

	for _, tt := range tests {
		got := backoffDelay(tt.attempt, cfg)
		assert.Equal(t, tt.want, got, "attempt %d", tt.attempt)
	}
}

func TestParseRetryAfter(t *testing.T) {
	t.Run("nil header", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), parseRetryAfter(nil))
	})

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), parseRetryAfter(http.Header{}))
	})

	t.Run("seconds value", func(t *testing.T) {
		h := http.Header{"Retry-After": []string{"30"}}
		assert.Equal(t, 30*time.Second, parseRetryAfter(h))
	})

	t.Run("garbage value", func(t *testing.T) {
		h := http.Header{"Retry-After": []string{"Wed, 21 Oct 2015 07:28:00 GMT"}}
		assert.Equal(t, time.Duration(0), parseRetryAfter(h))
	})
}
