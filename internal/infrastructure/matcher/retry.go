package matcher

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"

	"github.com/presupuestador/backend/internal/domain"
)

// RetryConfig defines retry behavior for matcher API calls.
type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// DefaultRetryConfig bounds transient-failure retries to a small fixed budget.
var DefaultRetryConfig = RetryConfig{
	MaxAttempts:  4,
	InitialDelay: 1 * time.Second,
	MaxDelay:     8 * time.Second,
	Multiplier:   2.0,
}

// callError is a categorized matcher API failure.
type callError struct {
	err        error
	statusCode int
	retryable  bool
	rateLimit  bool
	// retryAfter is the server-supplied delay for rate-limit responses, zero
	// when the server didn't say.
	retryAfter time.Duration
}

// categorize decides whether an error is worth retrying. Rate limiting and
// server-side overload are transient; auth, bad requests and cancellation are
// not.
func categorize(err error) callError {
	ce := callError{err: err}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		ce.statusCode = apiErr.Code
		switch {
		case apiErr.Code == http.StatusTooManyRequests:
			ce.retryable = true
			ce.rateLimit = true
			ce.retryAfter = parseRetryAfter(apiErr.Header)
		case apiErr.Code >= 500:
			ce.retryable = true
		}
		return ce
	}

	if errors.Is(err, context.DeadlineExceeded) {
		ce.retryable = true
		return ce
	}
	if errors.Is(err, context.Canceled) {
		return ce
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline") ||
		strings.Contains(msg, "connection") || strings.Contains(msg, "unavailable") {
		ce.retryable = true
	}
	return ce
}

func parseRetryAfter(h http.Header) time.Duration {
	if h == nil {
		return 0
	}
	if secs, err := strconv.Atoi(h.Get("Retry-After")); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}

// generateWithRetry executes a GenerateContent call with a bounded retry loop.
// Non-retryable failures propagate immediately; exhausting the budget surfaces
// ErrMatcherUnavailable.
func generateWithRetry(
	ctx context.Context,
	model *genai.GenerativeModel,
	parts []genai.Part,
	cfg RetryConfig,
	debug bool,
) (*genai.GenerateContentResponse, error) {
	var last callError

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		resp, err := model.GenerateContent(ctx, parts...)
		if err == nil {
			if debug && attempt > 1 {
				log.Printf("[MATCHER] retry succeeded on attempt %d", attempt)
			}
			return resp, nil
		}

		last = categorize(err)
		if !last.retryable {
			return nil, fmt.Errorf("matcher call failed: %w", err)
		}
		if attempt >= cfg.MaxAttempts {
			break
		}

		delay := backoffDelay(attempt, cfg)
		if last.rateLimit {
			// Honor the server-supplied delay when present, otherwise lean on
			// a doubled schedule.
			if last.retryAfter > 0 {
				delay = last.retryAfter
			} else {
				delay *= 2
			}
		}
		log.Printf("[MATCHER] attempt %d/%d failed (status %d), retrying in %v: %v",
			attempt, cfg.MaxAttempts, last.statusCode, delay, err)

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("canceled during retry wait: %w", ctx.Err())
		case <-time.After(delay):
		}
	}

	return nil, fmt.Errorf("%w: %d attempts exhausted: %v",
		domain.ErrMatcherUnavailable, cfg.MaxAttempts, last.err)
}

// backoffDelay computes the exponential delay for the given attempt, capped at
// MaxDelay.
func backoffDelay(attempt int, cfg RetryConfig) time.Duration {
	delay := float64(cfg.InitialDelay)
	for i := 1; i < attempt; i++ {
		delay *= cfg.Multiplier
	}
	if delay > float64(cfg.MaxDelay) {
		delay = float64(cfg.MaxDelay)
	}
	return time.Duration(delay)
}
