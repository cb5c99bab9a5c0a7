package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/go-task-service/internal/platform/config"
	"github.com/jsamuelsen11/go-task-service/internal/platform/logging"
)

// jitterFraction bounds the random spread applied to each backoff delay.
const jitterFraction = 0.25

// retryPolicy is the unexported copy of config.RetryConfig.
type retryPolicy struct {
	maxAttempts int
	initial     time.Duration
	max         time.Duration
	multiplier  float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		maxAttempts: cfg.MaxAttempts,
		initial:     cfg.InitialInterval,
		max:         cfg.MaxInterval,
		multiplier:  cfg.Multiplier,
	}
}

// attempts returns how many times a request using method may be sent.
func (p retryPolicy) attempts(method string) int {
	if !idempotent(method) {
		return 1
	}
	return p.maxAttempts
}

// idempotent reports whether repeating method has the same effect as
// sending it once. PUT and DELETE on a todo or project qualify; POST does not.
func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// backoff returns the jittered exponential delay before retry number
// attempt, where attempt 1 is the first retry.
func (p retryPolicy) backoff(attempt int) time.Duration {
	delay := float64(p.initial) * math.Pow(p.multiplier, float64(attempt-1))
	delay = min(delay, float64(p.max))
	delay += delay * jitterFraction * (2*rand.Float64() - 1)
	return time.Duration(max(delay, 0))
}

// delay picks the wait before retry number attempt. A Retry-After hint from
// the previous response wins over backoff but never exceeds the max interval.
func (p retryPolicy) delay(attempt int, retryAfterHint string, now time.Time) time.Duration {
	if d, ok := parseRetryAfter(retryAfterHint, now); ok {
		return min(d, p.max)
	}
	return p.backoff(attempt)
}

// parseRetryAfter reads a Retry-After value in either delta-seconds or
// HTTP-date form.
func parseRetryAfter(v string, now time.Time) (time.Duration, bool) {
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0, false
		}
		return time.Duration(secs) * time.Second, true
	}
	if at, err := http.ParseTime(v); err == nil {
		return max(at.Sub(now), 0), true
	}
	return 0, false
}

// send runs the attempt loop. The result goes through resp instead of a
// return value so the caller owns closing the body.
func (c *Client) send(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retry.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: max attempts must be >= 1, got %d", c.retry.maxAttempts)
	}
	attempts := c.retry.attempts(req.Method)

	body, err := bufferBody(req)
	if err != nil {
		return err
	}

	var (
		lastErr error
		hint    string
	)
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.pause(ctx, req, attempt, hint, lastErr); err != nil {
				return err
			}
		}
		rewind(req, body)

		r, err := c.httpClient.Do(req)
		if err != nil {
			lastErr, hint = err, ""
			if !isRetryable(err) {
				return err
			}
			continue
		}

		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		if attempt == attempts-1 {
			*resp = r
			return lastErr
		}
		hint = r.Header.Get("Retry-After")
		drain(r)
	}

	return lastErr
}

func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, hint string, lastErr error) error {
	delay := c.retry.delay(attempt, hint, time.Now())

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retry.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// bufferBody reads and closes the request body so it can be replayed.
func bufferBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()
	return b, nil
}

func rewind(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// drain discards the body so the connection can be reused.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// isRetryable reports whether a transport error may be retried. Canceled
// and expired contexts are final.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus is true for 429 and any 5xx.
func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
