package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-task-service/internal/platform/config"
)

func testPolicy() retryPolicy {
	return newRetryPolicy(config.RetryConfig{
		MaxAttempts:     4,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     500 * time.Millisecond,
		Multiplier:      2.0,
	})
}

func TestRetryPolicy_Backoff(t *testing.T) {
	t.Parallel()

	p := testPolicy()
	tests := []struct {
		attempt int
		base    time.Duration
	}{
		{attempt: 1, base: 100 * time.Millisecond},
		{attempt: 2, base: 200 * time.Millisecond},
		{attempt: 3, base: 400 * time.Millisecond},
		{attempt: 4, base: 500 * time.Millisecond},  // capped
		{attempt: 10, base: 500 * time.Millisecond}, // capped
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("attempt %d", tt.attempt), func(t *testing.T) {
			t.Parallel()

			lo := time.Duration(float64(tt.base) * (1 - jitterFraction))
			hi := time.Duration(float64(tt.base) * (1 + jitterFraction))
			for range 200 {
				if d := p.backoff(tt.attempt); d < lo || d > hi {
					t.Fatalf("backoff(%d) = %v, want within [%v, %v]", tt.attempt, d, lo, hi)
				}
			}
		})
	}
}

func TestRetryPolicy_Attempts(t *testing.T) {
	t.Parallel()

	p := testPolicy()
	tests := []struct {
		method string
		want   int
	}{
		{http.MethodGet, 4},
		{http.MethodPut, 4},
		{http.MethodDelete, 4},
		{http.MethodHead, 4},
		{http.MethodPost, 1},
		{http.MethodPatch, 1},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			t.Parallel()
			if got := p.attempts(tt.method); got != tt.want {
				t.Errorf("attempts(%s) = %d, want %d", tt.method, got, tt.want)
			}
		})
	}
}

func TestRetryPolicy_DelayPrefersRetryAfter(t *testing.T) {
	t.Parallel()

	p := testPolicy()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if got := p.delay(1, "0", now); got != 0 {
		t.Errorf("delay with Retry-After 0 = %v, want 0", got)
	}
	if got := p.delay(1, "30", now); got != p.max {
		t.Errorf("delay with Retry-After 30 = %v, want capped at %v", got, p.max)
	}
	if got := p.delay(1, "garbage", now); got <= 0 || got > p.max {
		t.Errorf("delay with bad Retry-After = %v, want jittered backoff", got)
	}
}

func TestParseRetryAfter(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		value  string
		want   time.Duration
		wantOK bool
	}{
		{name: "empty", value: "", wantOK: false},
		{name: "seconds", value: "2", want: 2 * time.Second, wantOK: true},
		{name: "negative seconds", value: "-1", wantOK: false},
		{name: "http date", value: now.Add(3 * time.Second).Format(http.TimeFormat), want: 3 * time.Second, wantOK: true},
		{name: "date in the past", value: now.Add(-time.Minute).Format(http.TimeFormat), want: 0, wantOK: true},
		{name: "unparseable", value: "soon", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := parseRetryAfter(tt.value, now)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("parseRetryAfter(%q) = %v, %v; want %v, %v", tt.value, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "deadline", err: fmt.Errorf("get: %w", context.DeadlineExceeded), want: false},
		{name: "net error", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: true},
		{name: "other", err: errors.New("something failed"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isRetryable(tt.err); got != tt.want {
				t.Errorf("isRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code int
		want bool
	}{
		{http.StatusOK, false},
		{http.StatusCreated, false},
		{http.StatusNoContent, false},
		{http.StatusBadRequest, false},
		{http.StatusNotFound, false},
		{http.StatusConflict, false},
		{http.StatusTooManyRequests, true},
		{http.StatusInternalServerError, true},
		{http.StatusBadGateway, true},
		{http.StatusServiceUnavailable, true},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			t.Parallel()
			if got := isRetryableStatus(tt.code); got != tt.want {
				t.Errorf("isRetryableStatus(%d) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestToUint32(t *testing.T) {
	t.Parallel()

	for in, want := range map[int]uint32{-3: 0, 0: 0, 7: 7} {
		if got := toUint32(in); got != want {
			t.Errorf("toUint32(%d) = %d, want %d", in, got, want)
		}
	}
}
