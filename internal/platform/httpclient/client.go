// Package httpclient is the outbound HTTP client used to reach the
// downstream TODO API. Each call passes through, in order:
//
//	circuit breaker → rate limiter → ID headers → client span → retry → transport
//
// Only idempotent methods are retried. A POST that creates a todo or a
// project is sent once, because a retry after a lost response would create
// a duplicate entity with a fresh identifier.
package httpclient

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/go-task-service/internal/platform/config"
	"github.com/jsamuelsen11/go-task-service/internal/platform/telemetry"
)

// Client sends requests to one downstream service.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[struct{}]
	limiter     *rate.Limiter // nil disables rate limiting
	retry       retryPolicy
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New builds a Client from cfg. serviceName labels traces, metrics, and
// health results (for example "todo-api"). metrics may be nil.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		breaker:     newBreaker(serviceName, cfg.CircuitBreaker, logger),
		limiter:     limiter,
		retry:       newRetryPolicy(cfg.Retry),
		metrics:     metrics,
		logger:      logger,
	}
}

// Do sends req. On success resp carries an open body the caller closes.
//
// When every attempt ended in a retryable status, both resp and err are
// non-nil so the caller can still translate the final response. resp is nil
// when the breaker rejects the call or the transport fails.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	method := req.Method

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, err
			}
		}

		propagateIDs(ctx, req.Header)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		req = req.WithContext(spanCtx)
		sendErr := c.send(spanCtx, req, &resp)
		finishSpan(span, resp, sendErr)

		return struct{}{}, sendErr
	})

	c.recordMetrics(ctx, method, start, resp, err)
	return resp, err
}

// BaseURL returns the downstream root URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name returns the downstream service name.
func (c *Client) Name() string {
	return c.serviceName
}
