package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/platform/httpclient"
)

// requester performs JSON round trips against the downstream TODO API.
type requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

func newRequester(client *httpclient.Client, logger *slog.Logger) *requester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &requester{client: client, logger: logger}
}

// Do sends method to path with reqBody as JSON when non-nil and expects
// wantStatus. The response is decoded into respBody when non-nil. Any
// other status goes through TranslateHTTPError.
func (r *requester) Do(ctx context.Context, method, path string, wantStatus int, reqBody, respBody any) error {
	req, err := r.newRequest(ctx, method, path, reqBody)
	if err != nil {
		return err
	}

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}

	switch {
	case err != nil && (resp == nil || resp.StatusCode == wantStatus):
		r.logger.ErrorContext(ctx, "downstream request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s %s: %w", method, path, unavailable(err))
	case resp.StatusCode != wantStatus:
		// Covers both a plain error status and retries that ended on one.
		r.logger.WarnContext(ctx, "unexpected downstream status",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
		)
		return TranslateHTTPError(resp)
	}

	if respBody == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

// unavailable marks a failure to reach the downstream, such as an open
// breaker or a refused connection, as domain.ErrUnavailable while keeping
// the cause. The caller's own cancellation or deadline is left as is.
func unavailable(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
}

func (r *requester) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var rd io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.client.BaseURL()+path, rd)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (r *requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "closing downstream response body", slog.Any("error", err))
	}
}
