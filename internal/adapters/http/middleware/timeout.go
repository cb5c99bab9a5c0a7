package middleware

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-task-service/internal/adapters/http/dto"
)

// Timeout bounds handler work to d. The handler sees the deadline on its
// request context, so downstream todo API calls give up with it. When the
// deadline passes first the client gets a 504 problem response and whatever
// the handler had buffered is dropped; later handler writes fail with
// http.ErrHandlerTimeout.
//
// A handler panic is re-raised on the serving goroutine so Recovery sees it.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			buf := &bufferedResponse{header: make(http.Header)}
			finished := make(chan any, 1)

			go func() {
				defer func() { finished <- recover() }()
				next.ServeHTTP(buf, r.WithContext(ctx))
			}()

			select {
			case p := <-finished:
				if p != nil {
					panic(p)
				}
				buf.copyTo(w)
			case <-ctx.Done():
				buf.abandon()
				dto.WriteErrorResponse(w, r, fmt.Errorf("request exceeded %s: %w", d, context.DeadlineExceeded))
			}
		})
	}
}

// bufferedResponse holds a handler's response until Timeout decides whether
// it reaches the client.
type bufferedResponse struct {
	mu        sync.Mutex
	header    http.Header
	body      bytes.Buffer
	status    int
	abandoned bool
}

// Header returns the buffered header map. Handlers must not touch it after
// their own goroutine returns, as with any http.ResponseWriter.
func (b *bufferedResponse) Header() http.Header { return b.header }

func (b *bufferedResponse) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status == 0 {
		b.status = code
	}
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

func (b *bufferedResponse) abandon() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.abandoned = true
}

// copyTo sends the buffered response. A handler that wrote nothing gets an
// implicit 200, as net/http would give it.
func (b *bufferedResponse) copyTo(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	_, _ = w.Write(b.body.Bytes())
}
