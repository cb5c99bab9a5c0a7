package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/go-task-service/internal/app/context"
)

// AppContext returns middleware that attaches a fresh appctx.RequestContext to
// each request. Services use it to share todo and project lookups within the
// request, keyed by branded identifier. Register it after CorrelationID.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			ctx := appctx.WithRequestContext(r.Context(), rc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
