package middleware

import (
	"net/http"

	"floaty/internal/platform/logger"
	fnet "floaty/internal/platform/net"
)

// ClientHeader carries the extension build, e.g. floaty-ext/1.4.0
const ClientHeader = "X-Floaty-Client"

// RequestContext copies the request id, Origin and client headers onto the
// context for handlers and the request logger, and echoes the id back.
// Mount it after RequestID
func RequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		reqID := fnet.RequestID(ctx)
		origin := r.Header.Get("Origin")

		ctx = fnet.WithRequest(ctx, reqID, origin)
		ctx = fnet.WithClient(ctx, r.Header.Get(ClientHeader))
		ctx = logger.WithRequest(ctx, reqID, origin)

		if reqID != "" {
			w.Header().Set("X-Request-ID", reqID)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
