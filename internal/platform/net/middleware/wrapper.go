package middleware

import (
	"compress/flate"
	"net/http"
	"strings"
	"time"

	pstrings "floaty/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// RequestID attaches or propagates X-Request-ID
func RequestID() func(http.Handler) http.Handler { return chimw.RequestID }

// RealIP sets RemoteAddr from X-Forwarded-For and X-Real-IP
func RealIP() func(http.Handler) http.Handler { return chimw.RealIP }

// Timeout cancels the request context after d
func Timeout(d time.Duration) func(http.Handler) http.Handler { return chimw.Timeout(d) }

// NoCache disables client and proxy caching
func NoCache() func(http.Handler) http.Handler { return chimw.NoCache }

// Compress gzips responses at level, usually flate.DefaultCompression
func Compress(level int) func(http.Handler) http.Handler {
	c := chimw.NewCompressor(level, "application/json", "text/html", "text/plain")
	return c.Handler
}

// Throttle caps concurrent requests, queueing up to backlog for at most wait
func Throttle(limit, backlog int, wait time.Duration) func(http.Handler) http.Handler {
	return chimw.ThrottleBacklog(limit, backlog, wait)
}

// Heartbeat answers GET path with 200 before routing
func Heartbeat(path string) func(http.Handler) http.Handler { return chimw.Heartbeat(path) }

// CORSOptions is a narrow surface over go-chi/cors
type CORSOptions struct {
	AllowedOrigins []string
	// AllowExtensions admits any chrome-extension:// or moz-extension:// origin
	AllowExtensions bool
	AllowedHeaders  []string
	MaxAge          int
}

var extensionSchemes = []string{"chrome-extension://", "moz-extension://", "safari-web-extension://"}

// IsExtensionOrigin reports whether origin belongs to a browser extension
func IsExtensionOrigin(origin string) bool {
	for _, s := range extensionSchemes {
		if strings.HasPrefix(origin, s) {
			return true
		}
	}
	return false
}

// CORS wraps go-chi/cors for the GET and POST API
func CORS(o CORSOptions) func(http.Handler) http.Handler {
	opts := chicors.Options{
		AllowedOrigins: o.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: pstrings.IfEmpty(o.AllowedHeaders, []string{"Accept", "Content-Type", "X-Request-ID", ClientHeader}),
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         o.MaxAge,
	}
	if o.AllowExtensions {
		allowed := make(map[string]struct{}, len(o.AllowedOrigins))
		wildcard := false
		for _, a := range o.AllowedOrigins {
			if a == "*" {
				wildcard = true
			}
			allowed[a] = struct{}{}
		}
		opts.AllowOriginFunc = func(_ *http.Request, origin string) bool {
			if wildcard || IsExtensionOrigin(origin) {
				return true
			}
			_, ok := allowed[origin]
			return ok
		}
	}
	return chicors.Handler(opts)
}

// Defaults is the stack every API server mounts, outermost first
func Defaults(timeout time.Duration) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		RealIP(),
		RequestID(),
		RequestContext,
		RecoverJSON,
		Timeout(timeout),
		Compress(flate.DefaultCompression),
		NoCache(),
	}
}
