package httpkit

import (
	"net/http"
	"time"

	"floaty/internal/platform/config"
	"floaty/internal/platform/net/middleware"
)

// StackOptions configures the API scope middleware
type StackOptions struct {
	Origins []string
	Slow    time.Duration
	Timeout time.Duration
	// Throttle caps concurrent requests, 0 disables it
	Throttle int
}

// StackFromConfig reads CORS_ORIGINS, SLOW_MS, REQUEST_TIMEOUT and MAX_INFLIGHT
func StackFromConfig(cfg config.Conf) StackOptions {
	return StackOptions{
		Origins:  cfg.MayCSV("CORS_ORIGINS", nil),
		Slow:     time.Duration(cfg.MayInt("SLOW_MS", 500)) * time.Millisecond,
		Timeout:  cfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		Throttle: cfg.MayInt("MAX_INFLIGHT", 0),
	}
}

// CommonStack is the per scope middleware for the API: CORS first so
// preflights never reach a handler, then the platform defaults and the
// access log
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	out := []func(http.Handler) http.Handler{
		middleware.CORS(middleware.CORSOptions{
			AllowedOrigins:  o.Origins,
			AllowExtensions: true,
			MaxAge:          600,
		}),
	}
	out = append(out, middleware.Defaults(o.Timeout)...)
	out = append(out, middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}))
	if o.Throttle > 0 {
		out = append(out, middleware.Throttle(o.Throttle, o.Throttle*2, 5*time.Second))
	}
	return out
}
