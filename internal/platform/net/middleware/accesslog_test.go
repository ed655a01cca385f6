package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"floaty/internal/platform/net/middleware"
)

func TestAccessLogZerolog_PassThrough(t *testing.T) {
	tests := []struct {
		name string
		opt  middleware.AccessLogOptions
		path string
		code int
	}{
		{"plain", middleware.AccessLogOptions{}, "/api/v1/tasks/detect", http.StatusCreated},
		{"slow", middleware.AccessLogOptions{Slow: time.Nanosecond}, "/slow", http.StatusOK},
		{"server error", middleware.AccessLogOptions{}, "/boom", http.StatusBadGateway},
		{"skipped", middleware.AccessLogOptions{Skip: []string{"/api/v1/meta/health"}}, "/api/v1/meta/health", http.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.code)
				_, _ = io.WriteString(w, "ok")
				_, _ = io.WriteString(w, "!")
			})
			rr := httptest.NewRecorder()
			middleware.AccessLogZerolog(tc.opt)(next).ServeHTTP(rr, httptest.NewRequest("POST", tc.path, nil))
			if rr.Code != tc.code || rr.Body.String() != "ok!" {
				t.Fatalf("got %d %q", rr.Code, rr.Body.String())
			}
		})
	}
}
