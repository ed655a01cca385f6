package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	fnet "floaty/internal/platform/net"
	phttp "floaty/internal/platform/net/http"
	"floaty/internal/platform/net/middleware"
	kit "floaty/internal/platform/testkit"
)

func TestRecoverJSON(t *testing.T) {
	h := middleware.RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	}))
	req := httptest.NewRequest("POST", "/", nil)
	req = req.WithContext(fnet.WithRequest(req.Context(), "rid-p", ""))
	rr := httptest.NewRecorder()

	kit.MustNotPanic(t, func() { h.ServeHTTP(rr, req) })

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d", rr.Code)
	}
	var env phttp.Envelope
	kit.DecodeJSON(t, rr, &env)
	if env.Kind != "panic" || env.RequestID != "rid-p" || env.Error != "internal error" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestRecoverJSON_AbortHandlerPropagates(t *testing.T) {
	h := middleware.RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))
	kit.MustPanic(t, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	})
}

func TestRecoverJSON_NoPanic(t *testing.T) {
	h := middleware.RecoverJSON(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	if rr.Code != http.StatusAccepted {
		t.Fatalf("code = %d", rr.Code)
	}
}
