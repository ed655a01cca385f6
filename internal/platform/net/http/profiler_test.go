package http_test

import (
	"net/http"
	"testing"

	"floaty/internal/platform/config"
	phttp "floaty/internal/platform/net/http"
	kit "floaty/internal/platform/testkit"
)

func TestMountProfiler(t *testing.T) {
	srv := phttp.NewServer(config.New())
	phttp.MountProfiler(srv.Router(), "/debug", true)

	for _, p := range []string{"/debug/pprof/", "/debug/pprof/cmdline"} {
		if rec := kit.Do(t, srv.Handler(), "GET", p, nil); rec.Code != http.StatusOK {
			t.Fatalf("GET %s = %d", p, rec.Code)
		}
	}
}

func TestMountProfiler_Disabled(t *testing.T) {
	srv := phttp.NewServer(config.New())
	phttp.MountProfiler(srv.Router(), "/debug", false)
	if rec := kit.Do(t, srv.Handler(), "GET", "/debug/pprof/", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("disabled profiler = %d, want 404", rec.Code)
	}
}

func TestMountSwagger_Disabled(t *testing.T) {
	srv := phttp.NewServer(config.New())
	phttp.MountSwagger(srv.Router(), "/api/docs", "/api/docs/doc.json", false)
	if rec := kit.Do(t, srv.Handler(), "GET", "/api/docs/index.html", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("disabled swagger = %d, want 404", rec.Code)
	}
}

func TestMountSwagger_ServesUI(t *testing.T) {
	srv := phttp.NewServer(config.New())
	phttp.MountSwagger(srv.Router(), "/api/docs", "/api/docs/doc.json", true)
	rec := kit.Do(t, srv.Handler(), "GET", "/api/docs/index.html", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("swagger index = %d", rec.Code)
	}
	kit.MustContain(t, rec.Body.String(), "/api/docs/doc.json")
}
