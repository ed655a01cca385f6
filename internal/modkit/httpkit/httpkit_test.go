package httpkit

import (
	"errors"
	"net/http"
	"testing"
	"time"

	perr "floaty/internal/platform/errors"
	phttp "floaty/internal/platform/net/http"
	"floaty/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

type echoIn struct {
	Text string `json:"text" validate:"required"`
}

func newRouter() (*chi.Mux, Router) {
	m := chi.NewRouter()
	m.NotFound(phttp.NotFound)
	m.MethodNotAllowed(phttp.MethodNotAllowed)
	return m, phttp.AdaptChi(m)
}

func TestSugar_Envelopes(t *testing.T) {
	mux, r := newRouter()
	MountAPIV1(r, nil, func(api Router) {
		PostJSON(api, "/echo", func(_ *http.Request, in echoIn) (any, error) {
			return map[string]string{"text": in.Text}, nil
		})
		PostOptional(api, "/opt", func(_ *http.Request, in echoIn) (any, error) {
			return in.Text == "", nil
		})
		Get(api, "/created", func(*http.Request) (any, error) { return Created("x"), nil })
		Post(api, "/boom", func(*http.Request) (any, error) { return nil, perr.NotFoundf("gone") })
		Get(api, "/plain", func(*http.Request) (any, error) { return nil, errors.New("plain") })
	})

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		want   string
	}{
		{"post json", http.MethodPost, "/api/v1/echo", map[string]string{"text": "hi"}, 200, `"text":"hi"`},
		{"missing text", http.MethodPost, "/api/v1/echo", map[string]string{}, 400, `"error":"Text is required"`},
		{"empty body rejected", http.MethodPost, "/api/v1/echo", nil, 400, `empty body`},
		{"optional empty body", http.MethodPost, "/api/v1/opt", nil, 200, `"data":true`},
		{"response passthrough", http.MethodGet, "/api/v1/created", nil, 201, `"data":"x"`},
		{"coded error", http.MethodPost, "/api/v1/boom", nil, 404, `"error":"gone"`},
		{"uncoded error", http.MethodGet, "/api/v1/plain", nil, 500, `"status_code":500`},
		{"wrong method", http.MethodGet, "/api/v1/echo", nil, 405, `Method not allowed`},
		{"unknown route", http.MethodGet, "/api/v1/nope", nil, 404, `no route`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := testkit.Do(t, mux, tc.method, tc.path, tc.body)
			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d body %s", rec.Code, tc.status, rec.Body.String())
			}
			testkit.MustContain(t, rec.Body.String(), tc.want)
		})
	}
}

func TestMountAPI_TrimsVersion(t *testing.T) {
	mux, r := newRouter()
	MountAPI(r, "/v2/", nil, func(api Router) {
		Get(api, "/ping", func(*http.Request) (any, error) { return "pong", nil })
	})
	if rec := testkit.Do(t, mux, http.MethodGet, "/api/v2/ping", nil); rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestMountUnder_AppliesMiddleware(t *testing.T) {
	mux, r := newRouter()
	tag := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Mounted", "1")
			next.ServeHTTP(w, r)
		})
	}
	MountUnder(r, "/notes", []func(http.Handler) http.Handler{tag}, func(sub Router) {
		Get(sub, "/", func(*http.Request) (any, error) { return "ok", nil })
	})
	rec := testkit.Do(t, mux, http.MethodGet, "/notes", nil)
	if rec.Code != 200 || rec.Header().Get("X-Mounted") != "1" {
		t.Fatalf("status %d header %q", rec.Code, rec.Header().Get("X-Mounted"))
	}
}

func TestCommonStack_CORSAndRequestID(t *testing.T) {
	mux, r := newRouter()
	MountAPIV1(r, CommonStack(StackOptions{Origins: []string{"https://app.example"}}), func(api Router) {
		Get(api, "/ping", func(*http.Request) (any, error) { return "pong", nil })
	})

	req := func(method, origin string) *http.Request {
		rq, _ := http.NewRequest(method, "/api/v1/ping", nil)
		rq.Header.Set("Origin", origin)
		if method == http.MethodOptions {
			rq.Header.Set("Access-Control-Request-Method", http.MethodGet)
		}
		return rq
	}

	tests := []struct {
		name   string
		method string
		origin string
		allow  string
	}{
		{"extension preflight", http.MethodOptions, "chrome-extension://abcdef", "chrome-extension://abcdef"},
		{"listed origin", http.MethodGet, "https://app.example", "https://app.example"},
		{"foreign origin", http.MethodGet, "https://evil.example", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(mux, req(tc.method, tc.origin))
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tc.allow {
				t.Fatalf("allow origin = %q, want %q", got, tc.allow)
			}
		})
	}

	rec := serve(mux, req(http.MethodGet, "https://app.example"))
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected X-Request-ID to be echoed")
	}
	testkit.MustContain(t, rec.Body.String(), `"request_id":`)
}

func TestStackFromConfig_Defaults(t *testing.T) {
	o := StackFromConfig(testConf())
	if o.Timeout != 30*time.Second || o.Slow != 500*time.Millisecond || o.Throttle != 0 {
		t.Fatalf("unexpected defaults %+v", o)
	}
	if n := len(CommonStack(StackOptions{Throttle: 4})); n != len(CommonStack(StackOptions{}))+1 {
		t.Fatalf("throttle should add one middleware, got %d", n)
	}
}
