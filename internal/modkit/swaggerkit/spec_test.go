package swaggerkit

import (
	"encoding/json"
	"net/http"
	"testing"

	phttp "floaty/internal/platform/net/http"
	"floaty/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

const sampleDoc = `{
	"openapi": "3.1.0",
	"info": {"title": "Floaty API", "version": "1"},
	"paths": {
		"/tasks/add": {"post": {"responses": {"201": {"description": "created"}}}},
		"/meta/health": {"get": {}},
		"/notes/delete": {"post": {"responses": {"400": {"description": "custom"}}}}
	}
}`

func withDoc(t *testing.T, raw string) {
	t.Helper()
	testkit.Serial(t)
	testkit.Swap(t, &docReader, func() string { return raw })
	Reset()
	t.Cleanup(Reset)
}

func fetch(t *testing.T, r http.Handler) (int, map[string]any) {
	t.Helper()
	rec := testkit.Do(t, r, http.MethodGet, DocsPrefix+"/doc.json", nil)
	if rec.Code != http.StatusOK {
		return rec.Code, nil
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Fatalf("cache-control = %q", got)
	}
	var spec map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &spec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rec.Code, spec
}

func mounted(enabled bool) *chi.Mux {
	m := chi.NewRouter()
	Mount(phttp.AdaptChi(m), enabled)
	return m
}

func responses(t *testing.T, spec map[string]any, path, method string) map[string]any {
	t.Helper()
	op := spec["paths"].(map[string]any)[path].(map[string]any)[method].(map[string]any)
	return op["responses"].(map[string]any)
}

func TestServeDocJSON_Defaults(t *testing.T) {
	withDoc(t, sampleDoc)
	t.Setenv("FLOATY_API_DOCS_TITLE_SUFFIX", "(dev)")

	_, spec := fetch(t, mounted(true))

	if spec["openapi"] != "3.0.3" {
		t.Fatalf("openapi = %v, want 3.0.3", spec["openapi"])
	}
	servers := spec["servers"].([]any)
	if servers[0].(map[string]any)["url"] != "/api/v1" {
		t.Fatalf("servers = %v", servers)
	}
	if title := spec["info"].(map[string]any)["title"]; title != "Floaty API (dev)" {
		t.Fatalf("title = %v", title)
	}
	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	props := schemas["ErrorResponse"].(map[string]any)["properties"].(map[string]any)
	for _, k := range []string{"status_code", "status", "code", "kind", "error", "field", "request_id"} {
		if _, ok := props[k]; !ok {
			t.Fatalf("ErrorResponse missing %q", k)
		}
	}

	add := responses(t, spec, "/tasks/add", "post")
	for _, code := range []string{"201", "400", "500"} {
		if _, ok := add[code]; !ok {
			t.Fatalf("/tasks/add missing %s: %v", code, add)
		}
	}
	if _, ok := responses(t, spec, "/meta/health", "get")["500"]; !ok {
		t.Fatal("operation without responses should get a default 500")
	}
	del := responses(t, spec, "/notes/delete", "post")
	if del["400"].(map[string]any)["description"] != "custom" {
		t.Fatalf("declared 400 was replaced: %v", del["400"])
	}
}

func TestServeDocJSON_Mutators(t *testing.T) {
	withDoc(t, `{"swagger":"2.0","info":{"title":"x","version":"1"},"servers":[{"url":"/x"}]}`)
	Register(nil)
	Register(func(spec map[string]any) { spec["x-floaty"] = true })

	_, spec := fetch(t, mounted(true))
	if _, ok := spec["swagger"]; ok {
		t.Fatal("swagger 2 key should be lifted to openapi")
	}
	if spec["openapi"] != "3.0.3" {
		t.Fatalf("openapi = %v", spec["openapi"])
	}
	if spec["servers"].([]any)[0].(map[string]any)["url"] != "/x" {
		t.Fatalf("existing servers overwritten: %v", spec["servers"])
	}
	if spec["x-floaty"] != true {
		t.Fatal("mutator did not run")
	}
}

func TestServeDocJSON_ParseError(t *testing.T) {
	withDoc(t, `{not json`)
	if code, _ := fetch(t, mounted(true)); code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", code)
	}
}

func TestMount(t *testing.T) {
	withDoc(t, `{"openapi":"3.0.3","info":{"title":"API","version":"0.0.0"},"paths":{}}`)

	m := mounted(true)
	if rec := testkit.Do(t, m, http.MethodGet, DocsPrefix, nil); rec.Code != http.StatusPermanentRedirect {
		t.Fatalf("redirect status = %d", rec.Code)
	}
	if code, _ := fetch(t, m); code != http.StatusOK {
		t.Fatalf("doc.json status = %d", code)
	}

	if code, _ := fetch(t, mounted(false)); code != http.StatusNotFound {
		t.Fatalf("disabled docs status = %d", code)
	}
}
