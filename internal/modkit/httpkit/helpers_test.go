package httpkit

import (
	"net/http"
	"net/http/httptest"

	"floaty/internal/platform/config"
)

func serve(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

// testConf points at a prefix nothing in the test environment sets
func testConf() config.Conf { return config.New().Prefix("HTTPKIT_TEST_UNSET_") }
