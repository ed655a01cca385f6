package http

import (
	httpSwagger "github.com/swaggo/http-swagger"
)

// MountSwagger serves the swagger UI under prefix, e.g. "/api/docs". specURL
// points the UI at the generated document
func MountSwagger(r Router, prefix, specURL string, enabled bool) {
	if !enabled {
		return
	}
	r.Handle(prefix+"/*", httpSwagger.Handler(httpSwagger.URL(specURL)))
}
