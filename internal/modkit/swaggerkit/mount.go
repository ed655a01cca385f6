package swaggerkit

import (
	"net/http"

	phttp "floaty/internal/platform/net/http"
)

// DocsPrefix is where the UI and the document are served
const DocsPrefix = "/api/docs"

// Mount serves the document at /api/docs/doc.json and the UI under /api/docs
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get(DocsPrefix, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, DocsPrefix+"/index.html", http.StatusPermanentRedirect)
	})
	r.Get(DocsPrefix+"/doc.json", serveDocJSON())
	phttp.MountSwagger(r, DocsPrefix, DocsPrefix+"/doc.json", true)
}
