// Package http provides the library endpoint
package http

import (
	stdhttp "net/http"

	"floaty/internal/modkit/httpkit"
	"floaty/internal/services/api/library/service"
)

// Register mounts the library route
func Register(r httpkit.Router, s *service.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.load)
}

type handlers struct{ svc *service.Service }

// swagger:route GET /library/ Library libraryLoad
// @Summary Notes, highlights, tasks and settings in one call
// @Tags Library
// @Produce json
// @Success 200 {object} service.Library "ok"
// @Router /library/ [get]
func (h *handlers) load(r *stdhttp.Request) (any, error) { return h.svc.Load(r.Context()) }
