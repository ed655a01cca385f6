// Package http provides the settings endpoints
package http

import (
	stdhttp "net/http"

	"floaty/internal/modkit/httpkit"
	"floaty/internal/services/api/settings/domain"
)

// Register mounts the settings routes
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.get)
	httpkit.PostOptional[domain.Patch](r, "/update", h.update)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /settings/ Settings settingsGet
// @Summary Popup settings
// @Tags Settings
// @Produce json
// @Success 200 {object} domain.Settings "ok"
// @Router /settings/ [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) { return h.svc.Get(r.Context()) }

// swagger:route POST /settings/update Settings settingsUpdate
// @Summary Patch popup settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param payload body domain.Patch false "Changed flags"
// @Success 200 {object} domain.Settings "ok"
// @Router /settings/update [post]
func (h *handlers) update(r *stdhttp.Request, p domain.Patch) (any, error) {
	return h.svc.Update(r.Context(), p)
}
