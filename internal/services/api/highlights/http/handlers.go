// Package http provides the highlight endpoints
package http

import (
	stdhttp "net/http"

	"floaty/internal/modkit/httpkit"
	"floaty/internal/services/api/highlights/domain"
)

// Register mounts the highlight routes
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.SaveInput](r, "/save", h.save)
	httpkit.PostOptional[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.IDInput](r, "/delete", h.delete)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /highlights/save Highlights highlightsSave
// @Summary Save a highlighted fragment
// @Tags Highlights
// @Accept json
// @Produce json
// @Param payload body domain.SaveInput true "Highlight"
// @Success 201 {object} domain.SaveResponse "created"
// @Router /highlights/save [post]
func (h *handlers) save(r *stdhttp.Request, in domain.SaveInput) (any, error) {
	out, err := h.svc.Save(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

// swagger:route POST /highlights/list Highlights highlightsList
// @Summary Search highlights
// @Tags Highlights
// @Accept json
// @Produce json
// @Param payload body domain.ListInput false "Query"
// @Success 200 {object} domain.ListResponse "ok"
// @Router /highlights/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// swagger:route POST /highlights/delete Highlights highlightsDelete
// @Summary Remove a highlight
// @Tags Highlights
// @Accept json
// @Produce json
// @Param payload body domain.IDInput true "Highlight id"
// @Success 200 {object} domain.DeleteResponse "ok"
// @Router /highlights/delete [post]
func (h *handlers) delete(r *stdhttp.Request, in domain.IDInput) (any, error) {
	return h.svc.Delete(r.Context(), in)
}
