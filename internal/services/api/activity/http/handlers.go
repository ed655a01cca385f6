// Package http provides the activity endpoints
package http

import (
	stdhttp "net/http"

	"floaty/internal/modkit/httpkit"
	"floaty/internal/services/activity/domain"
)

// SummaryResponse lists per kind counts
type SummaryResponse struct {
	Kinds []domain.KindCount `json:"kinds"`
}

// Register mounts the activity routes
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostOptional[domain.SummaryInput](r, "/summary", h.summary)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /activity/summary Activity activitySummary
// @Summary Capture counts per kind
// @Tags Activity
// @Accept json
// @Produce json
// @Param payload body domain.SummaryInput false "Window"
// @Success 200 {object} SummaryResponse "ok"
// @Router /activity/summary [post]
func (h *handlers) summary(r *stdhttp.Request, in domain.SummaryInput) (any, error) {
	kinds, err := h.svc.Summary(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return SummaryResponse{Kinds: kinds}, nil
}
