// Package http provides the assist endpoints
package http

import (
	stdhttp "net/http"

	"floaty/internal/modkit/httpkit"
	"floaty/internal/services/api/assist/domain"
)

// Register mounts the assist routes
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.TextInput](r, "/generate-title", h.title)
	httpkit.PostJSON[domain.TextInput](r, "/generate-summary", h.summary)
	httpkit.PostJSON[domain.TextInput](r, "/extract-tasks", h.tasks)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /assist/generate-title Assist assistTitle
// @Summary Title for a capture, at most 60 characters
// @Tags Assist
// @Accept json
// @Produce json
// @Param payload body domain.TextInput true "Text"
// @Success 200 {object} domain.TitleResponse "ok"
// @Router /assist/generate-title [post]
func (h *handlers) title(r *stdhttp.Request, in domain.TextInput) (any, error) {
	return h.svc.Title(r.Context(), in), nil
}

// swagger:route POST /assist/generate-summary Assist assistSummary
// @Summary Two or three sentence summary
// @Tags Assist
// @Accept json
// @Produce json
// @Param payload body domain.TextInput true "Text"
// @Success 200 {object} domain.SummaryResponse "ok"
// @Router /assist/generate-summary [post]
func (h *handlers) summary(r *stdhttp.Request, in domain.TextInput) (any, error) {
	return h.svc.Summary(r.Context(), in), nil
}

// swagger:route POST /assist/extract-tasks Assist assistTasks
// @Summary Two or three actionable tasks
// @Tags Assist
// @Accept json
// @Produce json
// @Param payload body domain.TextInput true "Text"
// @Success 200 {object} domain.TasksResponse "ok"
// @Router /assist/extract-tasks [post]
func (h *handlers) tasks(r *stdhttp.Request, in domain.TextInput) (any, error) {
	return h.svc.Tasks(r.Context(), in), nil
}
