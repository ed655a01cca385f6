// Package http provides the task endpoints
package http

import (
	stdhttp "net/http"

	"floaty/internal/modkit/httpkit"
	"floaty/internal/services/api/tasks/domain"
)

// Register mounts the task routes
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.DetectInput](r, "/detect", h.detect)
	httpkit.PostJSON[domain.SuggestInput](r, "/suggest", h.suggest)
	httpkit.PostJSON[domain.AddInput](r, "/add", h.add)
	httpkit.Post(r, "/list", h.list)
	httpkit.PostJSON[domain.ToggleInput](r, "/toggle", h.toggle)
	httpkit.PostJSON[domain.IDInput](r, "/delete", h.delete)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /tasks/detect Tasks tasksDetect
// @Summary Extract tasks from captured text
// @Tags Tasks
// @Accept json
// @Produce json
// @Param payload body domain.DetectInput true "Text"
// @Success 200 {object} domain.DetectResponse "ok"
// @Router /tasks/detect [post]
func (h *handlers) detect(r *stdhttp.Request, in domain.DetectInput) (any, error) {
	return h.svc.Detect(r.Context(), in), nil
}

// swagger:route POST /tasks/suggest Tasks tasksSuggest
// @Summary Suggest tasks through the assist service
// @Tags Tasks
// @Accept json
// @Produce json
// @Param payload body domain.SuggestInput true "Text"
// @Success 200 {object} domain.SuggestResponse "ok"
// @Router /tasks/suggest [post]
func (h *handlers) suggest(r *stdhttp.Request, in domain.SuggestInput) (any, error) {
	return h.svc.Suggest(r.Context(), in), nil
}

// swagger:route POST /tasks/add Tasks tasksAdd
// @Summary Store tasks taken from page content
// @Tags Tasks
// @Accept json
// @Produce json
// @Param payload body domain.AddInput true "Tasks"
// @Success 201 {object} domain.AddResponse "created"
// @Router /tasks/add [post]
func (h *handlers) add(r *stdhttp.Request, in domain.AddInput) (any, error) {
	out, err := h.svc.Add(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

// swagger:route POST /tasks/list Tasks tasksList
// @Summary Every task, newest first
// @Tags Tasks
// @Produce json
// @Success 200 {object} domain.ListResponse "ok"
// @Router /tasks/list [post]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context())
}

// swagger:route POST /tasks/toggle Tasks tasksToggle
// @Summary Flip or set a task's completed flag
// @Tags Tasks
// @Accept json
// @Produce json
// @Param payload body domain.ToggleInput true "Task"
// @Success 200 {object} domain.Task "ok"
// @Router /tasks/toggle [post]
func (h *handlers) toggle(r *stdhttp.Request, in domain.ToggleInput) (any, error) {
	return h.svc.Toggle(r.Context(), in)
}

// swagger:route POST /tasks/delete Tasks tasksDelete
// @Summary Remove a task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param payload body domain.IDInput true "Task id"
// @Success 200 {object} domain.DeleteResponse "ok"
// @Router /tasks/delete [post]
func (h *handlers) delete(r *stdhttp.Request, in domain.IDInput) (any, error) {
	return h.svc.Delete(r.Context(), in)
}
