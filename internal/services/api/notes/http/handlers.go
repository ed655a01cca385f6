// Package http provides the note endpoints
package http

import (
	stdhttp "net/http"

	"floaty/internal/modkit/httpkit"
	"floaty/internal/services/api/notes/domain"
)

// Register mounts the note routes
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ComposeInput](r, "/compose", h.compose)
	httpkit.PostJSON[domain.CaptureInput](r, "/capture", h.capture)
	httpkit.PostOptional[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.IDInput](r, "/summarize", h.summarize)
	httpkit.PostJSON[domain.IDInput](r, "/delete", h.delete)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /notes/compose Notes notesCompose
// @Summary Save a popup note with title, tasks and summary
// @Tags Notes
// @Accept json
// @Produce json
// @Param payload body domain.ComposeInput true "Note"
// @Success 201 {object} domain.Note "created"
// @Router /notes/compose [post]
func (h *handlers) compose(r *stdhttp.Request, in domain.ComposeInput) (any, error) {
	n, err := h.svc.Compose(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(n), nil
}

// swagger:route POST /notes/capture Notes notesCapture
// @Summary Save text selected on a page
// @Tags Notes
// @Accept json
// @Produce json
// @Param payload body domain.CaptureInput true "Capture"
// @Success 201 {object} domain.CaptureResponse "created"
// @Router /notes/capture [post]
func (h *handlers) capture(r *stdhttp.Request, in domain.CaptureInput) (any, error) {
	out, err := h.svc.Capture(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

// swagger:route POST /notes/list Notes notesList
// @Summary Search notes
// @Tags Notes
// @Accept json
// @Produce json
// @Param payload body domain.ListInput false "Query"
// @Success 200 {object} domain.ListResponse "ok"
// @Router /notes/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// swagger:route POST /notes/summarize Notes notesSummarize
// @Summary Generate and store a note summary
// @Tags Notes
// @Accept json
// @Produce json
// @Param payload body domain.IDInput true "Note id"
// @Success 200 {object} domain.Note "ok"
// @Router /notes/summarize [post]
func (h *handlers) summarize(r *stdhttp.Request, in domain.IDInput) (any, error) {
	return h.svc.Summarize(r.Context(), in)
}

// swagger:route POST /notes/delete Notes notesDelete
// @Summary Remove a note
// @Tags Notes
// @Accept json
// @Produce json
// @Param payload body domain.IDInput true "Note id"
// @Success 200 {object} domain.DeleteResponse "ok"
// @Router /notes/delete [post]
func (h *handlers) delete(r *stdhttp.Request, in domain.IDInput) (any, error) {
	return h.svc.Delete(r.Context(), in)
}
