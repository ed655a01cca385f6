// Package domain holds the notes request and response types
package domain

import (
	"context"

	vaultdom "floaty/internal/services/vault/domain"
)

// Note is a stored note as compose and summarize return it
type Note = vaultdom.Note

// ComposeInput is a note typed in the popup
type ComposeInput struct {
	Text         string `json:"text"                   example:"Email Sam the draft by Friday."`
	Context      string `json:"context,omitempty"      example:"Work"`
	URL          string `json:"url,omitempty"`
	PageTitle    string `json:"pageTitle,omitempty"`
	ExtractTasks bool   `json:"extractTasks,omitempty"`
	Summarize    bool   `json:"summarize,omitempty"`
}

// CaptureInput is text selected on a page
type CaptureInput struct {
	ID      int64    `json:"id,omitempty" validate:"omitempty,min=1,max=9007199254740992"`
	Text    string   `json:"text"`
	URL     string   `json:"url,omitempty"`
	Title   string   `json:"title,omitempty"`
	Context string   `json:"context,omitempty"`
	Tasks   []string `json:"tasks,omitempty"`
}

// CaptureResponse confirms a saved capture
type CaptureResponse struct {
	Success bool          `json:"success"`
	Note    vaultdom.Note `json:"note"`
}

// ListInput filters notes. An empty Q lists every note
type ListInput struct {
	Q string `json:"q,omitempty" example:"draft"`
}

// ListResponse is the matching notes in stored order
type ListResponse struct {
	Notes []vaultdom.Note `json:"notes"`
	Total int             `json:"total"`
}

// IDInput names one note
type IDInput struct {
	ID int64 `json:"id" validate:"required"`
}

// DeleteResponse confirms a removal
type DeleteResponse struct {
	Deleted bool  `json:"deleted"`
	ID      int64 `json:"id"`
}

// ServicePort is what the HTTP layer uses
type ServicePort interface {
	Compose(ctx context.Context, in ComposeInput) (vaultdom.Note, error)
	Capture(ctx context.Context, in CaptureInput) (CaptureResponse, error)
	List(ctx context.Context, in ListInput) (ListResponse, error)
	Summarize(ctx context.Context, in IDInput) (vaultdom.Note, error)
	Delete(ctx context.Context, in IDInput) (DeleteResponse, error)
}
