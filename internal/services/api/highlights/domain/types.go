// Package domain holds the highlights request and response types
package domain

import (
	"context"

	vaultdom "floaty/internal/services/vault/domain"
)

// DefaultTitle names a highlight saved without a title
const DefaultTitle = "Highlighted Text"

// SaveInput is a highlighted fragment
type SaveInput struct {
	ID        int64  `json:"id,omitempty" validate:"omitempty,min=1,max=9007199254740992"`
	Text      string `json:"text"`
	Title     string `json:"title,omitempty"`
	Context   string `json:"context,omitempty"`
	URL       string `json:"url,omitempty"`
	PageTitle string `json:"pageTitle,omitempty"`
}

// SaveResponse confirms a saved highlight
type SaveResponse struct {
	Success   bool               `json:"success"`
	Highlight vaultdom.Highlight `json:"highlight"`
}

// ListInput filters highlights. An empty Q or URL lists every highlight
type ListInput struct {
	Q   string `json:"q,omitempty"`
	URL string `json:"url,omitempty"`
}

// ListResponse is the matching highlights in stored order
type ListResponse struct {
	Highlights []vaultdom.Highlight `json:"highlights"`
	Total      int                  `json:"total"`
}

// IDInput names one highlight
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
	Save(ctx context.Context, in SaveInput) (SaveResponse, error)
	List(ctx context.Context, in ListInput) (ListResponse, error)
	Delete(ctx context.Context, in IDInput) (DeleteResponse, error)
}
