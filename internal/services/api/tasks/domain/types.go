// Package domain holds the tasks request and response types
package domain

import (
	"context"

	"floaty/internal/core/taskextract"
	vaultdom "floaty/internal/services/vault/domain"
)

// Task is a stored task as the toggle route returns it
type Task = vaultdom.Task

// DetectInput asks the extractor for tasks. Blank text yields none
type DetectInput struct {
	Text    string `json:"text"              example:"Email Sam the draft by Friday. It was a long week."`
	Explain bool   `json:"explain,omitempty"`
}

// DetectResponse mirrors the capture worker reply
type DetectResponse struct {
	Success     bool                    `json:"success"`
	ActionItems int                     `json:"actionItems"`
	Tasks       []string                `json:"tasks"`
	Candidates  []taskextract.Candidate `json:"candidates,omitempty"`
}

// SuggestInput asks the remote service for tasks
type SuggestInput struct {
	Text    string `json:"text"              validate:"required"`
	Context string `json:"context,omitempty"`
}

// SuggestResponse carries suggested tasks
type SuggestResponse struct {
	Tasks []string `json:"tasks"`
}

// AddInput stores tasks taken from page content
type AddInput struct {
	Tasks      []string `json:"tasks"                validate:"required,min=1"`
	SourceText string   `json:"sourceText,omitempty"`
	URL        string   `json:"url,omitempty"`
	PageTitle  string   `json:"pageTitle,omitempty"`
	Context    string   `json:"context,omitempty"`
}

// AddResponse reports how many tasks were stored
type AddResponse struct {
	Success    bool `json:"success"`
	AddedCount int  `json:"addedCount"`
}

// ListResponse is every task, newest first, with counts
type ListResponse struct {
	Tasks     []vaultdom.Task `json:"tasks"`
	Total     int             `json:"total"`
	Completed int             `json:"completed"`
}

// ToggleInput flips a task, or sets it when Completed is given
type ToggleInput struct {
	ID        int64 `json:"id"                  validate:"required"`
	Completed *bool `json:"completed,omitempty"`
}

// IDInput names one record
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
	Detect(ctx context.Context, in DetectInput) DetectResponse
	Suggest(ctx context.Context, in SuggestInput) SuggestResponse
	Add(ctx context.Context, in AddInput) (AddResponse, error)
	List(ctx context.Context) (ListResponse, error)
	Toggle(ctx context.Context, in ToggleInput) (vaultdom.Task, error)
	Delete(ctx context.Context, in IDInput) (DeleteResponse, error)
}
