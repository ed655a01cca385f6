// Package domain holds the assist request and response types
package domain

import "context"

// TextInput is the body of every assist endpoint
type TextInput struct {
	Text    string `json:"text"              validate:"required" example:"Email Sam the draft by Friday."`
	Context string `json:"context,omitempty" example:"Inbox"`
}

// TitleResponse carries a generated title
type TitleResponse struct {
	Title string `json:"title" example:"Email Sam the draft"`
}

// SummaryResponse carries a generated summary
type SummaryResponse struct {
	Summary string `json:"summary" example:"Sam needs the draft. It is due Friday."`
}

// TasksResponse carries extracted tasks
type TasksResponse struct {
	Tasks []string `json:"tasks"`
}

// ServicePort is what the HTTP layer uses. Every call answers, falling back to
// local heuristics when the model is unavailable
type ServicePort interface {
	Title(ctx context.Context, in TextInput) TitleResponse
	Summary(ctx context.Context, in TextInput) SummaryResponse
	Tasks(ctx context.Context, in TextInput) TasksResponse
}
