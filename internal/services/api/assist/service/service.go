// Package service answers the assist endpoints with a chat model and the
// digest heuristics as fallback
package service

import (
	"context"

	"floaty/internal/core/digest"
	perr "floaty/internal/platform/errors"
	"floaty/internal/platform/logger"
	"floaty/internal/services/api/assist/domain"
)

// Completer sends one prompt and returns the reply. *llm.Chat satisfies it
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Service implements domain.ServicePort
type Service struct {
	llm Completer
	log logger.Logger
}

var _ domain.ServicePort = (*Service)(nil)

// New builds a Service. A nil Completer always falls back
func New(c Completer) *Service {
	return &Service{llm: c, log: *logger.Named("assist")}
}

// Title implements domain.ServicePort
func (s *Service) Title(ctx context.Context, in domain.TextInput) domain.TitleResponse {
	reply, err := s.complete(ctx, "title", TitlePrompt(in.Text, in.Context))
	if err != nil {
		return domain.TitleResponse{Title: digest.FallbackTitle(in.Text)}
	}
	return domain.TitleResponse{Title: reply}
}

// Summary implements domain.ServicePort
func (s *Service) Summary(ctx context.Context, in domain.TextInput) domain.SummaryResponse {
	reply, err := s.complete(ctx, "summary", SummaryPrompt(in.Text))
	if err != nil {
		return domain.SummaryResponse{Summary: digest.FallbackSummary(in.Text)}
	}
	return domain.SummaryResponse{Summary: reply}
}

// Tasks implements domain.ServicePort
func (s *Service) Tasks(ctx context.Context, in domain.TextInput) domain.TasksResponse {
	reply, err := s.complete(ctx, "tasks", TasksPrompt(in.Text, in.Context))
	if err != nil {
		return domain.TasksResponse{Tasks: nonNil(digest.ReviewTasks(in.Text))}
	}
	return domain.TasksResponse{Tasks: nonNil(digest.ParseTaskList(reply))}
}

func (s *Service) complete(ctx context.Context, op, prompt string) (string, error) {
	if s.llm == nil {
		return "", perr.Unavailablef("assist: no model configured")
	}
	reply, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		ev := s.log.Warn()
		if perr.IsCode(err, perr.ErrorCodeUnavailable) {
			ev = s.log.Debug()
		}
		ev.Err(err).Str("op", op).Msg("model call failed, using fallback")
		return "", err
	}
	return reply, nil
}

func nonNil(xs []string) []string {
	if xs == nil {
		return []string{}
	}
	return xs
}
