// Package service implements the highlight operations over the vault
package service

import (
	"context"

	"floaty/internal/core/normalize"
	perr "floaty/internal/platform/errors"
	str "floaty/internal/platform/strings"
	ptime "floaty/internal/platform/time"
	"floaty/internal/services/api/highlights/domain"
	vaultdom "floaty/internal/services/vault/domain"
)

// Service implements domain.ServicePort
type Service struct {
	repo  vaultdom.RepositoryPort
	clock ptime.Clock
}

var _ domain.ServicePort = (*Service)(nil)

// New builds a Service
func New(repo vaultdom.RepositoryPort, clock ptime.Clock) *Service {
	if repo == nil {
		panic("highlights: nil vault repository")
	}
	return &Service{repo: repo, clock: ptime.Or(clock)}
}

// Save implements domain.ServicePort. Highlights are appended
func (s *Service) Save(ctx context.Context, in domain.SaveInput) (domain.SaveResponse, error) {
	text := normalize.Capture(in.Text)
	if text == "" {
		return domain.SaveResponse{}, perr.WithField(perr.Validationf("nothing to save"), "text")
	}
	h := vaultdom.Highlight{
		ID:        in.ID,
		Content:   text,
		Title:     str.Or(normalize.Capture(in.Title), domain.DefaultTitle),
		Context:   normalize.Capture(in.Context),
		URL:       in.URL,
		PageTitle: normalize.Capture(in.PageTitle),
	}
	_, err := s.repo.Update(ctx, vaultdom.ReasonHighlightSaved, func(snap *vaultdom.Snapshot) (int, error) {
		if h.ID == 0 {
			h.ID = s.repo.NextID()
		}
		h.Date = ptime.ISO(s.clock.Now())
		snap.Highlights = append(snap.Highlights, h)
		return 1, nil
	})
	if err != nil {
		return domain.SaveResponse{}, err
	}
	return domain.SaveResponse{Success: true, Highlight: h}, nil
}

// List implements domain.ServicePort
func (s *Service) List(ctx context.Context, in domain.ListInput) (domain.ListResponse, error) {
	snap, err := s.repo.Load(ctx)
	if err != nil {
		return domain.ListResponse{}, err
	}
	out := make([]vaultdom.Highlight, 0, len(snap.Highlights))
	for _, h := range snap.Highlights {
		if in.URL != "" && h.URL != in.URL {
			continue
		}
		if normalize.Contains(h.Content, in.Q) || normalize.Contains(h.Title, in.Q) || normalize.Contains(h.Context, in.Q) {
			out = append(out, h)
		}
	}
	return domain.ListResponse{Highlights: out, Total: len(out)}, nil
}

// Delete implements domain.ServicePort
func (s *Service) Delete(ctx context.Context, in domain.IDInput) (domain.DeleteResponse, error) {
	_, err := s.repo.Update(ctx, vaultdom.ReasonHighlightDeleted, func(snap *vaultdom.Snapshot) (int, error) {
		for i := range snap.Highlights {
			if snap.Highlights[i].ID == in.ID {
				snap.Highlights = append(snap.Highlights[:i], snap.Highlights[i+1:]...)
				return 1, nil
			}
		}
		return 0, perr.NotFoundf("highlight %d not found", in.ID)
	})
	if err != nil {
		return domain.DeleteResponse{}, err
	}
	return domain.DeleteResponse{Deleted: true, ID: in.ID}, nil
}
