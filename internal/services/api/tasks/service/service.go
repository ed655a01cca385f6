// Package service implements the task operations over the vault
package service

import (
	"context"

	"floaty/internal/adapters/remotetext"
	"floaty/internal/core/normalize"
	"floaty/internal/core/taskextract"
	perr "floaty/internal/platform/errors"
	ptime "floaty/internal/platform/time"
	"floaty/internal/services/api/tasks/domain"
	vaultdom "floaty/internal/services/vault/domain"
)

// Service implements domain.ServicePort
type Service struct {
	repo   vaultdom.RepositoryPort
	ex     *taskextract.Extractor
	remote remotetext.Service
	clock  ptime.Clock
}

var _ domain.ServicePort = (*Service)(nil)

// New builds a Service. A nil extractor means the background preset and a nil
// remote means an offline remotetext client
func New(repo vaultdom.RepositoryPort, ex *taskextract.Extractor, remote remotetext.Service, clock ptime.Clock) *Service {
	if repo == nil {
		panic("tasks: nil vault repository")
	}
	if ex == nil {
		ex = taskextract.New(taskextract.Background())
	}
	if remote == nil {
		remote = remotetext.New(remotetext.Options{})
	}
	return &Service{repo: repo, ex: ex, remote: remote, clock: ptime.Or(clock)}
}

// Detect implements domain.ServicePort
func (s *Service) Detect(_ context.Context, in domain.DetectInput) domain.DetectResponse {
	text := normalize.Capture(in.Text)
	var (
		tasks []string
		cands []taskextract.Candidate
	)
	if in.Explain {
		tasks, cands = s.ex.Explain(text)
	} else {
		tasks = s.ex.Extract(text)
	}
	if tasks == nil {
		tasks = []string{}
	}
	return domain.DetectResponse{Success: true, ActionItems: len(tasks), Tasks: tasks, Candidates: cands}
}

// Suggest implements domain.ServicePort
func (s *Service) Suggest(ctx context.Context, in domain.SuggestInput) domain.SuggestResponse {
	tasks := s.remote.ExtractActionItems(ctx, normalize.Capture(in.Text), normalize.Capture(in.Context))
	if tasks == nil {
		tasks = []string{}
	}
	return domain.SuggestResponse{Tasks: tasks}
}

// Add implements domain.ServicePort. New tasks go first, in input order
func (s *Service) Add(ctx context.Context, in domain.AddInput) (domain.AddResponse, error) {
	texts := make([]string, 0, len(in.Tasks))
	for _, t := range in.Tasks {
		if t = normalize.Capture(t); t != "" {
			texts = append(texts, t)
		}
	}
	if len(texts) == 0 {
		return domain.AddResponse{}, perr.WithField(perr.Validationf("no tasks to add"), "tasks")
	}

	source := &vaultdom.TaskSource{
		Text:      normalize.Capture(in.SourceText),
		URL:       in.URL,
		PageTitle: normalize.Capture(in.PageTitle),
	}
	_, err := s.repo.Update(ctx, vaultdom.ReasonTasksAdded, func(snap *vaultdom.Snapshot) (int, error) {
		now := ptime.ISO(s.clock.Now())
		fresh := make([]vaultdom.Task, 0, len(texts))
		for _, t := range texts {
			fresh = append(fresh, vaultdom.Task{
				ID:        s.repo.NextID(),
				Text:      t,
				CreatedAt: now,
				Context:   normalize.Capture(in.Context),
				Source:    source,
			})
		}
		snap.Tasks = append(fresh, snap.Tasks...)
		return len(fresh), nil
	})
	if err != nil {
		return domain.AddResponse{}, err
	}
	return domain.AddResponse{Success: true, AddedCount: len(texts)}, nil
}

// List implements domain.ServicePort
func (s *Service) List(ctx context.Context) (domain.ListResponse, error) {
	snap, err := s.repo.Load(ctx)
	if err != nil {
		return domain.ListResponse{}, err
	}
	done := 0
	for _, t := range snap.Tasks {
		if t.Completed {
			done++
		}
	}
	return domain.ListResponse{Tasks: snap.Tasks, Total: len(snap.Tasks), Completed: done}, nil
}

// Toggle implements domain.ServicePort
func (s *Service) Toggle(ctx context.Context, in domain.ToggleInput) (vaultdom.Task, error) {
	var out vaultdom.Task
	_, err := s.repo.Update(ctx, vaultdom.ReasonTaskToggled, func(snap *vaultdom.Snapshot) (int, error) {
		for i := range snap.Tasks {
			if snap.Tasks[i].ID != in.ID {
				continue
			}
			if in.Completed != nil {
				snap.Tasks[i].Completed = *in.Completed
			} else {
				snap.Tasks[i].Completed = !snap.Tasks[i].Completed
			}
			out = snap.Tasks[i]
			return 1, nil
		}
		return 0, perr.NotFoundf("task %d not found", in.ID)
	})
	return out, err
}

// Delete implements domain.ServicePort
func (s *Service) Delete(ctx context.Context, in domain.IDInput) (domain.DeleteResponse, error) {
	_, err := s.repo.Update(ctx, vaultdom.ReasonTaskDeleted, func(snap *vaultdom.Snapshot) (int, error) {
		for i := range snap.Tasks {
			if snap.Tasks[i].ID == in.ID {
				snap.Tasks = append(snap.Tasks[:i], snap.Tasks[i+1:]...)
				return 1, nil
			}
		}
		return 0, perr.NotFoundf("task %d not found", in.ID)
	})
	if err != nil {
		return domain.DeleteResponse{}, err
	}
	return domain.DeleteResponse{Deleted: true, ID: in.ID}, nil
}
