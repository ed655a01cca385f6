// Package service implements the note operations over the vault
package service

import (
	"context"

	"floaty/internal/adapters/remotetext"
	"floaty/internal/core/normalize"
	"floaty/internal/core/taskextract"
	perr "floaty/internal/platform/errors"
	str "floaty/internal/platform/strings"
	ptime "floaty/internal/platform/time"
	"floaty/internal/services/api/notes/domain"
	vaultdom "floaty/internal/services/vault/domain"
)

// captureContext is stored when a capture arrives without context
const captureContext = " "

var errNothingToSave = perr.WithField(perr.Validationf("nothing to save"), "text")

// Service implements domain.ServicePort
type Service struct {
	repo   vaultdom.RepositoryPort
	remote remotetext.Service
	popup  *taskextract.Extractor
	clock  ptime.Clock
}

var _ domain.ServicePort = (*Service)(nil)

// New builds a Service. A nil extractor means the popup preset and a nil
// remote means an offline remotetext client
func New(repo vaultdom.RepositoryPort, remote remotetext.Service, popup *taskextract.Extractor, clock ptime.Clock) *Service {
	if repo == nil {
		panic("notes: nil vault repository")
	}
	if popup == nil {
		popup = taskextract.New(taskextract.Popup())
	}
	if remote == nil {
		remote = remotetext.New(remotetext.Options{Extractor: popup})
	}
	return &Service{repo: repo, remote: remote, popup: popup, clock: ptime.Or(clock)}
}

// Compose implements domain.ServicePort. The note goes first
func (s *Service) Compose(ctx context.Context, in domain.ComposeInput) (vaultdom.Note, error) {
	text := normalize.Capture(in.Text)
	if text == "" {
		return vaultdom.Note{}, errNothingToSave
	}
	pageContext := normalize.Capture(in.Context)

	note := vaultdom.Note{
		Title:       s.remote.GenerateTitle(ctx, text, pageContext),
		Content:     text,
		Text:        text,
		Context:     pageContext,
		URL:         in.URL,
		PageTitle:   normalize.Capture(in.PageTitle),
		ActionItems: []vaultdom.ActionItem{},
		Tasks:       []string{},
	}
	if in.ExtractTasks {
		note.ActionItems = actionItems(s.popup.Extract(text))
	}
	if in.Summarize {
		note.Summary = s.remote.GenerateSummary(ctx, text)
	}

	_, err := s.repo.Update(ctx, vaultdom.ReasonNoteComposed, func(snap *vaultdom.Snapshot) (int, error) {
		note.ID = s.repo.NextID()
		note.SavedAt = ptime.ISO(s.clock.Now())
		snap.Notes = append([]vaultdom.Note{note}, snap.Notes...)
		return 1, nil
	})
	if err != nil {
		return vaultdom.Note{}, err
	}
	return note, nil
}

// Capture implements domain.ServicePort. A capture with a known id replaces
// that note in place, anything else is appended
func (s *Service) Capture(ctx context.Context, in domain.CaptureInput) (domain.CaptureResponse, error) {
	text := normalize.Capture(in.Text)
	if text == "" {
		return domain.CaptureResponse{}, errNothingToSave
	}
	tasks := make([]string, 0, len(in.Tasks))
	for _, t := range in.Tasks {
		if t = normalize.Capture(t); t != "" {
			tasks = append(tasks, t)
		}
	}
	note := vaultdom.Note{
		ID:          in.ID,
		Text:        text,
		Content:     text,
		URL:         in.URL,
		Title:       normalize.Capture(in.Title),
		Context:     str.Or(normalize.Capture(in.Context), captureContext),
		Tasks:       tasks,
		ActionItems: actionItems(tasks),
	}

	_, err := s.repo.Update(ctx, vaultdom.ReasonNoteSaved, func(snap *vaultdom.Snapshot) (int, error) {
		if note.ID == 0 {
			note.ID = s.repo.NextID()
		}
		note.Date = ptime.ISO(s.clock.Now())
		for i := range snap.Notes {
			if snap.Notes[i].ID == note.ID {
				snap.Notes[i] = note
				return 1, nil
			}
		}
		snap.Notes = append(snap.Notes, note)
		return 1, nil
	})
	if err != nil {
		return domain.CaptureResponse{}, err
	}
	return domain.CaptureResponse{Success: true, Note: note}, nil
}

// List implements domain.ServicePort
func (s *Service) List(ctx context.Context, in domain.ListInput) (domain.ListResponse, error) {
	snap, err := s.repo.Load(ctx)
	if err != nil {
		return domain.ListResponse{}, err
	}
	out := make([]vaultdom.Note, 0, len(snap.Notes))
	for _, n := range snap.Notes {
		if matches(n, in.Q) {
			out = append(out, n)
		}
	}
	return domain.ListResponse{Notes: out, Total: len(out)}, nil
}

func matches(n vaultdom.Note, q string) bool {
	for _, field := range []string{n.Title, n.Content, n.Text, n.Context, n.URL, n.PageTitle} {
		if normalize.Contains(field, q) {
			return true
		}
	}
	return false
}

// Summarize implements domain.ServicePort. The remote call runs outside the
// vault lock, so the note is looked up again before the summary is stored
func (s *Service) Summarize(ctx context.Context, in domain.IDInput) (vaultdom.Note, error) {
	snap, err := s.repo.Load(ctx)
	if err != nil {
		return vaultdom.Note{}, err
	}
	i := indexOf(snap.Notes, in.ID)
	if i < 0 {
		return vaultdom.Note{}, perr.NotFoundf("note %d not found", in.ID)
	}
	summary := s.remote.GenerateSummary(ctx, str.Coalesce(snap.Notes[i].Content, snap.Notes[i].Text))

	var out vaultdom.Note
	_, err = s.repo.Update(ctx, vaultdom.ReasonNoteSummarized, func(snap *vaultdom.Snapshot) (int, error) {
		i := indexOf(snap.Notes, in.ID)
		if i < 0 {
			return 0, perr.NotFoundf("note %d not found", in.ID)
		}
		snap.Notes[i].Summary = summary
		out = snap.Notes[i]
		return 1, nil
	})
	return out, err
}

// Delete implements domain.ServicePort
func (s *Service) Delete(ctx context.Context, in domain.IDInput) (domain.DeleteResponse, error) {
	_, err := s.repo.Update(ctx, vaultdom.ReasonNoteDeleted, func(snap *vaultdom.Snapshot) (int, error) {
		i := indexOf(snap.Notes, in.ID)
		if i < 0 {
			return 0, perr.NotFoundf("note %d not found", in.ID)
		}
		snap.Notes = append(snap.Notes[:i], snap.Notes[i+1:]...)
		return 1, nil
	})
	if err != nil {
		return domain.DeleteResponse{}, err
	}
	return domain.DeleteResponse{Deleted: true, ID: in.ID}, nil
}

func indexOf(notes []vaultdom.Note, id int64) int {
	for i := range notes {
		if notes[i].ID == id {
			return i
		}
	}
	return -1
}

func actionItems(tasks []string) []vaultdom.ActionItem {
	out := make([]vaultdom.ActionItem, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, vaultdom.ActionItem{Text: t})
	}
	return out
}
