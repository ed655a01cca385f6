// Package service builds the library view the popup loads on open
package service

import (
	"context"

	"floaty/internal/core/digest"
	str "floaty/internal/platform/strings"
	ptime "floaty/internal/platform/time"
	vaultdom "floaty/internal/services/vault/domain"
)

// Item is a note with every display field filled
type Item struct {
	ID          int64                 `json:"id"`
	Title       string                `json:"title"`
	Content     string                `json:"content"`
	Text        string                `json:"text"`
	Context     string                `json:"context"`
	ActionItems []vaultdom.ActionItem `json:"actionItems"`
	Summary     string                `json:"summary"`
	Tasks       []string              `json:"tasks"`
	SavedAt     string                `json:"savedAt"`
	URL         string                `json:"url"`
	PageTitle   string                `json:"pageTitle"`
}

// Library is everything the popup renders
type Library struct {
	Success    bool                 `json:"success"`
	Notes      []Item               `json:"notes"`
	SavedItems []Item               `json:"savedItems"`
	Highlights []vaultdom.Highlight `json:"highlights"`
	Tasks      []vaultdom.Task      `json:"tasks"`
	Settings   vaultdom.Settings    `json:"settings"`
}

// Service loads the library from the vault
type Service struct {
	repo  vaultdom.RepositoryPort
	clock ptime.Clock
}

// New builds a Service
func New(repo vaultdom.RepositoryPort, clock ptime.Clock) *Service {
	if repo == nil {
		panic("library: nil vault repository")
	}
	return &Service{repo: repo, clock: ptime.Or(clock)}
}

// Load returns the whole library
func (s *Service) Load(ctx context.Context) (Library, error) {
	snap, err := s.repo.Load(ctx)
	if err != nil {
		return Library{}, err
	}
	now := ptime.ISO(s.clock.Now())
	items := make([]Item, 0, len(snap.Notes))
	for _, n := range snap.Notes {
		items = append(items, ToItem(n, now))
	}
	return Library{
		Success:    true,
		Notes:      items,
		SavedItems: items,
		Highlights: snap.Highlights,
		Tasks:      snap.Tasks,
		Settings:   snap.Settings,
	}, nil
}

// ToItem fills the display fields of n. now stands in for a missing save time
func ToItem(n vaultdom.Note, now string) Item {
	it := Item{
		ID:          n.ID,
		Title:       str.Coalesce(n.Title, n.Text, digest.UntitledNote),
		Content:     str.Coalesce(n.Content, n.Text),
		Text:        str.Coalesce(n.Text, n.Content),
		Context:     n.Context,
		ActionItems: n.ActionItems,
		Summary:     n.Summary,
		Tasks:       n.Tasks,
		SavedAt:     str.Coalesce(n.Date, n.SavedAt, now),
		URL:         n.URL,
		PageTitle:   n.PageTitle,
	}
	if it.ActionItems == nil {
		it.ActionItems = []vaultdom.ActionItem{}
	}
	if it.Tasks == nil {
		it.Tasks = []string{}
	}
	return it
}
