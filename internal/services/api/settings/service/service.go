// Package service reads and patches the popup settings
package service

import (
	"context"

	"floaty/internal/services/api/settings/domain"
	vaultdom "floaty/internal/services/vault/domain"
)

// Service implements domain.ServicePort
type Service struct{ repo vaultdom.RepositoryPort }

var _ domain.ServicePort = (*Service)(nil)

// New builds a Service
func New(repo vaultdom.RepositoryPort) *Service {
	if repo == nil {
		panic("settings: nil vault repository")
	}
	return &Service{repo: repo}
}

// Get implements domain.ServicePort
func (s *Service) Get(ctx context.Context) (vaultdom.Settings, error) {
	snap, err := s.repo.Load(ctx)
	if err != nil {
		return vaultdom.Settings{}, err
	}
	return snap.Settings, nil
}

// Update implements domain.ServicePort. An empty patch is a read
func (s *Service) Update(ctx context.Context, p domain.Patch) (vaultdom.Settings, error) {
	if p.Empty() {
		return s.Get(ctx)
	}
	snap, err := s.repo.Update(ctx, vaultdom.ReasonSettingsUpdated, func(snap *vaultdom.Snapshot) (int, error) {
		snap.Settings = p.Apply(snap.Settings)
		return 1, nil
	})
	if err != nil {
		return vaultdom.Settings{}, err
	}
	return snap.Settings, nil
}
