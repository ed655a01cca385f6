// Package module wires the settings endpoints into the API using modkit
package module

import (
	"floaty/internal/modkit"
	"floaty/internal/modkit/httpkit"
	settingshttp "floaty/internal/services/api/settings/http"
	"floaty/internal/services/api/settings/service"
	vaultdom "floaty/internal/services/vault/domain"
)

// Ports are injected with modkit.WithPorts. Vault is required
type Ports struct {
	Vault vaultdom.RepositoryPort
}

// Module implements modkit.Module
type Module struct {
	b   modkit.Built
	svc *service.Service
}

// New constructs the settings module
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("settings"),
		modkit.WithPrefix("/settings"),
	}, opts...)...)

	p, _ := b.Ports.(Ports)
	return &Module{b: b, svc: service.New(p.Vault)}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { settingshttp.Register(rr, m.svc) })
}

// Name implements modkit.Module
func (m *Module) Name() string { return m.b.Name }

// Ports exposes the settings service
func (m *Module) Ports() any { return m.svc }
