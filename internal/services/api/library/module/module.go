// Package module wires the library endpoint into the API using modkit
package module

import (
	"floaty/internal/modkit"
	"floaty/internal/modkit/httpkit"
	ptime "floaty/internal/platform/time"
	libraryhttp "floaty/internal/services/api/library/http"
	"floaty/internal/services/api/library/service"
	vaultdom "floaty/internal/services/vault/domain"
)

// Ports are injected with modkit.WithPorts. Vault is required
type Ports struct {
	Vault vaultdom.RepositoryPort
	Clock ptime.Clock
}

// Module implements modkit.Module
type Module struct {
	b   modkit.Built
	svc *service.Service
}

// New constructs the library module
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("library"),
		modkit.WithPrefix("/library"),
	}, opts...)...)

	p, _ := b.Ports.(Ports)
	return &Module{b: b, svc: service.New(p.Vault, p.Clock)}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { libraryhttp.Register(rr, m.svc) })
}

// Name implements modkit.Module
func (m *Module) Name() string { return m.b.Name }

// Ports exposes the library service
func (m *Module) Ports() any { return m.svc }
