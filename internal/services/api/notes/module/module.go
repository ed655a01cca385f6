// Package module wires the note endpoints into the API using modkit
package module

import (
	"floaty/internal/adapters/remotetext"
	"floaty/internal/core/taskextract"
	"floaty/internal/modkit"
	"floaty/internal/modkit/httpkit"
	ptime "floaty/internal/platform/time"
	noteshttp "floaty/internal/services/api/notes/http"
	"floaty/internal/services/api/notes/service"
	vaultdom "floaty/internal/services/vault/domain"
)

// Ports are injected with modkit.WithPorts. Vault is required
type Ports struct {
	Vault  vaultdom.RepositoryPort
	Remote remotetext.Service
	Popup  *taskextract.Extractor
	Clock  ptime.Clock
}

// Module implements modkit.Module
type Module struct {
	b   modkit.Built
	svc *service.Service
}

// New constructs the notes module
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("notes"),
		modkit.WithPrefix("/notes"),
	}, opts...)...)

	p, _ := b.Ports.(Ports)
	return &Module{b: b, svc: service.New(p.Vault, p.Remote, p.Popup, p.Clock)}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { noteshttp.Register(rr, m.svc) })
}

// Name implements modkit.Module
func (m *Module) Name() string { return m.b.Name }

// Ports exposes the note service
func (m *Module) Ports() any { return m.svc }
