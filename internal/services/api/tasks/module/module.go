// Package module wires the task endpoints into the API using modkit
package module

import (
	"floaty/internal/adapters/remotetext"
	"floaty/internal/core/taskextract"
	"floaty/internal/modkit"
	"floaty/internal/modkit/httpkit"
	ptime "floaty/internal/platform/time"
	taskshttp "floaty/internal/services/api/tasks/http"
	"floaty/internal/services/api/tasks/service"
	vaultdom "floaty/internal/services/vault/domain"
)

// Ports are injected with modkit.WithPorts. Vault is required
type Ports struct {
	Vault      vaultdom.RepositoryPort
	Remote     remotetext.Service
	Background *taskextract.Extractor
	Clock      ptime.Clock
}

// Module implements modkit.Module
type Module struct {
	b   modkit.Built
	svc *service.Service
}

// New constructs the tasks module
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("tasks"),
		modkit.WithPrefix("/tasks"),
	}, opts...)...)

	p, _ := b.Ports.(Ports)
	return &Module{b: b, svc: service.New(p.Vault, p.Background, p.Remote, p.Clock)}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { taskshttp.Register(rr, m.svc) })
}

// Name implements modkit.Module
func (m *Module) Name() string { return m.b.Name }

// Ports exposes the task service
func (m *Module) Ports() any { return m.svc }
