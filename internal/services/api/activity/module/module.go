// Package module wires the activity log into the API using modkit
package module

import (
	"context"

	"floaty/internal/modkit"
	"floaty/internal/modkit/httpkit"
	"floaty/internal/platform/logger"
	"floaty/internal/services/activity/domain"
	"floaty/internal/services/activity/repo"
	"floaty/internal/services/activity/service"
	activityhttp "floaty/internal/services/api/activity/http"
	vaultdom "floaty/internal/services/vault/domain"
)

// Ports are injected with modkit.WithPorts. Vault is required
type Ports struct {
	Vault  vaultdom.RepositoryPort
	Config service.Config
}

// Module implements modkit.Module
type Module struct {
	deps modkit.Deps
	b    modkit.Built
	log  *logger.Logger

	rec    *service.Recorder
	cancel func()
}

// New constructs the activity module. Recording is a no-op without ClickHouse
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("activity"),
		modkit.WithPrefix("/activity"),
	}, opts...)...)

	p, _ := b.Ports.(Ports)

	var st domain.Storage = repo.Noop{}
	if deps.HasCH() {
		st = repo.NewCH(deps.CH)
	}
	rec := service.New(st, nil, p.Config)

	m := &Module{deps: deps, b: b, log: deps.Logger("activity"), rec: rec, cancel: func() {}}
	if p.Vault != nil {
		m.cancel = p.Vault.Subscribe(rec.Listen)
	}
	return m
}

// Run migrates the event table and drains the recorder until ctx is done
func (m *Module) Run(ctx context.Context) error {
	defer m.cancel()
	if m.deps.HasCH() {
		if err := repo.Migrate(ctx, m.deps.CH); err != nil {
			m.log.Warn().Err(err).Msg("activity table migration failed")
		}
	}
	return m.rec.Run(ctx)
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { activityhttp.Register(rr, m.rec) })
}

// Name implements modkit.Module
func (m *Module) Name() string { return m.b.Name }

// Ports exposes the recorder
func (m *Module) Ports() any { return m.rec }
