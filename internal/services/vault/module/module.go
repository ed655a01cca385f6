// Package module wires the vault and exposes its Repository port
package module

import (
	"context"
	"time"

	"floaty/internal/modkit"
	"floaty/internal/modkit/httpkit"
	ptime "floaty/internal/platform/time"
	"floaty/internal/services/vault/domain"
	"floaty/internal/services/vault/repo"
	"floaty/internal/services/vault/service"
)

// Ports are what other modules consume
type Ports struct {
	Repo domain.RepositoryPort
}

// Options tune the vault module
type Options struct {
	// Clock drives ids and timestamps, the system clock when nil
	Clock ptime.Clock
	// MigrateTimeout bounds the schema bootstrap, 10s when zero
	MigrateTimeout time.Duration
}

// Module defines the vault module. It mounts no routes
type Module struct {
	deps    modkit.Deps
	ports   Ports
	backend string
}

// New picks the Postgres KV when deps.PG is wired and the in memory KV
// otherwise, then builds the Repository over it
func New(ctx context.Context, deps modkit.Deps, o Options) (*Module, error) {
	log := deps.Logger("vault")

	var (
		kv      domain.KV
		backend string
	)
	if deps.HasPG() {
		pg := repo.NewPG(deps.PG)
		timeout := o.MigrateTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		mctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		if err := pg.Migrate(mctx); err != nil {
			return nil, err
		}
		kv, backend = pg, "postgres"
	} else {
		kv, backend = repo.NewMemory(), "memory"
	}
	log.Info().Str("backend", backend).Msg("vault ready")

	return &Module{
		deps:    deps,
		ports:   Ports{Repo: service.New(kv, o.Clock)},
		backend: backend,
	}, nil
}

// Backend names the KV in use
func (m *Module) Backend() string { return m.backend }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "vault" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
