// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"floaty/internal/core/version"
	"floaty/internal/modkit"
	"floaty/internal/modkit/httpkit"

	metahttp "floaty/internal/services/api/meta/http"
)

// Ports carries the extractor presets reported by /meta/extractor
type Ports struct {
	Presets []metahttp.Preset
}

// Module implements the modkit.Module interface
type Module struct {
	deps      modkit.Deps
	b         modkit.Built
	presets   []metahttp.Preset
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	p, _ := b.Ports.(Ports)
	return &Module{deps: deps, b: b, presets: p.Presets, startedAt: time.Now()}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	d := metahttp.Deps{
		ServiceName: version.Service,
		StartedAt:   m.startedAt,
		Presets:     m.presets,
	}
	// typed nils would read as configured, so only set what is wired
	if m.deps.HasPG() {
		d.PG = m.deps.PG
	}
	if m.deps.HasCH() {
		d.CH = m.deps.CH
	}
	m.b.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, d) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.Name }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
