// Package module wires the assist endpoints into the API using modkit
package module

import (
	"floaty/internal/modkit"
	"floaty/internal/modkit/httpkit"
	"floaty/internal/platform/llm"
	assisthttp "floaty/internal/services/api/assist/http"
	"floaty/internal/services/api/assist/service"
)

// Ports may carry a Completer in place of the configured model
type Ports struct {
	Model service.Completer
}

// Module implements modkit.Module
type Module struct {
	b   modkit.Built
	svc *service.Service
}

// New constructs the assist module. The model comes from FLOATY_LLM_ unless
// injected through Ports
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("assist"),
		modkit.WithPrefix("/assist"),
	}, opts...)...)

	var model service.Completer
	if p, ok := b.Ports.(Ports); ok && p.Model != nil {
		model = p.Model
	} else if chat := llm.New(llm.LoadConfig(deps.Cfg)); chat != nil {
		model = chat
		deps.Logger("assist").Info().Str("model", chat.Model()).Msg("assist model configured")
	}
	return &Module{b: b, svc: service.New(model)}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { assisthttp.Register(rr, m.svc) })
}

// Name implements modkit.Module
func (m *Module) Name() string { return m.b.Name }

// Ports exposes the assist service
func (m *Module) Ports() any { return m.svc }
