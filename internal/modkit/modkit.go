package modkit

import (
	"floaty/internal/modkit/module"
)

// Module is the common surface for API modules that mount routes and expose ports
type Module = module.Module

// Builder constructs a Module from shared deps and options
// modules expose New(deps Deps, opts ...Option) Module and match this shape
type Builder func(Deps, ...Option) Module

// BuildAll runs each builder with the same deps, in order
func BuildAll(deps Deps, builders ...Builder) []Module {
	out := make([]Module, 0, len(builders))
	for _, b := range builders {
		if b == nil {
			continue
		}
		out = append(out, b(deps))
	}
	return out
}
