// Package module defines the minimal contract for a modkit module
package module

import (
	phttp "floaty/internal/platform/net/http"
)

// Module is the surface every API module implements
// kept in its own package so a module can export a ports type without an import cycle
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}

// HasPorts reports whether m exposes a non nil port set
func HasPorts(m Module) bool {
	if m == nil {
		return false
	}
	return m.Ports() != nil
}
