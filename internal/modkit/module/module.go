// Package module defines the minimal contract for a modkit module
package module

import (
	phttp "github.com/promptandpause/promptandpause-sub003/internal/platform/net/http"
)

// Module is what the api composition root mounts
// kept apart from modkit so a module can export its own ports type without an import cycle
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}

// HasPorts reports whether m exposes a port set
func HasPorts(m Module) bool {
	return m != nil && m.Ports() != nil
}
