// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"

	modkit "github.com/promptandpause/promptandpause-sub003/internal/modkit"
	"github.com/promptandpause/promptandpause-sub003/internal/modkit/httpkit"
	str "github.com/promptandpause/promptandpause-sub003/internal/platform/strings"

	metahttp "github.com/promptandpause/promptandpause-sub003/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// New constructs a meta module; meta routes are public
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	clock := deps.Now()
	return &Module{
		b: b,
		deps: metahttp.Deps{
			ServiceName: deps.Cfg.MayString("SERVICE_NAME", "pnp-api"),
			StartedAt:   clock.Now(),
			Clock:       clock,
			PG:          deps.PG,
		},
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, m.deps)
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.b.Name, "meta") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.b.Mw }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
