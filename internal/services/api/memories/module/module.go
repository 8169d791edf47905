// Package module wires memories into the API using modkit
package module

import (
	"net/http"

	modkit "github.com/promptandpause/promptandpause-sub003/internal/modkit"
	"github.com/promptandpause/promptandpause-sub003/internal/modkit/httpkit"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/net/middleware"
	str "github.com/promptandpause/promptandpause-sub003/internal/platform/strings"
	memhttp "github.com/promptandpause/promptandpause-sub003/internal/services/api/memories/http"
	memrepo "github.com/promptandpause/promptandpause-sub003/internal/services/api/memories/repo"
	memsvc "github.com/promptandpause/promptandpause-sub003/internal/services/api/memories/service"
)

// Module implements the modkit.Module interface
type Module struct {
	b    modkit.Built
	auth middleware.AuthPort
	svc  memsvc.Service
}

// New constructs a memories module with the provided dependencies and options
// engine settings come from MEMORIES_* keys
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	svc := memsvc.New(deps.PG, memrepo.NewPG(),
		memsvc.WithConfig(memsvc.ConfigFrom(deps.Cfg.Prefix("MEMORIES_"))),
		memsvc.WithSealBox(deps.Seal),
		memsvc.WithClock(deps.Now()),
		memsvc.WithLogger(deps.Logger("memories")),
	)
	return NewWithService(deps, svc, opts...)
}

// NewWithService mounts an existing service; tests hand in fakes here
func NewWithService(deps modkit.Deps, svc memsvc.Service, opts ...modkit.Option) *Module {
	base := []modkit.Option{
		modkit.WithName("memories"),
		modkit.WithPrefix("/memories"),
		modkit.WithPorts(adaptMemoriesPort{svc: svc}),
	}
	return &Module{
		b:    modkit.Build(append(base, opts...)...),
		auth: deps.Auth,
		svc:  svc,
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		httpkit.Protected(rr, m.auth, func(pr httpkit.Router) {
			memhttp.Register(pr, m.svc)
		})
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.b.Mw }
