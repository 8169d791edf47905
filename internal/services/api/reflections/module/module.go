// Package module wires reflections into the API using modkit
package module

import (
	"net/http"
	"time"

	modkit "github.com/promptandpause/promptandpause-sub003/internal/modkit"
	"github.com/promptandpause/promptandpause-sub003/internal/modkit/httpkit"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/net/middleware"
	str "github.com/promptandpause/promptandpause-sub003/internal/platform/strings"
	refhttp "github.com/promptandpause/promptandpause-sub003/internal/services/api/reflections/http"
	refrepo "github.com/promptandpause/promptandpause-sub003/internal/services/api/reflections/repo"
	refsvc "github.com/promptandpause/promptandpause-sub003/internal/services/api/reflections/service"
)

// Module implements the modkit.Module interface
type Module struct {
	b    modkit.Built
	auth middleware.AuthPort
	svc  refsvc.Service
}

// New constructs a reflections module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	// entry dates follow the engine's calendar
	loc := deps.Cfg.Prefix("MEMORIES_").MayLocation("TZ", time.UTC)
	svc := refsvc.New(deps.PG, refrepo.NewPG(),
		refsvc.WithConfig(refsvc.ConfigFrom(deps.Cfg.Prefix("REFLECTIONS_"), loc)),
		refsvc.WithSealBox(deps.Seal),
		refsvc.WithClock(deps.Now()),
	)
	return NewWithService(deps, svc, opts...)
}

// NewWithService mounts an existing service; tests hand in fakes here
func NewWithService(deps modkit.Deps, svc refsvc.Service, opts ...modkit.Option) *Module {
	base := []modkit.Option{
		modkit.WithName("reflections"),
		modkit.WithPrefix("/reflections"),
		modkit.WithPorts(adaptReflectionsPort{svc: svc}),
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
			refhttp.Register(pr, m.svc)
		})
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.b.Mw }
