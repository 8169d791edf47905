// Package api provides the HTTP API for the application
package api

import (
	"github.com/promptandpause/promptandpause-sub003/internal/core/sealbox"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/config"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/logger"
	phttp "github.com/promptandpause/promptandpause-sub003/internal/platform/net/http"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/store"
	ptime "github.com/promptandpause/promptandpause-sub003/internal/platform/time"

	"github.com/promptandpause/promptandpause-sub003/internal/modkit"
	"github.com/promptandpause/promptandpause-sub003/internal/modkit/httpkit"
	"github.com/promptandpause/promptandpause-sub003/internal/modkit/module"
	"github.com/promptandpause/promptandpause-sub003/internal/modkit/repokit"
	"github.com/promptandpause/promptandpause-sub003/internal/modkit/swaggerkit"

	"github.com/promptandpause/promptandpause-sub003/internal/services/api/docs"
	memoriesmod "github.com/promptandpause/promptandpause-sub003/internal/services/api/memories/module"
	metamod "github.com/promptandpause/promptandpause-sub003/internal/services/api/meta/module"
	reflectionsmod "github.com/promptandpause/promptandpause-sub003/internal/services/api/reflections/module"
)

// Options are the API options
type Options struct {
	// Config is the root config; modules read their own prefixes from it
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger
	// Tokens verifies bearer tokens, usually auth.Verifier.Owner
	Tokens httpkit.TokenFunc
	Seal   *sealbox.Box
	Clock  ptime.Clock

	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router and returns the mounted modules
func Mount(r phttp.Router, opt Options) []module.Module {
	var pg repokit.TxRunner
	if opt.Store != nil && opt.Store.PG != nil {
		pg = repokit.WithBeginHooks(opt.Store.PG, repokit.OwnerScope)
	}

	// shared deps for modules
	deps := modkit.Deps{
		Log:   opt.Logger,
		Cfg:   opt.Config,
		PG:    pg,
		Auth:  httpkit.NewPortFunc(opt.Tokens),
		Clock: opt.Clock,
		Seal:  opt.Seal,
	}

	mods := []module.Module{
		metamod.New(deps),
		reflectionsmod.New(deps),
		memoriesmod.New(deps),
	}

	swaggerkit.Mount(r, opt.EnableSwagger, docs.SwaggerInfo)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	stack := httpkit.CommonStack(httpkit.StackOptionsFrom(opt.Config.Prefix("CORE_API_")))
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			// ports are looked up by module name
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
	return mods
}
