// @title         Prompt and Pause API
// @version       0.4.0
// @description   Journaling endpoints and the daily memory resurfacing engine

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"github.com/promptandpause/promptandpause-sub003/internal/core/sealbox"
	"github.com/promptandpause/promptandpause-sub003/internal/core/version"
	"github.com/promptandpause/promptandpause-sub003/internal/modkit/repokit"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/auth"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/config"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/logger"
	phttp "github.com/promptandpause/promptandpause-sub003/internal/platform/net/http"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/net/middleware"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/store"
	ptime "github.com/promptandpause/promptandpause-sub003/internal/platform/time"

	"github.com/promptandpause/promptandpause-sub003/internal/services/api"
)

func main() {
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	sealCfg := root.Prefix("SEAL_")

	logger.Init(logger.FromEnv())
	l := logger.Get()
	l.Info().Str("build", version.Info(root.MayString("SERVICE_NAME", "pnp-api")).String()).Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.ConfigFrom("pnp-api", pgCfg), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	verifier, err := auth.NewVerifier(auth.ConfigFrom(root.Prefix("AUTH_")))
	if err != nil {
		l.Panic().Err(err).Msg("auth verifier")
	}

	box, err := sealbox.FromPassphrase(sealCfg.MayString("PASSPHRASE", ""), sealCfg.MayString("SALT", "pnp"))
	if err != nil {
		l.Panic().Err(err).Msg("seal box")
	}
	if !box.Enabled() {
		l.Warn().Msg("SEAL_PASSPHRASE not set, reflection bodies are stored in plaintext")
	}

	// the load balancer polls /healthz ahead of routing and auth
	srv := phttp.NewServer(apiCfg, func(m *chi.Mux) { m.Use(middleware.Heartbeat("/healthz")) })

	api.Mount(srv.Router(), api.Options{
		Config:         root,
		Store:          st,
		Logger:         l,
		Tokens:         verifier.Owner,
		Seal:           box,
		Clock:          ptime.System{},
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	})

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
