package module

import (
	"context"
	"encoding/json"
	stderrs "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	modkit "github.com/promptandpause/promptandpause-sub003/internal/modkit"
	"github.com/promptandpause/promptandpause-sub003/internal/modkit/repokit"
	phttp "github.com/promptandpause/promptandpause-sub003/internal/platform/net/http"
	ptime "github.com/promptandpause/promptandpause-sub003/internal/platform/time"
)

type pingTx struct {
	repokit.TxRunner
	err error
}

func (p pingTx) Ping(context.Context) error { return p.err }

func get(t *testing.T, deps modkit.Deps, path string) map[string]any {
	t.Helper()
	mux := chi.NewRouter()
	New(deps).MountRoutes(phttp.AdaptChi(mux))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var env struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env.Data
}

func TestReady(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		pg   repokit.TxRunner
		want string
	}{
		{"no store", nil, "degraded"},
		{"healthy", pingTx{}, "ok"},
		{"down", pingTx{err: stderrs.New("connection refused")}, "fail"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			data := get(t, modkit.Deps{PG: tc.pg}, "/meta/ready")
			assert.Equal(t, tc.want, data["status"])
		})
	}
}

func TestServiceUptime(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 10, 1, 7, 0, 0, 0, time.UTC)
	clock := ptime.NewFixed(start)
	deps := modkit.Deps{Clock: clock}
	mux := chi.NewRouter()
	New(deps).MountRoutes(phttp.AdaptChi(mux))
	clock.Set(start.Add(5 * time.Minute))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/meta/service", nil))
	var env struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "pnp-api", env.Data["name"])
	assert.EqualValues(t, 300, env.Data["uptime"])
}

func TestVersion(t *testing.T) {
	t.Parallel()

	data := get(t, modkit.Deps{}, "/meta/version")
	assert.Equal(t, "pnp-api", data["service"])
	assert.NotEmpty(t, data["go"])
}
