package modkit

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/promptandpause/promptandpause-sub003/internal/modkit/httpkit"
	phttp "github.com/promptandpause/promptandpause-sub003/internal/platform/net/http"
	ptime "github.com/promptandpause/promptandpause-sub003/internal/platform/time"
)

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || len(b.Mw) != 0 {
		t.Fatalf("unexpected defaults %+v", b)
	}
}

func TestBuild_OptionsAndCopySemantics(t *testing.T) {
	t.Parallel()

	fnPtr := func(f func(http.Handler) http.Handler) uintptr {
		return reflect.ValueOf(f).Pointer()
	}
	mwA := func(next http.Handler) http.Handler { return next }
	mwB := func(next http.Handler) http.Handler { return next }
	mid := []func(http.Handler) http.Handler{mwA, mwB}

	type ports struct{ N int }
	b := Build(
		WithName("memories"),
		WithPrefix("/memories"),
		WithMiddlewares(mid...),
		WithPorts(ports{N: 3}),
	)

	if b.Name != "memories" || b.Prefix != "/memories" {
		t.Fatalf("name/prefix = %q %q", b.Name, b.Prefix)
	}
	if got, ok := b.Ports.(ports); !ok || got.N != 3 {
		t.Fatalf("ports = %#v", b.Ports)
	}

	mid[0] = func(next http.Handler) http.Handler { return next }
	if len(b.Mw) != 2 || fnPtr(b.Mw[0]) != fnPtr(mwA) || fnPtr(b.Mw[1]) != fnPtr(mwB) {
		t.Fatalf("Built.Mw not copied")
	}
}

func TestBuilt_Mount(t *testing.T) {
	t.Parallel()

	hit := false
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hit = true
			next.ServeHTTP(w, r)
		})
	}
	mux := chi.NewRouter()
	b := Build(WithPrefix("/reflections"), WithMiddlewares(mw))
	b.Mount(phttp.AdaptChi(mux), func(r httpkit.Router) {
		r.Get("/", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reflections/", nil))
	if rec.Code != http.StatusTeapot || !hit {
		t.Fatalf("code = %d, middleware hit = %v", rec.Code, hit)
	}
}

func TestDeps_Fallbacks(t *testing.T) {
	t.Parallel()

	var d Deps
	if _, ok := d.Now().(ptime.System); !ok {
		t.Fatalf("zero Deps clock should be System")
	}
	if d.Logger("x") == nil {
		t.Fatalf("zero Deps logger should fall back to the process logger")
	}

	fixed := ptime.NewFixed(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))
	d.Clock = fixed
	if d.Now() != fixed {
		t.Fatalf("Deps clock not used")
	}
}
