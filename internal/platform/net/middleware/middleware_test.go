package middleware_test

import (
	"encoding/json"
	stderrs "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	perr "github.com/promptandpause/promptandpause-sub003/internal/platform/errors"
	pnet "github.com/promptandpause/promptandpause-sub003/internal/platform/net"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/net/middleware"
)

type portFunc func(*http.Request) (string, error)

func (f portFunc) Parse(r *http.Request) (string, error) { return f(r) }

func TestAuth(t *testing.T) {
	t.Parallel()

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = pnet.OwnerID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	cases := []struct {
		name   string
		port   middleware.AuthPort
		status int
		owner  string
	}{
		{"nil port passes", nil, http.StatusTeapot, ""},
		{"owner stored", portFunc(func(*http.Request) (string, error) { return "owner-1", nil }), http.StatusTeapot, "owner-1"},
		{"rejected", portFunc(func(*http.Request) (string, error) { return "", perr.Unauthorizedf("invalid bearer token") }), http.StatusUnauthorized, ""},
	}
	for _, c := range cases {
		seen = ""
		rec := httptest.NewRecorder()
		middleware.Auth(c.port, nil)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != c.status || seen != c.owner {
			t.Fatalf("%s: status %d owner %q", c.name, rec.Code, seen)
		}
		if c.status == http.StatusUnauthorized {
			var w pnet.Wire
			if err := json.Unmarshal(rec.Body.Bytes(), &w); err != nil || w.Code != perr.ErrorCodeUnauthorized {
				t.Fatalf("%s: body %s", c.name, rec.Body.String())
			}
		}
	}
}

func TestRecoverJSON(t *testing.T) {
	t.Parallel()

	h := middleware.RequestID()(middleware.RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(stderrs.New("kaboom"))
	})))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	var w pnet.Wire
	if err := json.Unmarshal(rec.Body.Bytes(), &w); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if w.Code != perr.ErrorCodePanic || w.RequestID == "" || strings.Contains(w.Error, "kaboom") {
		t.Fatalf("wire = %+v", w)
	}
}

func TestRecoverJSON_AbortHandlerRepanics(t *testing.T) {
	t.Parallel()

	h := middleware.RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))
	defer func() {
		if recover() != http.ErrAbortHandler {
			t.Fatalf("ErrAbortHandler was swallowed")
		}
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestRequestID_PropagatesHeader(t *testing.T) {
	t.Parallel()

	var inCtx string
	h := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		inCtx = pnet.RequestID(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if inCtx != "abc-123" || rec.Header().Get("X-Request-Id") != "abc-123" {
		t.Fatalf("ctx %q header %q", inCtx, rec.Header().Get("X-Request-Id"))
	}
}

func TestAccessLog_PassesThrough(t *testing.T) {
	t.Parallel()

	for _, slow := range []time.Duration{0, time.Nanosecond} {
		h := middleware.AccessLog(middleware.AccessLogOptions{Slow: slow})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, "made")
		}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/r", nil))
		if rec.Code != http.StatusCreated || rec.Body.String() != "made" {
			t.Fatalf("slow=%v: %d %q", slow, rec.Code, rec.Body.String())
		}
	}
}

func TestCORS_Preflight(t *testing.T) {
	t.Parallel()

	h := middleware.CORS(middleware.CORSOptions{AllowedOrigins: []string{"https://app.example"}})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }),
	)
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/memories/today", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example" {
		t.Fatalf("allow origin = %q", got)
	}
}

func TestWrappersBuild(t *testing.T) {
	t.Parallel()

	mws := []func(http.Handler) http.Handler{
		middleware.RealIP(),
		middleware.Timeout(time.Second),
		middleware.NoCache(),
		middleware.Compress(5),
		middleware.StripSlashes(),
		middleware.Heartbeat("/ping"),
		middleware.Throttle(4, 8, time.Second),
	}
	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "x") })
	for _, mw := range mws {
		h = mw(h)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "." {
		t.Fatalf("heartbeat = %d %q", rec.Code, rec.Body.String())
	}
}
