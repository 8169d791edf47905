package http

import (
	"net/http"
	"strconv"
	"strings"

	perr "github.com/promptandpause/promptandpause-sub003/internal/platform/errors"

	"github.com/go-chi/chi/v5"
)

// Handler is the function shape every route registers
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the routing surface modules mount against; chi stays behind it
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Put(path string, h Handler)
	Patch(path string, h Handler)
	Delete(path string, h Handler)
	Head(path string, h Handler)
	Options(path string, h Handler)

	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	Mux() http.Handler
}

// URLParam returns the named path parameter of the matched route
func URLParam(r *http.Request, name string) string { return chi.URLParam(r, name) }

// QueryInt reads a positive integer query parameter
// Missing yields def, values above max are clamped, anything else is an invalid argument
func QueryInt(r *http.Request, name string, def, max int) (int, error) {
	s := strings.TrimSpace(r.URL.Query().Get(name))
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, perr.WithField(perr.InvalidArgf("%s must be a positive integer", name), name)
	}
	if max > 0 && n > max {
		n = max
	}
	return n, nil
}
