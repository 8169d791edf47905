package modkit

import (
	"net/http"

	"github.com/promptandpause/promptandpause-sub003/internal/modkit/httpkit"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any
}

// Build applies Option funcs to an internal buildCfg and returns a plain struct
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	return Built{
		Name:   c.name,
		Prefix: c.prefix,
		Mw:     append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:  c.ports,
	}
}

// Mount routes the module prefix with its middlewares and hands the scoped router to fn
func (b Built) Mount(r httpkit.Router, fn func(httpkit.Router)) {
	httpkit.MountUnder(r, b.Prefix, b.Mw, fn)
}
