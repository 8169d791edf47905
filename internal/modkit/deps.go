// Package modkit provides module wiring and core deps
package modkit

import (
	"github.com/promptandpause/promptandpause-sub003/internal/core/sealbox"
	"github.com/promptandpause/promptandpause-sub003/internal/modkit/repokit"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/config"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/logger"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/net/middleware"
	ptime "github.com/promptandpause/promptandpause-sub003/internal/platform/time"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log   *logger.Logger
	Cfg   config.Conf
	PG    repokit.TxRunner
	Auth  middleware.AuthPort
	Clock ptime.Clock
	// Seal opens and seals reflection bodies; nil stores plaintext
	Seal *sealbox.Box
}

// Now returns the deps clock, falling back to the system clock
func (d Deps) Now() ptime.Clock {
	if d.Clock == nil {
		return ptime.System{}
	}
	return d.Clock
}

// Logger returns d.Log or the process logger scoped to component
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log != nil {
		l := d.Log.With().Str("component", component).Logger()
		return &l
	}
	return logger.Named(component)
}
