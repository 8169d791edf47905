package httpkit

import (
	"net/http"

	perr "github.com/promptandpause/promptandpause-sub003/internal/platform/errors"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/logger"
)

// TokenFunc verifies a bearer token and returns the owner it was issued to
type TokenFunc func(token string) (ownerID string, err error)

// Port implements middleware.AuthPort by reading Authorization and delegating to a TokenFunc
type Port struct {
	parse TokenFunc
}

// NewPortFunc builds a Port from a token parser
func NewPortFunc(fn TokenFunc) *Port {
	return &Port{parse: fn}
}

// Parse extracts the owner id from the Authorization bearer token
// every failure is reported as the same unauthorized error; the cause goes to the debug log
func (p *Port) Parse(r *http.Request) (string, error) {
	raw, err := JWT(r)
	if err != nil {
		return "", err
	}
	if p == nil || p.parse == nil {
		return "", perr.Unauthorizedf("invalid bearer token")
	}
	owner, err := p.parse(raw)
	if err != nil || owner == "" {
		logger.C(r.Context()).Debug().Err(err).Msg("bearer token rejected")
		return "", perr.Unauthorizedf("invalid bearer token")
	}
	return owner, nil
}
