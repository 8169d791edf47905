package httpkit

import (
	"net/http"
	"strings"

	perr "github.com/promptandpause/promptandpause-sub003/internal/platform/errors"
	pnet "github.com/promptandpause/promptandpause-sub003/internal/platform/net"
)

// User returns the authenticated owner id from the request context
func User(r *http.Request) (string, error) {
	owner := pnet.OwnerID(r.Context())
	if owner == "" {
		return "", perr.Unauthorizedf("missing bearer token")
	}
	return owner, nil
}

// MustUser returns the authenticated owner id or panics
// only use on routes behind Protected
func MustUser(r *http.Request) string {
	owner, err := User(r)
	if err != nil {
		panic(err)
	}
	return owner
}

// JWT returns the raw bearer token from the Authorization header
func JWT(r *http.Request) (string, error) {
	authz := strings.TrimSpace(r.Header.Get("Authorization"))
	const prefix = "bearer "
	if len(authz) < len(prefix) || !strings.EqualFold(authz[:len(prefix)], prefix) {
		return "", perr.Unauthorizedf("missing bearer token")
	}
	raw := strings.TrimSpace(authz[len(prefix):])
	if raw == "" {
		return "", perr.Unauthorizedf("missing bearer token")
	}
	return raw, nil
}
