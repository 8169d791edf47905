package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/promptandpause/promptandpause-sub003/internal/platform/logger"
	pnet "github.com/promptandpause/promptandpause-sub003/internal/platform/net"
)

// AuthPort resolves the owner a request acts for
type AuthPort interface {
	Parse(r *http.Request) (ownerID string, err error)
}

// WriteFunc writes a status and a JSON body
type WriteFunc func(w http.ResponseWriter, status int, body any)

// Auth rejects requests the port cannot resolve and stores the owner on the context
// A nil port lets every request through unauthenticated
func Auth(p AuthPort, write WriteFunc) func(http.Handler) http.Handler {
	if write == nil {
		write = writeJSON
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			owner, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := pnet.WithOwner(r.Context(), owner)
			ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), owner)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
