package middleware

import (
	"net/http"
	"runtime/debug"

	perr "github.com/promptandpause/promptandpause-sub003/internal/platform/errors"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/logger"
	pnet "github.com/promptandpause/promptandpause-sub003/internal/platform/net"
)

// RecoverJSON turns a panic into a logged stack and a 500 envelope
// http.ErrAbortHandler is re-panicked so the server can abort the connection
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			status, body := pnet.Error(perr.PanicErrf("internal error"), pnet.RequestID(r.Context()))
			writeJSON(w, status, body)
		}()
		next.ServeHTTP(w, r)
	})
}
