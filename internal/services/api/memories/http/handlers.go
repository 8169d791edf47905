// Package http provides http transport for memories
package http

import (
	stdhttp "net/http"

	"github.com/promptandpause/promptandpause-sub003/internal/modkit/httpkit"
	"github.com/promptandpause/promptandpause-sub003/internal/services/api/memories/domain"
	svc "github.com/promptandpause/promptandpause-sub003/internal/services/api/memories/service"
)

// MaxHistory caps the limit query parameter of the history listing
const MaxHistory = 100

// Register mounts memories endpoints on the given router
// every route needs an authenticated owner
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/today", h.today)
	httpkit.Get(r, "/", h.history)
}

type handlers struct{ svc svc.Service }

// @Summary Today's memory
// @Description Runs the resurfacing rules for the caller. Most days nothing is surfaced.
// @Tags Memories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.TodayResult "ok"
// @Router /memories/today [get]
func (h *handlers) today(r *stdhttp.Request) (any, error) {
	owner, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	mem, err := h.svc.Today(r.Context(), owner)
	if err != nil {
		return nil, err
	}
	return domain.TodayResult{Surfaced: mem != nil, Memory: mem}, nil
}

// @Summary Memories already surfaced
// @Tags Memories
// @Produce json
// @Security BearerAuth
// @Param limit query int false "max items" minimum(1) maximum(100)
// @Success 200 {array} domain.SurfacedMemory "ok"
// @Router /memories [get]
func (h *handlers) history(r *stdhttp.Request) (any, error) {
	owner, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	limit, err := httpkit.QueryInt(r, "limit", 20, MaxHistory)
	if err != nil {
		return nil, err
	}
	return h.svc.History(r.Context(), owner, limit)
}
