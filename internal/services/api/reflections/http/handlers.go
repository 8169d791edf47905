// Package http provides http transport for reflections
package http

import (
	stdhttp "net/http"

	"github.com/promptandpause/promptandpause-sub003/internal/core/resurface"
	"github.com/promptandpause/promptandpause-sub003/internal/modkit/httpkit"
	"github.com/promptandpause/promptandpause-sub003/internal/platform/net/http/bind"
	"github.com/promptandpause/promptandpause-sub003/internal/services/api/reflections/domain"
	svc "github.com/promptandpause/promptandpause-sub003/internal/services/api/reflections/service"
)

// MaxList caps the limit query parameter
const MaxList = 100

func init() {
	_ = bind.RegisterValidation("mood", func(fl bind.FieldLevel) bool {
		return resurface.Mood(fl.Field().String()).Valid()
	}, "{0} must be one of happy calm grateful neutral anxious tired sad")
}

// Register mounts reflections endpoints on the given router
// every route needs an authenticated owner
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.Get(r, "/", h.list)
	httpkit.PatchJSON[domain.EligibilityInput](r, "/{id}/resurfacing", h.setEligibility)
}

type handlers struct{ svc svc.Service }

// @Summary Write a reflection
// @Description Stores a journal entry. Word count is computed by the server and the date defaults to today.
// @Tags Reflections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.CreateInput true "Entry"
// @Success 201 {object} domain.Reflection "created"
// @Router /reflections [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	owner, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	out, err := h.svc.Create(r.Context(), owner, in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

// @Summary Latest reflections
// @Tags Reflections
// @Produce json
// @Security BearerAuth
// @Param limit query int false "max items" minimum(1) maximum(100)
// @Success 200 {array} domain.Reflection "ok"
// @Router /reflections [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	owner, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	limit, err := httpkit.QueryInt(r, "limit", 20, MaxList)
	if err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), owner, limit)
}

// @Summary Allow or exclude an entry from resurfacing
// @Tags Reflections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "reflection id"
// @Param payload body domain.EligibilityInput true "Eligibility"
// @Success 200 {object} domain.Reflection "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /reflections/{id}/resurfacing [patch]
func (h *handlers) setEligibility(r *stdhttp.Request, in domain.EligibilityInput) (any, error) {
	owner, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.SetEligibility(r.Context(), owner, httpkit.URLParam(r, "id"), *in.Eligible)
}
