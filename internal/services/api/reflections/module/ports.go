package module

import (
	"context"

	refdom "github.com/promptandpause/promptandpause-sub003/internal/services/api/reflections/domain"
	refsvc "github.com/promptandpause/promptandpause-sub003/internal/services/api/reflections/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.b.Ports }

// adaptReflectionsPort adapts the reflections service to the domain port interface
type adaptReflectionsPort struct{ svc refsvc.Service }

// Create implements the domain ServicePort interface
func (a adaptReflectionsPort) Create(ctx context.Context, ownerID string, in refdom.CreateInput) (refdom.Reflection, error) {
	return a.svc.Create(ctx, ownerID, in)
}

// List implements the domain ServicePort interface
func (a adaptReflectionsPort) List(ctx context.Context, ownerID string, limit int) ([]refdom.Reflection, error) {
	return a.svc.List(ctx, ownerID, limit)
}

// SetEligibility implements the domain ServicePort interface
func (a adaptReflectionsPort) SetEligibility(ctx context.Context, ownerID, id string, eligible bool) (refdom.Reflection, error) {
	return a.svc.SetEligibility(ctx, ownerID, id, eligible)
}
