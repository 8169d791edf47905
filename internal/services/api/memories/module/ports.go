package module

import (
	"context"
	"time"

	memdom "github.com/promptandpause/promptandpause-sub003/internal/services/api/memories/domain"
	memsvc "github.com/promptandpause/promptandpause-sub003/internal/services/api/memories/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.b.Ports }

// adaptMemoriesPort adapts the memories service to the domain port interface
type adaptMemoriesPort struct{ svc memsvc.Service }

// Decide implements the domain ServicePort interface
func (a adaptMemoriesPort) Decide(ctx context.Context, ownerID string, now time.Time) (*memdom.Memory, error) {
	return a.svc.Decide(ctx, ownerID, now)
}

// Today implements the domain ServicePort interface
func (a adaptMemoriesPort) Today(ctx context.Context, ownerID string) (*memdom.Memory, error) {
	return a.svc.Today(ctx, ownerID)
}

// History implements the domain ServicePort interface
func (a adaptMemoriesPort) History(ctx context.Context, ownerID string, limit int) ([]memdom.SurfacedMemory, error) {
	return a.svc.History(ctx, ownerID, limit)
}
