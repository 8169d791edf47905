package domain

import (
	"context"
	"time"
)

// ServicePort defines the service contract for memories
type ServicePort interface {
	// Decide runs the resurfacing rules for owner at now; nil, nil means nothing today
	Decide(ctx context.Context, ownerID string, now time.Time) (*Memory, error)
	// Today is Decide at the service clock
	Today(ctx context.Context, ownerID string) (*Memory, error)
	// History lists memories already shown to owner, newest first
	History(ctx context.Context, ownerID string, limit int) ([]SurfacedMemory, error)
}
