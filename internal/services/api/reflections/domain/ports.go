package domain

import "context"

// ServicePort defines the service contract for reflections
type ServicePort interface {
	Create(ctx context.Context, ownerID string, in CreateInput) (Reflection, error)
	List(ctx context.Context, ownerID string, limit int) ([]Reflection, error)
	SetEligibility(ctx context.Context, ownerID, id string, eligible bool) (Reflection, error)
}
