package store

import "context"

type ownerKey struct{}

// WithOwner scopes ctx to one owner; owner scoped transactions read it in their begin hook
func WithOwner(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerKey{}, ownerID)
}

// OwnerID returns the owner ctx is scoped to
func OwnerID(ctx context.Context) (string, bool) {
	s, _ := ctx.Value(ownerKey{}).(string)
	return s, s != ""
}
