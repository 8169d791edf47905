// Package net holds request scoped values shared by the transports
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey struct{ name string }

var keyOwnerID = ctxKey{"owner_id"}

// WithRequest stores the request id where chi's GetReqID finds it, plus the owner id
// Blank values leave ctx untouched
func WithRequest(ctx context.Context, reqID, ownerID string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return WithOwner(ctx, ownerID)
}

// WithOwner stores the authenticated owner id
func WithOwner(ctx context.Context, ownerID string) context.Context {
	if ownerID == "" {
		return ctx
	}
	return context.WithValue(ctx, keyOwnerID, ownerID)
}

// RequestID returns the chi request id or ""
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// OwnerID returns the authenticated owner id or ""
func OwnerID(ctx context.Context) string {
	s, _ := ctx.Value(keyOwnerID).(string)
	return s
}
