package auth

import (
	"context"

	"marketplace/internal/entities"
)

type identityKey struct{}

func WithIdentity(ctx context.Context, id entities.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the caller set by Middleware.
func IdentityFrom(ctx context.Context) (entities.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(entities.Identity)
	return id, ok
}
