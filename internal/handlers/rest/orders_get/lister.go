package orders_get

import (
	"context"

	"marketplace/internal/entities"
)

// ListFunc adapts a function to Lister.
type ListFunc func(ctx context.Context, who entities.Identity) ([]entities.OrderView, error)

func (f ListFunc) List(ctx context.Context, who entities.Identity) ([]entities.OrderView, error) {
	return f(ctx, who)
}

// Scoped lists by the caller's own id.
func Scoped(list func(ctx context.Context, id string) ([]entities.OrderView, error)) ListFunc {
	return func(ctx context.Context, who entities.Identity) ([]entities.OrderView, error) {
		return list(ctx, who.ID)
	}
}

// Unscoped lists the same rows for every caller.
func Unscoped(list func(ctx context.Context) ([]entities.OrderView, error)) ListFunc {
	return func(ctx context.Context, _ entities.Identity) ([]entities.OrderView, error) {
		return list(ctx)
	}
}
