// Package history keeps the per-order status timeline built from the event
// stream.
package history

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"marketplace/internal/entities"
)

type History struct {
	repository Repository
	orders     OrderReader
}

func New(repository Repository, orders OrderReader) *History {
	return &History{
		repository: repository,
		orders:     orders,
	}
}

// Record stores the event as a timeline entry. Redelivered events are
// ignored; the returned flag reports whether the entry is new.
func (h *History) Record(ctx context.Context, ev entities.OrderEvent) (bool, error) {
	if ev.ID == "" || ev.OrderID == "" || !ev.Status.IsValid() {
		return false, ErrInvalidEvent
	}

	inserted, err := h.repository.Append(ctx, entities.StatusHistoryEntry{
		EventID:    ev.ID,
		OrderID:    ev.OrderID,
		Status:     ev.Status,
		ActorID:    ev.ActorID,
		ActorRole:  ev.ActorRole,
		OccurredAt: ev.OccurredAt,
	})
	if err != nil {
		return false, fmt.Errorf("append status history: %w", err)
	}
	return inserted, nil
}

// Timeline returns the order's status changes oldest first. Only the
// customer, the restaurant and the courier who holds or delivered the order
// may read it.
func (h *History) Timeline(ctx context.Context, orderID string, who entities.Identity) ([]entities.StatusHistoryEntry, error) {
	if uuid.Validate(orderID) != nil {
		return nil, entities.ErrOrderNotFound
	}

	order, err := h.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if !isParty(order, who) {
		return nil, ErrNotParty
	}

	entries, err := h.repository.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list status history: %w", err)
	}
	return entries, nil
}

func isParty(order *entities.Order, who entities.Identity) bool {
	switch who.Role {
	case entities.RoleCustomer:
		return order.CustomerID == who.ID
	case entities.RoleRestaurant:
		return order.RestaurantID == who.ID
	case entities.RoleCourier:
		return order.IsAssignedTo(who.ID) || (order.DeliveredBy != nil && *order.DeliveredBy == who.ID)
	}
	return false
}
