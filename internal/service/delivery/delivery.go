// Package delivery hands ready orders to couriers and serves the courier
// listings.
package delivery

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/entities"
	"marketplace/internal/pkg/apperr"
)

type Delivery struct {
	repository Repository
	events     EventRepository
	txManager  TxManager
}

func New(
	repository Repository,
	events EventRepository,
	txManager TxManager,
) *Delivery {
	return &Delivery{
		repository: repository,
		events:     events,
		txManager:  txManager,
	}
}

// Claim assigns an Out for Delivery order to the courier. Among concurrent
// claimants exactly one succeeds; the others get entities.ErrOrderNotClaimable.
// There is no retry.
func (d *Delivery) Claim(ctx context.Context, orderID, courierID string) (*entities.Order, error) {
	if !isValidID(courierID) {
		return nil, ErrInvalidCourierID
	}
	if !isValidID(orderID) {
		ClaimsTotal.WithLabelValues(claimNotFound).Inc()
		return nil, entities.ErrOrderNotFound
	}

	var claimed *entities.Order
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := d.repository.Claim(ctx, orderID, courierID)
		if err != nil {
			return fmt.Errorf("claim order: %w", err)
		}
		claimed = order

		_, err = d.events.Append(ctx, entities.OrderEvent{
			OrderID:   order.ID,
			Type:      entities.EventOrderStatusChanged,
			Status:    order.Status,
			ActorID:   courierID,
			ActorRole: entities.RoleCourier,
		})
		if err != nil {
			return fmt.Errorf("append order event: %w", err)
		}
		return nil
	})

	ClaimsTotal.WithLabelValues(claimResult(err)).Inc()
	if err != nil {
		return nil, err
	}
	return claimed, nil
}

func claimResult(err error) string {
	switch {
	case err == nil:
		return claimWon
	case errors.Is(err, entities.ErrOrderNotClaimable):
		return claimConflict
	case apperr.CodeOf(err) == apperr.CodeNotFound:
		return claimNotFound
	default:
		return claimError
	}
}

func (d *Delivery) ListAvailable(ctx context.Context) ([]entities.OrderView, error) {
	views, err := d.repository.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available orders: %w", err)
	}
	return views, nil
}

func (d *Delivery) ListActive(ctx context.Context, courierID string) ([]entities.OrderView, error) {
	if !isValidID(courierID) {
		return nil, ErrInvalidCourierID
	}

	views, err := d.repository.ListActiveByCourier(ctx, courierID)
	if err != nil {
		return nil, fmt.Errorf("list active deliveries: %w", err)
	}
	return views, nil
}

func (d *Delivery) ListHistory(ctx context.Context, courierID string) ([]entities.OrderView, error) {
	if !isValidID(courierID) {
		return nil, ErrInvalidCourierID
	}

	views, err := d.repository.ListDeliveredByCourier(ctx, courierID)
	if err != nil {
		return nil, fmt.Errorf("list delivery history: %w", err)
	}
	return views, nil
}
