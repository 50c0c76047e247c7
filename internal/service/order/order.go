// Package order creates orders and serves the customer and restaurant
// listings.
package order

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
)

type Order struct {
	repository Repository
	catalog    Catalog
	events     EventRepository
	txManager  TxManager
}

func New(
	repository Repository,
	catalog Catalog,
	events EventRepository,
	txManager TxManager,
) *Order {
	return &Order{
		repository: repository,
		catalog:    catalog,
		events:     events,
		txManager:  txManager,
	}
}

// CreateOrder prices the request and stores it as Pending together with its
// order.created event. Either both are written or neither.
func (o *Order) CreateOrder(ctx context.Context, in CreateOrderInput) (*entities.Order, error) {
	draft, err := o.BuildDraft(ctx, in)
	if err != nil {
		return nil, err
	}

	var created *entities.Order
	err = o.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := o.repository.Create(ctx, *draft)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		created = order

		_, err = o.events.Append(ctx, entities.OrderEvent{
			OrderID:   order.ID,
			Type:      entities.EventOrderCreated,
			Status:    order.Status,
			ActorID:   in.CustomerID,
			ActorRole: entities.RoleCustomer,
		})
		if err != nil {
			return fmt.Errorf("append order event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (o *Order) ListCustomerOrders(ctx context.Context, customerID string) ([]entities.OrderView, error) {
	if !isValidID(customerID) {
		return nil, ErrInvalidID
	}

	views, err := o.repository.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("list customer orders: %w", err)
	}
	return views, nil
}

func (o *Order) ListRestaurantOrders(ctx context.Context, restaurantID string) ([]entities.OrderView, error) {
	if !isValidID(restaurantID) {
		return nil, ErrInvalidID
	}

	views, err := o.repository.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list restaurant orders: %w", err)
	}
	return views, nil
}
