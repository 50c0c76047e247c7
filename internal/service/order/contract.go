//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, draft entities.OrderDraft) (*entities.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.OrderView, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]entities.OrderView, error)
}

type Catalog interface {
	GetRestaurant(ctx context.Context, id string) (*entities.Restaurant, error)
	GetMenuItems(ctx context.Context, ids []string) (map[string]entities.MenuItem, error)
	GetCustomer(ctx context.Context, id string) (*entities.Customer, error)
}

type EventRepository interface {
	Append(ctx context.Context, ev entities.OrderEvent) (*entities.OrderEvent, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
