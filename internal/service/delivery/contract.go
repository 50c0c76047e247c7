//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	Claim(ctx context.Context, orderID, courierID string) (*entities.Order, error)
	ListAvailable(ctx context.Context) ([]entities.OrderView, error)
	ListActiveByCourier(ctx context.Context, courierID string) ([]entities.OrderView, error)
	ListDeliveredByCourier(ctx context.Context, courierID string) ([]entities.OrderView, error)
}

type EventRepository interface {
	Append(ctx context.Context, ev entities.OrderEvent) (*entities.OrderEvent, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
