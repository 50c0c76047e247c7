//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=history_test
package history

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	Append(ctx context.Context, entry entities.StatusHistoryEntry) (bool, error)
	ListByOrder(ctx context.Context, orderID string) ([]entities.StatusHistoryEntry, error)
}

type OrderReader interface {
	GetByID(ctx context.Context, id string) (*entities.Order, error)
}
