//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=lifecycle_test
package lifecycle

import (
	"context"

	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	UpdateStatus(ctx context.Context, change entities.StatusChange) (*entities.Order, error)
}

// Settlement credits the courier for a completed delivery.
type Settlement interface {
	Credit(ctx context.Context, courierID string, amount decimal.Decimal) (decimal.Decimal, error)
}

type EventRepository interface {
	Append(ctx context.Context, ev entities.OrderEvent) (*entities.OrderEvent, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
