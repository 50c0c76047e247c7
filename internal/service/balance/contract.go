//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=balance_test
package balance

import (
	"context"

	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
)

type Repository interface {
	CreditBalance(ctx context.Context, courierID string, amount decimal.Decimal) (decimal.Decimal, error)
	GetByID(ctx context.Context, id string) (*entities.Courier, error)
}
