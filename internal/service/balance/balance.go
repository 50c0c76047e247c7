// Package balance settles courier earnings.
package balance

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
)

type Balance struct {
	repository Repository
}

func New(repository Repository) *Balance {
	return &Balance{
		repository: repository,
	}
}

// Credit atomically adds amount to the courier's balance and returns the new
// balance. A missing courier yields entities.ErrCourierNotFound.
func (b *Balance) Credit(ctx context.Context, courierID string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !isValidCourierID(courierID) {
		return decimal.Zero, ErrInvalidCourierID
	}
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}

	balance, err := b.repository.CreditBalance(ctx, courierID, amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("credit courier balance: %w", err)
	}
	return balance, nil
}

func (b *Balance) Get(ctx context.Context, courierID string) (*entities.Courier, error) {
	if !isValidCourierID(courierID) {
		return nil, ErrInvalidCourierID
	}

	courier, err := b.repository.GetByID(ctx, courierID)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}
	return courier, nil
}
