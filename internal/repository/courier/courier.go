package courier

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// CreditBalance adds amount to the courier's balance in one statement and
// returns the new balance. Nothing else on the row changes.
func (r *Repository) CreditBalance(ctx context.Context, courierID string, amount decimal.Decimal) (decimal.Decimal, error) {
	query := `UPDATE couriers
		SET balance = balance + $2, updated_at = NOW()
		WHERE id = $1
		RETURNING balance`

	var balance decimal.Decimal
	err := r.querier.QueryRow(ctx, query, courierID, amount.String()).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || repository.IsPgErrorWithCode(err, repository.PgErrInvalidTextRepresentation) {
			return decimal.Zero, entities.ErrCourierNotFound
		}
		return decimal.Zero, fmt.Errorf("unexpected courier repository credit error: %w", err)
	}

	return balance, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Courier, error) {
	query := `SELECT id, name, email, balance, created_at, updated_at
		FROM couriers
		WHERE id = $1`

	var courierModel CourierDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&courierModel.ID,
			&courierModel.Name,
			&courierModel.Email,
			&courierModel.Balance,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || repository.IsPgErrorWithCode(err, repository.PgErrInvalidTextRepresentation) {
			return nil, entities.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	return ToDomain(&courierModel), nil
}
