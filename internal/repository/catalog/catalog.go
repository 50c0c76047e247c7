// Package catalog reads the collaborator tables owned by other parts of the
// marketplace: restaurants, their menus and customer profiles.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
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

func (r *Repository) GetRestaurant(ctx context.Context, id string) (*entities.Restaurant, error) {
	query := `SELECT id, name, is_active, detailed_address, district, province
		FROM restaurants
		WHERE id = $1`

	var rest entities.Restaurant
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&rest.ID,
		&rest.Name,
		&rest.IsActive,
		&rest.Address.Detailed,
		&rest.Address.District,
		&rest.Address.Province,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || repository.IsPgErrorWithCode(err, repository.PgErrInvalidTextRepresentation) {
			return nil, entities.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("unexpected catalog repository get restaurant error: %w", err)
	}

	return &rest, nil
}

// GetMenuItems returns the items found among ids, keyed by id. Missing ids
// are simply absent from the map.
func (r *Repository) GetMenuItems(ctx context.Context, ids []string) (map[string]entities.MenuItem, error) {
	result := make(map[string]entities.MenuItem, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query := `SELECT id, restaurant_id, name, price
		FROM menu_items
		WHERE id = ANY($1::text[]::uuid[])`

	rows, err := r.querier.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("unexpected catalog repository get menu items error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item entities.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Price); err != nil {
			return nil, fmt.Errorf("unexpected catalog repository get menu items error: %w", err)
		}
		result[item.ID] = item
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected catalog repository get menu items error: %w", err)
	}

	return result, nil
}

func (r *Repository) GetCustomer(ctx context.Context, id string) (*entities.Customer, error) {
	query := `SELECT id, name, email, detailed_address, district, province
		FROM customers
		WHERE id = $1`

	var c entities.Customer
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Address.Detailed,
		&c.Address.District,
		&c.Address.Province,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || repository.IsPgErrorWithCode(err, repository.PgErrInvalidTextRepresentation) {
			return nil, entities.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("unexpected catalog repository get customer error: %w", err)
	}

	return &c, nil
}
