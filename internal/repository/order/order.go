package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var orderColumns = []string{
	"id",
	"customer_id",
	"restaurant_id",
	"courier_id",
	"delivered_by",
	"total_amount",
	"delivery_fee",
	"customer_address",
	"status",
	"created_at",
	"updated_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create stores the draft as a Pending order together with its line items.
// Call it inside a transaction: the items go in a separate batch.
func (r *Repository) Create(ctx context.Context, draft entities.OrderDraft) (*entities.Order, error) {
	id := uuid.NewString()

	query := `INSERT INTO orders (id, customer_id, restaurant_id, total_amount, delivery_fee, customer_address, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + strings.Join(orderColumns, ", ")

	orderDB, err := scanOrder(r.querier.QueryRow(
		ctx,
		query,
		id,
		draft.CustomerID,
		draft.RestaurantID,
		draft.TotalAmount.String(),
		draft.DeliveryFee.String(),
		draft.CustomerAddress,
		string(entities.OrderPending),
	))
	if err != nil {
		switch {
		case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
			if strings.Contains(repository.ConstraintName(err), "restaurant") {
				return nil, entities.ErrRestaurantNotFound
			}
			return nil, entities.ErrCustomerNotFound
		case repository.IsPgErrorWithCode(err, repository.PgErrNumericValueOutOfRange):
			return nil, entities.ErrValueOutOfRange
		default:
			return nil, fmt.Errorf("unexpected order repository create error: %w", err)
		}
	}

	items := make([]OrderItemDB, len(draft.Items))
	batch := &pgx.Batch{}
	for i, it := range draft.Items {
		items[i] = OrderItemDB{
			OrderID:          id,
			Position:         i,
			MenuItemID:       it.MenuItemID,
			Name:             it.Name,
			Quantity:         it.Quantity,
			PriceAtOrderTime: it.PriceAtOrderTime,
		}
		batch.Queue(`INSERT INTO order_items (order_id, position, menu_item_id, name, quantity, price_at_order_time)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			id, i, it.MenuItemID, it.Name, it.Quantity, it.PriceAtOrderTime.String(),
		)
	}

	br := r.querier.SendBatch(ctx, batch)
	for range draft.Items {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			if repository.IsPgErrorWithCode(err, repository.PgErrNumericValueOutOfRange) {
				return nil, entities.ErrValueOutOfRange
			}
			return nil, fmt.Errorf("unexpected order repository create items error: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, fmt.Errorf("unexpected order repository create items error: %w", err)
	}

	return ToDomain(&orderDB, items), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `SELECT ` + strings.Join(orderColumns, ", ") + ` FROM orders WHERE id = $1`

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || repository.IsPgErrorWithCode(err, repository.PgErrInvalidTextRepresentation) {
			return nil, entities.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return r.withItems(ctx, &orderDB)
}

// UpdateStatus applies change only if the order is still in change.From.
// Returns ErrOrderStatusChanged when another writer got there first.
func (r *Repository) UpdateStatus(ctx context.Context, change entities.StatusChange) (*entities.Order, error) {
	builder := qb.
		Update("orders").
		Set("status", string(change.To)).
		Set("updated_at", sq.Expr("NOW()"))

	if change.ClearCourier {
		builder = builder.Set("courier_id", nil)
	}
	if change.DeliveredBy != nil {
		builder = builder.Set("delivered_by", *change.DeliveredBy)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": change.OrderID, "status": string(change.From)}).
		Suffix("RETURNING " + strings.Join(orderColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.missOrConflict(ctx, change.OrderID, entities.ErrOrderStatusChanged)
		}
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	return r.withItems(ctx, &orderDB)
}

// Claim assigns the courier with a single compare-and-set statement. Exactly
// one of any number of concurrent claimants observes a row.
func (r *Repository) Claim(ctx context.Context, orderID, courierID string) (*entities.Order, error) {
	query := `UPDATE orders
		SET courier_id = $2, status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $4 AND courier_id IS NULL
		RETURNING ` + strings.Join(orderColumns, ", ")

	orderDB, err := scanOrder(r.querier.QueryRow(
		ctx,
		query,
		orderID,
		courierID,
		string(entities.OrderDelivering),
		string(entities.OrderOutForDelivery),
	))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, r.missOrConflict(ctx, orderID, entities.ErrOrderNotClaimable)
		case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
			return nil, entities.ErrCourierNotFound
		default:
			return nil, fmt.Errorf("unexpected order repository claim error: %w", err)
		}
	}

	return r.withItems(ctx, &orderDB)
}

func (r *Repository) ListByCustomer(ctx context.Context, customerID string) ([]entities.OrderView, error) {
	return r.listViews(ctx, listSpec{
		where:   sq.Eq{"o.customer_id": customerID},
		orderBy: "o.created_at DESC",
		parties: viewParties{restaurant: true},
	})
}

func (r *Repository) ListByRestaurant(ctx context.Context, restaurantID string) ([]entities.OrderView, error) {
	return r.listViews(ctx, listSpec{
		where:   sq.Eq{"o.restaurant_id": restaurantID},
		orderBy: "o.created_at DESC",
		parties: viewParties{customer: true, courier: true},
	})
}

// ListAvailable returns unassigned orders ready for pickup, oldest first.
func (r *Repository) ListAvailable(ctx context.Context) ([]entities.OrderView, error) {
	return r.listViews(ctx, listSpec{
		where: sq.Eq{
			"o.status":     string(entities.OrderOutForDelivery),
			"o.courier_id": nil,
		},
		orderBy: "o.created_at ASC",
		parties: viewParties{restaurant: true},
	})
}

func (r *Repository) ListActiveByCourier(ctx context.Context, courierID string) ([]entities.OrderView, error) {
	return r.listViews(ctx, listSpec{
		where: sq.Eq{
			"o.courier_id": courierID,
			"o.status":     string(entities.OrderDelivering),
		},
		orderBy: "o.created_at DESC",
		parties: viewParties{customer: true, restaurant: true},
	})
}

func (r *Repository) ListDeliveredByCourier(ctx context.Context, courierID string) ([]entities.OrderView, error) {
	return r.listViews(ctx, listSpec{
		where: sq.Eq{
			"o.delivered_by": courierID,
			"o.status":       string(entities.OrderDelivered),
		},
		orderBy: "o.created_at DESC",
		parties: viewParties{customer: true, restaurant: true},
	})
}

type listSpec struct {
	where   sq.Sqlizer
	orderBy string
	parties viewParties
}

func (r *Repository) listViews(ctx context.Context, spec listSpec) ([]entities.OrderView, error) {
	columns := make([]string, 0, len(orderColumns)+15)
	for _, c := range orderColumns {
		columns = append(columns, "o."+c)
	}
	columns = append(columns,
		"c.id", "c.name", "c.email", "c.detailed_address", "c.district", "c.province",
		"r.id", "r.name", "NULL::text", "r.detailed_address", "r.district", "r.province",
		"k.id", "k.name", "k.email",
	)

	query, args, err := qb.
		Select(columns...).
		From("orders o").
		LeftJoin("customers c ON c.id = o.customer_id").
		LeftJoin("restaurants r ON r.id = o.restaurant_id").
		LeftJoin("couriers k ON k.id = COALESCE(o.courier_id, o.delivered_by)").
		Where(spec.where).
		OrderBy(spec.orderBy).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrInvalidTextRepresentation) {
			return []entities.OrderView{}, nil
		}
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	viewsDB := make([]OrderViewDB, 0, 16)
	for rows.Next() {
		var v OrderViewDB
		err := rows.Scan(
			&v.Order.ID,
			&v.Order.CustomerID,
			&v.Order.RestaurantID,
			&v.Order.CourierID,
			&v.Order.DeliveredBy,
			&v.Order.TotalAmount,
			&v.Order.DeliveryFee,
			&v.Order.CustomerAddress,
			&v.Order.Status,
			&v.Order.CreatedAt,
			&v.Order.UpdatedAt,
			&v.Customer.ID,
			&v.Customer.Name,
			&v.Customer.Email,
			&v.Customer.Detailed,
			&v.Customer.District,
			&v.Customer.Province,
			&v.Restaurant.ID,
			&v.Restaurant.Name,
			&v.Restaurant.Email,
			&v.Restaurant.Detailed,
			&v.Restaurant.District,
			&v.Restaurant.Province,
			&v.Courier.ID,
			&v.Courier.Name,
			&v.Courier.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		viewsDB = append(viewsDB, v)
	}
	if err := rows.Err(); err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrInvalidTextRepresentation) {
			return []entities.OrderView{}, nil
		}
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	ids := make([]string, len(viewsDB))
	for i, v := range viewsDB {
		ids[i] = v.Order.ID
	}
	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]entities.OrderView, len(viewsDB))
	for i := range viewsDB {
		views[i] = ToDomainView(&viewsDB[i], items[viewsDB[i].Order.ID], spec.parties)
	}
	return views, nil
}

func (r *Repository) withItems(ctx context.Context, orderDB *OrderDB) (*entities.Order, error) {
	items, err := r.loadItems(ctx, []string{orderDB.ID})
	if err != nil {
		return nil, err
	}
	return ToDomain(orderDB, items[orderDB.ID]), nil
}

func (r *Repository) loadItems(ctx context.Context, orderIDs []string) (map[string][]OrderItemDB, error) {
	result := make(map[string][]OrderItemDB, len(orderIDs))
	if len(orderIDs) == 0 {
		return result, nil
	}

	query := `SELECT order_id, position, menu_item_id, name, quantity, price_at_order_time
		FROM order_items
		WHERE order_id = ANY($1::text[]::uuid[])
		ORDER BY order_id, position`

	rows, err := r.querier.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository load items error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it OrderItemDB
		err := rows.Scan(
			&it.OrderID,
			&it.Position,
			&it.MenuItemID,
			&it.Name,
			&it.Quantity,
			&it.PriceAtOrderTime,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository load items error: %w", err)
		}
		result[it.OrderID] = append(result[it.OrderID], it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository load items error: %w", err)
	}

	return result, nil
}

// missOrConflict tells a missing order apart from a lost race after a
// conditional update matched no rows.
func (r *Repository) missOrConflict(ctx context.Context, orderID string, conflict error) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)`, orderID).Scan(&exists)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrInvalidTextRepresentation) {
			return entities.ErrOrderNotFound
		}
		return fmt.Errorf("unexpected order repository exists error: %w", err)
	}
	if !exists {
		return entities.ErrOrderNotFound
	}
	return conflict
}

func scanOrder(row pgx.Row) (OrderDB, error) {
	var o OrderDB
	err := row.Scan(
		&o.ID,
		&o.CustomerID,
		&o.RestaurantID,
		&o.CourierID,
		&o.DeliveredBy,
		&o.TotalAmount,
		&o.DeliveryFee,
		&o.CustomerAddress,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}
