package history

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Append stores entry once per event id. It reports false when the event
// was already recorded, which happens on Kafka redelivery.
func (r *Repository) Append(ctx context.Context, entry entities.StatusHistoryEntry) (bool, error) {
	query := `INSERT INTO order_status_history (event_id, order_id, status, actor_id, actor_role, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (event_id) DO NOTHING`

	tag, err := r.querier.Exec(
		ctx,
		query,
		entry.EventID,
		entry.OrderID,
		string(entry.Status),
		entry.ActorID,
		string(entry.ActorRole),
		entry.OccurredAt,
	)
	if err != nil {
		return false, fmt.Errorf("unexpected history repository append error: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ListByOrder(ctx context.Context, orderID string) ([]entities.StatusHistoryEntry, error) {
	query := `SELECT event_id, order_id, status, actor_id, actor_role, occurred_at
		FROM order_status_history
		WHERE order_id = $1
		ORDER BY occurred_at, event_id`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected history repository list error: %w", err)
	}
	defer rows.Close()

	entries := make([]entities.StatusHistoryEntry, 0, 8)
	for rows.Next() {
		var (
			e      entities.StatusHistoryEntry
			status string
			role   string
		)
		if err := rows.Scan(&e.EventID, &e.OrderID, &status, &e.ActorID, &role, &e.OccurredAt); err != nil {
			return nil, fmt.Errorf("unexpected history repository list error: %w", err)
		}
		e.Status = entities.OrderStatus(status)
		e.ActorRole = entities.Role(role)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected history repository list error: %w", err)
	}

	return entries, nil
}
