// Package event is the transactional outbox: order state changes are written
// here in the same transaction as the change and relayed to Kafka later.
package event

import (
	"context"
	"fmt"

	"github.com/google/uuid"
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

// Append writes ev to the outbox and returns it with ID and OccurredAt set.
func (r *Repository) Append(ctx context.Context, ev entities.OrderEvent) (*entities.OrderEvent, error) {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}

	query := `INSERT INTO order_events (id, order_id, event_type, status, actor_id, actor_role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING occurred_at`

	err := r.querier.QueryRow(
		ctx,
		query,
		ev.ID,
		ev.OrderID,
		string(ev.Type),
		string(ev.Status),
		ev.ActorID,
		string(ev.ActorRole),
	).Scan(&ev.OccurredAt)
	if err != nil {
		return nil, fmt.Errorf("unexpected event repository append error: %w", err)
	}

	return &ev, nil
}

// FetchUnpublished locks up to limit pending events, oldest first. Rows
// locked by a concurrent relay are skipped. Call it inside a transaction.
func (r *Repository) FetchUnpublished(ctx context.Context, limit int) ([]entities.OrderEvent, error) {
	query := `SELECT id, order_id, event_type, status, actor_id, actor_role, occurred_at, published_at
		FROM order_events
		WHERE published_at IS NULL
		ORDER BY occurred_at, id
		LIMIT $1
		FOR UPDATE SKIP LOCKED`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected event repository fetch error: %w", err)
	}
	defer rows.Close()

	events := make([]entities.OrderEvent, 0, limit)
	for rows.Next() {
		var e OrderEventDB
		err := rows.Scan(
			&e.ID,
			&e.OrderID,
			&e.EventType,
			&e.Status,
			&e.ActorID,
			&e.ActorRole,
			&e.OccurredAt,
			&e.PublishedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected event repository fetch error: %w", err)
		}
		events = append(events, ToDomain(e))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected event repository fetch error: %w", err)
	}

	return events, nil
}

func (r *Repository) MarkPublished(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query := `UPDATE order_events
		SET published_at = NOW()
		WHERE id = ANY($1::text[]::uuid[])`

	if _, err := r.querier.Exec(ctx, query, ids); err != nil {
		return fmt.Errorf("unexpected event repository mark published error: %w", err)
	}
	return nil
}

func ToDomain(e OrderEventDB) entities.OrderEvent {
	return entities.OrderEvent{
		ID:          e.ID,
		OrderID:     e.OrderID,
		Type:        entities.OrderEventType(e.EventType),
		Status:      entities.OrderStatus(e.Status),
		ActorID:     e.ActorID,
		ActorRole:   entities.Role(e.ActorRole),
		OccurredAt:  e.OccurredAt,
		PublishedAt: e.PublishedAt,
	}
}
