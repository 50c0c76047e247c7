// Package outbox relays committed order events to Kafka.
package outbox

import (
	"context"
	"fmt"

	"marketplace/internal/pkg/kafka"
	"marketplace/pkg/retrier"
)

type Outbox struct {
	events    EventRepository
	publisher Publisher
	retrier   retrier.Retrier
	txManager TxManager
}

func New(
	events EventRepository,
	publisher Publisher,
	retrier retrier.Retrier,
	txManager TxManager,
) *Outbox {
	return &Outbox{
		events:    events,
		publisher: publisher,
		retrier:   retrier,
		txManager: txManager,
	}
}

// Relay publishes up to batch pending events and marks them published, all
// under the row locks taken by the fetch. A failed publish leaves the rows
// pending for the next run, so delivery is at least once.
func (o *Outbox) Relay(ctx context.Context, batch int) (int, error) {
	if batch <= 0 {
		return 0, ErrInvalidBatch
	}

	published := 0
	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		pending, err := o.events.FetchUnpublished(ctx, batch)
		if err != nil {
			return fmt.Errorf("fetch unpublished events: %w", err)
		}
		if len(pending) == 0 {
			return nil
		}

		msgs := make([]kafka.Message, 0, len(pending))
		ids := make([]string, 0, len(pending))
		for _, ev := range pending {
			msg, err := kafka.EncodeOrderEvent(ev)
			if err != nil {
				return err
			}
			msgs = append(msgs, msg)
			ids = append(ids, ev.ID)
		}

		err = o.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
			return o.publisher.Publish(ctx, msgs...)
		})
		if err != nil {
			PublishFailuresTotal.Inc()
			return fmt.Errorf("publish %d events: %w", len(msgs), err)
		}

		if err := o.events.MarkPublished(ctx, ids); err != nil {
			return fmt.Errorf("mark events published: %w", err)
		}
		published = len(ids)
		return nil
	})
	if err != nil {
		return 0, err
	}

	EventsPublishedTotal.Add(float64(published))
	return published, nil
}
