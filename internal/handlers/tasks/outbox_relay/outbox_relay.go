package outbox_relay

import (
	"context"
	"time"

	"marketplace/pkg/logger"
)

// OutboxRelay drains committed order events to the broker, one batch per tick.
type OutboxRelay struct {
	log      taskLogger
	service  Service
	interval time.Duration
	batch    int
}

func New(log taskLogger, service Service, interval time.Duration, batch int) *OutboxRelay {
	return &OutboxRelay{
		log:      log,
		service:  service,
		interval: interval,
		batch:    batch,
	}
}

func (o *OutboxRelay) TTL() time.Duration {
	return o.interval
}

// Do publishes batches until the outbox is drained or the tick runs out.
func (o *OutboxRelay) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	total := 0
	for {
		n, err := o.service.Relay(ctxWithTimeout, o.batch)
		total += n
		if err != nil {
			return err
		}
		if n < o.batch {
			break
		}
	}

	if total > 0 {
		o.log.Info("outbox relayed", logger.NewField("events", total))
	}
	return nil
}

func (o *OutboxRelay) Info() string {
	return "outbox relay"
}
