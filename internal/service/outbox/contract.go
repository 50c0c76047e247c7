//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=outbox_test
package outbox

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/internal/pkg/kafka"
)

type EventRepository interface {
	FetchUnpublished(ctx context.Context, limit int) ([]entities.OrderEvent, error)
	MarkPublished(ctx context.Context, ids []string) error
}

type Publisher interface {
	Publish(ctx context.Context, msgs ...kafka.Message) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
