//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=outbox_relay_test
package outbox_relay

import (
	"context"

	"marketplace/pkg/logger"
)

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

type Service interface {
	Relay(ctx context.Context, batch int) (int, error)
}
