//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_timeline_get_test
package order_timeline_get

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Timeline(ctx context.Context, orderID string, who entities.Identity) ([]entities.StatusHistoryEntry, error)
}
