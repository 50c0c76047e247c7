//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"marketplace/internal/handlers/tasks/outbox_relay"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/kafka"
	catalogRepo "marketplace/internal/repository/catalog"
	courierRepo "marketplace/internal/repository/courier"
	eventRepo "marketplace/internal/repository/event"
	historyRepo "marketplace/internal/repository/history"
	orderRepo "marketplace/internal/repository/order"
	balanceService "marketplace/internal/service/balance"
	deliveryService "marketplace/internal/service/delivery"
	historyService "marketplace/internal/service/history"
	lifecycleService "marketplace/internal/service/lifecycle"
	orderService "marketplace/internal/service/order"
	outboxService "marketplace/internal/service/outbox"
	"marketplace/pkg/logger"
	"marketplace/pkg/tx"
)

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideCatalogRepository,
	provideCourierRepository,
	provideEventRepository,
	provideHistoryRepository,
	provideOrderRepository,
)

// InitializeApplication for the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, func(), error) {
	wire.Build(
		repositorySet,
		provideOutboxRelayInterval,
		provideOutboxRelayBatch,
		providePublishRetrier,
		provideProducer,

		provideServiceOrder,
		provideServiceLifecycle,
		provideServiceDelivery,
		provideServiceBalance,
		provideServiceHistory,
		provideServiceOutbox,

		provideOutboxRelayTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceLifecycle), new(*lifecycleService.Lifecycle)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceBalance), new(*balanceService.Balance)),
		wire.Bind(new(ServiceHistory), new(*historyService.History)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.Catalog), new(*catalogRepo.Repository)),
		wire.Bind(new(orderService.EventRepository), new(*eventRepo.Repository)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(lifecycleService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(lifecycleService.Settlement), new(*balanceService.Balance)),
		wire.Bind(new(lifecycleService.EventRepository), new(*eventRepo.Repository)),
		wire.Bind(new(lifecycleService.TxManager), new(*tx.Manager)),

		wire.Bind(new(deliveryService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(deliveryService.EventRepository), new(*eventRepo.Repository)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(balanceService.Repository), new(*courierRepo.Repository)),

		wire.Bind(new(historyService.Repository), new(*historyRepo.Repository)),
		wire.Bind(new(historyService.OrderReader), new(*orderRepo.Repository)),

		wire.Bind(new(outboxService.EventRepository), new(*eventRepo.Repository)),
		wire.Bind(new(outboxService.Publisher), new(*kafka.Producer)),
		wire.Bind(new(outboxService.TxManager), new(*tx.Manager)),

		wire.Bind(new(outbox_relay.Service), new(*outboxService.Outbox)),
	)
	return nil, nil, nil
}

// InitializeKafkaWorkerApp for the history consumer (cmd/worker-order-status-changed).
func InitializeKafkaWorkerApp(
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
) (*KafkaWorkerApp, error) {
	wire.Build(
		repositorySet,
		provideServiceHistory,

		wire.Bind(new(historyService.Repository), new(*historyRepo.Repository)),
		wire.Bind(new(historyService.OrderReader), new(*orderRepo.Repository)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
