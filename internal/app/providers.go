package app

import (
	"context"
	"fmt"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
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
	"marketplace/pkg/background"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	"marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
	"marketplace/pkg/tx"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCatalogRepository(querier *querier.Querier) *catalogRepo.Repository {
	return catalogRepo.New(querier)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideEventRepository(querier *querier.Querier) *eventRepo.Repository {
	return eventRepo.New(querier)
}

func provideHistoryRepository(querier *querier.Querier) *historyRepo.Repository {
	return historyRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideServiceOrder(
	repository orderService.Repository,
	catalog orderService.Catalog,
	events orderService.EventRepository,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(repository, catalog, events, txManager)
}

func provideServiceLifecycle(
	log logger.Logger,
	repository lifecycleService.Repository,
	settlement lifecycleService.Settlement,
	events lifecycleService.EventRepository,
	txManager lifecycleService.TxManager,
) *lifecycleService.Lifecycle {
	return lifecycleService.New(
		log.With(logger.NewField("service", "lifecycle")),
		repository,
		settlement,
		events,
		txManager,
	)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	events deliveryService.EventRepository,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(repository, events, txManager)
}

func provideServiceBalance(repository balanceService.Repository) *balanceService.Balance {
	return balanceService.New(repository)
}

func provideServiceHistory(
	repository historyService.Repository,
	orders historyService.OrderReader,
) *historyService.History {
	return historyService.New(repository, orders)
}

func provideServiceOutbox(
	events outboxService.EventRepository,
	publisher outboxService.Publisher,
	r retrier.Retrier,
	txManager outboxService.TxManager,
) *outboxService.Outbox {
	return outboxService.New(events, publisher, r, txManager)
}

func providePublishRetrier() retrier.Retrier {
	return backoff_adapter.New(retrier.PublishConfig())
}

func provideProducer(ctx context.Context, log logger.Logger, cfg *config.Config) (*kafka.Producer, func(), error) {
	producer, err := kafka.NewProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return nil, nil, fmt.Errorf("kafka producer: %w", err)
	}
	cleanup := func() {
		if err := producer.Close(); err != nil {
			log.Error("failed to close Kafka producer", logger.NewField("error", err))
		}
	}
	return producer, cleanup, nil
}

func provideOutboxRelayInterval(cfg *config.Config) OutboxRelayInterval {
	return OutboxRelayInterval(cfg.Tasks.OutboxRelayInterval)
}

func provideOutboxRelayBatch(cfg *config.Config) OutboxRelayBatch {
	return OutboxRelayBatch(cfg.Tasks.OutboxRelayBatch)
}

func provideOutboxRelayTask(
	log logger.Logger,
	service outbox_relay.Service,
	interval OutboxRelayInterval,
	batch OutboxRelayBatch,
) *outbox_relay.OutboxRelay {
	return outbox_relay.New(
		log.With(logger.NewField("task", "outbox_relay")),
		service,
		time.Duration(interval),
		int(batch),
	)
}

func provideTaskList(outboxRelayTask *outbox_relay.OutboxRelay) []background.Task {
	return []background.Task{
		outboxRelayTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
