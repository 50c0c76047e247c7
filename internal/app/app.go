package app

import (
	"context"
	"time"

	"marketplace/internal/entities"

	"marketplace/internal/handlers/rest/courier_balance_get"
	"marketplace/internal/handlers/rest/order_accept_put"
	"marketplace/internal/handlers/rest/order_post"
	"marketplace/internal/handlers/rest/order_status_put"
	"marketplace/internal/handlers/rest/order_timeline_get"
	deliveryService "marketplace/internal/service/delivery"
	historyService "marketplace/internal/service/history"
	orderService "marketplace/internal/service/order"
	"marketplace/pkg/background"
)

type (
	OutboxRelayInterval time.Duration
	OutboxRelayBatch    int
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceLifecycle  ServiceLifecycle
	ServiceDelivery   ServiceDelivery
	ServiceBalance    ServiceBalance
	ServiceHistory    ServiceHistory
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	ListCustomerOrders(ctx context.Context, customerID string) ([]entities.OrderView, error)
	ListRestaurantOrders(ctx context.Context, restaurantID string) ([]entities.OrderView, error)
}

type ServiceDelivery interface {
	order_accept_put.Service
	ListAvailable(ctx context.Context) ([]entities.OrderView, error)
	ListActive(ctx context.Context, courierID string) ([]entities.OrderView, error)
	ListHistory(ctx context.Context, courierID string) ([]entities.OrderView, error)
}

type ServiceLifecycle interface {
	order_status_put.Service
}

type ServiceBalance interface {
	courier_balance_get.Service
}

type ServiceHistory interface {
	order_timeline_get.Service
}

type KafkaWorkerApp struct {
	ServiceHistory *historyService.History
}

var (
	_ ServiceOrder    = (*orderService.Order)(nil)
	_ ServiceDelivery = (*deliveryService.Delivery)(nil)
)
