package entities

import "time"

type OrderEventType string

const (
	EventOrderCreated       OrderEventType = "order.created"
	EventOrderStatusChanged OrderEventType = "order.status_changed"
)

// OrderEvent is one outbox row: a committed change of an order's status.
type OrderEvent struct {
	ID          string
	OrderID     string
	Type        OrderEventType
	Status      OrderStatus
	ActorID     string
	ActorRole   Role
	OccurredAt  time.Time
	PublishedAt *time.Time
}

type StatusHistoryEntry struct {
	EventID    string
	OrderID    string
	Status     OrderStatus
	ActorID    string
	ActorRole  Role
	OccurredAt time.Time
}
