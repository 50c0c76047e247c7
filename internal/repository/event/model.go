package event

import "time"

type OrderEventDB struct {
	ID          string
	OrderID     string
	EventType   string
	Status      string
	ActorID     string
	ActorRole   string
	OccurredAt  time.Time
	PublishedAt *time.Time
}
