package kafka

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/entities"
)

// OrderEventMessage is the JSON envelope of an order event on the topic.
type OrderEventMessage struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	ActorID    string    `json:"actor_id"`
	ActorRole  string    `json:"actor_role"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EncodeOrderEvent keys the record by order id.
func EncodeOrderEvent(ev entities.OrderEvent) (Message, error) {
	value, err := json.Marshal(OrderEventMessage{
		EventID:    ev.ID,
		EventType:  string(ev.Type),
		OrderID:    ev.OrderID,
		Status:     string(ev.Status),
		ActorID:    ev.ActorID,
		ActorRole:  string(ev.ActorRole),
		OccurredAt: ev.OccurredAt.UTC(),
	})
	if err != nil {
		return Message{}, fmt.Errorf("marshal order event %s: %w", ev.ID, err)
	}
	return Message{Key: ev.OrderID, Value: value}, nil
}

func DecodeOrderEvent(value []byte) (entities.OrderEvent, error) {
	var msg OrderEventMessage
	if err := json.Unmarshal(value, &msg); err != nil {
		return entities.OrderEvent{}, fmt.Errorf("unmarshal order event: %w", err)
	}
	if msg.EventID == "" || msg.OrderID == "" || msg.Status == "" {
		return entities.OrderEvent{}, errors.New("order event: missing event_id, order_id or status")
	}

	return entities.OrderEvent{
		ID:         msg.EventID,
		OrderID:    msg.OrderID,
		Type:       entities.OrderEventType(msg.EventType),
		Status:     entities.OrderStatus(msg.Status),
		ActorID:    msg.ActorID,
		ActorRole:  entities.Role(msg.ActorRole),
		OccurredAt: msg.OccurredAt,
	}, nil
}
