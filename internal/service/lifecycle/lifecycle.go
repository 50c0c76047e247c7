// Package lifecycle moves orders through their status table and settles the
// courier when a delivery completes.
package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type Lifecycle struct {
	log        serviceLogger
	repository Repository
	settlement Settlement
	events     EventRepository
	txManager  TxManager
}

func New(
	log serviceLogger,
	repository Repository,
	settlement Settlement,
	events EventRepository,
	txManager TxManager,
) *Lifecycle {
	return &Lifecycle{
		log:        log,
		repository: repository,
		settlement: settlement,
		events:     events,
		txManager:  txManager,
	}
}

// UpdateStatus applies one transition requested by who. Checks run in a fixed
// order: existence, terminal state, table membership, role, ownership.
func (l *Lifecycle) UpdateStatus(
	ctx context.Context,
	orderID string,
	requested entities.OrderStatus,
	who entities.Identity,
) (*entities.Order, error) {
	if requested == "" {
		return nil, ErrStatusRequired
	}
	if uuid.Validate(orderID) != nil {
		return nil, entities.ErrOrderNotFound
	}

	order, err := l.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if err := authorize(order, requested, who); err != nil {
		return nil, err
	}

	change := entities.StatusChange{
		OrderID: order.ID,
		From:    order.Status,
		To:      requested,
	}
	switch requested {
	case entities.OrderDelivered:
		change.ClearCourier = true
		change.DeliveredBy = order.CourierID
	case entities.OrderCancelled:
		change.ClearCourier = order.CourierID != nil
	}

	var updated *entities.Order
	err = l.txManager.Do(ctx, func(ctx context.Context) error {
		o, err := l.repository.UpdateStatus(ctx, change)
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		updated = o

		if requested == entities.OrderDelivered {
			if err := l.settle(ctx, order); err != nil {
				return err
			}
		}

		_, err = l.events.Append(ctx, entities.OrderEvent{
			OrderID:   o.ID,
			Type:      entities.EventOrderStatusChanged,
			Status:    o.Status,
			ActorID:   who.ID,
			ActorRole: who.Role,
		})
		if err != nil {
			return fmt.Errorf("append order event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	StatusTransitionsTotal.WithLabelValues(change.From.String(), change.To.String()).Inc()
	return updated, nil
}

func authorize(order *entities.Order, requested entities.OrderStatus, who entities.Identity) error {
	if order.Status.IsTerminal() {
		return ErrOrderFinalized
	}

	rule, ok := Table[order.Status]
	if !ok || !rule.allows(requested) {
		return ErrInvalidTransition
	}
	if rule.Role != who.Role {
		return ErrRoleForbidden
	}

	switch who.Role {
	case entities.RoleRestaurant:
		if order.RestaurantID != who.ID {
			return ErrNotOwner
		}
	case entities.RoleCourier:
		if !order.IsAssignedTo(who.ID) {
			return ErrNotOwner
		}
	default:
		return ErrNotOwner
	}
	return nil
}

// settle credits the delivering courier with the order's fee. A vanished
// courier record does not block completion: it is logged and counted, and
// the status change still commits.
func (l *Lifecycle) settle(ctx context.Context, order *entities.Order) error {
	if order.CourierID == nil {
		return nil
	}
	courierID := *order.CourierID

	balance, err := l.settlement.Credit(ctx, courierID, order.DeliveryFee)
	if errors.Is(err, entities.ErrCourierNotFound) {
		SettlementAnomaliesTotal.Inc()
		l.log.Error("delivery fee not credited: courier not found",
			logger.NewField("order_id", order.ID),
			logger.NewField("courier_id", courierID),
			logger.NewField("amount", order.DeliveryFee.String()),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("settle delivery fee: %w", err)
	}

	l.log.Info("delivery fee credited",
		logger.NewField("order_id", order.ID),
		logger.NewField("courier_id", courierID),
		logger.NewField("balance", balance.String()),
	)
	return nil
}
