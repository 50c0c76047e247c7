package order_status_changed

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"marketplace/internal/pkg/apperr"
	"marketplace/internal/pkg/kafka"
	"marketplace/pkg/logger"
)

// Handler turns order events from the broker into status history entries.
type Handler struct {
	historyService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, historyService Service, timeout time.Duration) *Handler {
	return &Handler{
		historyService:           historyService,
		log:                      log.With(logger.NewField("handler", "order.status.changed")),
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("claim messages closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one message. It returns true when ConsumeClaim
// must stop; the message is then left unmarked and redelivered. Only
// undecodable or invalid events are marked without being recorded.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	event, err := kafka.DecodeOrderEvent(message.Value)
	if err != nil {
		h.log.Error("bad message skipped",
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		)
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("event", event.ID),
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status.String()),
		logger.NewField("offset", message.Offset),
	)

	inserted, err := h.historyService.Record(ctx, event)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			msgLog.Warn("context cancelled, message will be reprocessed", logger.NewField("error", err))
			return true
		}
		if apperr.CodeOf(err) == apperr.CodeInvalidInput {
			msgLog.Error("invalid event skipped", logger.NewField("error", err))
			sess.MarkMessage(message, "")
			return false
		}
		msgLog.Error("failed to record status history, message will be reprocessed", logger.NewField("error", err))
		return true
	}

	if inserted {
		msgLog.Info("status history recorded")
	} else {
		msgLog.Debug("duplicate event ignored")
	}

	sess.MarkMessage(message, "")
	return false
}
