package order_completed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"sweets-delivery/internal/service/courier"
	"sweets-delivery/internal/service/delivery"
	"sweets-delivery/pkg/logger"
)

// completedEvent событие завершения заказа курьером из мобильного клиента.
type completedEvent struct {
	CourierID    int64     `json:"courier_id"`
	OrderID      int64     `json:"order_id"`
	CompleteTime time.Time `json:"complete_time"`
}

type Handler struct {
	deliveryService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, deliveryService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		deliveryService:          deliveryService,
		log:                      handlerLog,
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
				// Messages() закрыт — выходим
				h.log.Info("order.completed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("order.completed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event completedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.completed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("courier", event.CourierID),
		logger.NewField("order", event.OrderID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.completed processing")

	orderID, err := h.deliveryService.CompleteOrder(ctx, event.CourierID, event.OrderID, event.CompleteTime)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.completed handler context cancelled, message will be reprocessed")
			return true

		case isPermanent(err):
			// Невалидное или дублирующееся событие: ретраить бессмысленно
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.completed handler rejected event")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.completed handler failed to complete order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("completed_order", orderID),
	).Info("order.completed: processed")

	sess.MarkMessage(message, "")
	return false
}

func isPermanent(err error) bool {
	return errors.Is(err, delivery.ErrInvalidCourierID) ||
		errors.Is(err, delivery.ErrInvalidOrderID) ||
		errors.Is(err, delivery.ErrOrderNotFound) ||
		errors.Is(err, delivery.ErrOrderNotAssigned) ||
		errors.Is(err, delivery.ErrCourierMismatch) ||
		errors.Is(err, delivery.ErrCompleteTimeBeforeAssign) ||
		errors.Is(err, delivery.ErrOrderAlreadyCompleted) ||
		errors.Is(err, courier.ErrCourierNotFound)
}
