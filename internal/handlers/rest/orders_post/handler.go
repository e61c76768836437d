package orders_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"sweets-delivery/internal/dto"
	"sweets-delivery/internal/entities"
	"sweets-delivery/internal/service/order"
	"sweets-delivery/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request dto.OrdersCreateRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	batch := make([]entities.OrderModify, 0, len(request.Data))
	for _, item := range request.Data {
		batch = append(batch, toModify(item))
	}

	ids, err := h.service.ImportOrders(r.Context(), batch)
	if err != nil {
		var batchErr *order.BatchValidationError
		switch {
		case errors.As(err, &batchErr):
			writeValidationError(w, h.log, batchErr.IDs)
		case errors.Is(err, order.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrdersCreateResponse{
		Orders: dto.IDs(ids),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// toModify собирает частичную модель из элемента импорта. Нечитаемый
// вес или интервалы оставляют поле пустым: сервис пометит элемент невалидным.
func toModify(item dto.Order) entities.OrderModify {
	id := item.OrderID
	region := item.Region

	modify := entities.OrderModify{
		ID:     &id,
		Region: &region,
	}

	if weight, err := decimal.NewFromString(item.Weight.String()); err == nil {
		modify.Weight = &weight
	}
	if hours, err := entities.ParseTimeIntervals(item.DeliveryHours); err == nil {
		modify.DeliveryHours = &hours
	}
	return modify
}

func writeValidationError(w http.ResponseWriter, log handlerLogger, ids []int64) {
	response := dto.ValidationErrorResponse{
		ValidationError: dto.ValidationError{
			Orders: dto.IDs(ids),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
