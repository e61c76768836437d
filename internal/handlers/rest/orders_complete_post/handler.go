package orders_complete_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"sweets-delivery/internal/dto"
	"sweets-delivery/internal/service/courier"
	"sweets-delivery/internal/service/delivery"
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
	var request dto.OrderCompleteRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderID, err := h.service.CompleteOrder(r.Context(), request.CourierID, request.OrderID, request.CompleteTime)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidCourierID),
			errors.Is(err, delivery.ErrInvalidOrderID),
			errors.Is(err, delivery.ErrOrderNotFound),
			errors.Is(err, delivery.ErrOrderNotAssigned),
			errors.Is(err, delivery.ErrCourierMismatch),
			errors.Is(err, delivery.ErrCompleteTimeBeforeAssign),
			errors.Is(err, delivery.ErrOrderAlreadyCompleted),
			errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrderCompleteResponse{
		OrderID: orderID,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
