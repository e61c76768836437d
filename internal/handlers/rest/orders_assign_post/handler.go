package orders_assign_post

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
	var request dto.OrdersAssignRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignment, err := h.service.AssignOrders(r.Context(), request.CourierID)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidCourierID),
			errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	ids := make([]int64, 0, len(assignment.Orders))
	for _, assignedOrder := range assignment.Orders {
		ids = append(ids, assignedOrder.ID)
	}
	response := dto.OrdersAssignResponse{
		Orders:     dto.IDs(ids),
		AssignTime: assignment.AssignedAt,
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
