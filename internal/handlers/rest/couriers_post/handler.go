package couriers_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"sweets-delivery/internal/dto"
	"sweets-delivery/internal/entities"
	"sweets-delivery/internal/service/courier"
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
	var request dto.CouriersCreateRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	batch := make([]entities.CourierModify, 0, len(request.Data))
	for _, item := range request.Data {
		batch = append(batch, toModify(item))
	}

	ids, err := h.service.ImportCouriers(r.Context(), batch)
	if err != nil {
		var batchErr *courier.BatchValidationError
		switch {
		case errors.As(err, &batchErr):
			writeValidationError(w, h.log, batchErr.IDs)
		case errors.Is(err, courier.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CouriersCreateResponse{
		Couriers: dto.IDs(ids),
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

// toModify собирает частичную модель из элемента импорта. Нечитаемые
// интервалы оставляют поле пустым: сервис пометит элемент невалидным.
func toModify(item dto.Courier) entities.CourierModify {
	id := item.CourierID
	courierType := entities.CourierType(item.CourierType)
	regions := item.Regions

	modify := entities.CourierModify{
		ID:      &id,
		Type:    &courierType,
		Regions: &regions,
	}

	hours, err := entities.ParseTimeIntervals(item.WorkingHours)
	if err == nil {
		modify.WorkingHours = &hours
	}
	return modify
}

func writeValidationError(w http.ResponseWriter, log handlerLogger, ids []int64) {
	response := dto.ValidationErrorResponse{
		ValidationError: dto.ValidationError{
			Couriers: dto.IDs(ids),
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
