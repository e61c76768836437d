package courier_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Неизвестные поля отклоняются: набор изменяемых полей закрыт.
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var update dto.CourierUpdate
	if err := decoder.Decode(&update); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	modify := entities.CourierModify{
		ID:      &id,
		Regions: update.Regions,
	}
	if update.CourierType != nil {
		courierType := entities.CourierType(*update.CourierType)
		modify.Type = &courierType
	}
	if update.WorkingHours != nil {
		hours, err := entities.ParseTimeIntervals(*update.WorkingHours)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		modify.WorkingHours = &hours
	}

	updated, err := h.service.UpdateCourier(r.Context(), modify)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, courier.ErrInvalidCourierID),
			errors.Is(err, courier.ErrInvalidCourierType),
			errors.Is(err, courier.ErrInvalidRegions),
			errors.Is(err, courier.ErrInvalidWorkingHours):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Courier{
		CourierID:    updated.ID,
		CourierType:  updated.Type.String(),
		Regions:      updated.Regions,
		WorkingHours: entities.IntervalStrings(updated.WorkingHours),
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
