package order

import (
	"sweets-delivery/internal/entities"
)

func ToDomain(o *OrderDB, hours []entities.TimeInterval) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:                      o.ID,
		Weight:                  o.Weight,
		Region:                  o.Region,
		DeliveryHours:           hours,
		TripID:                  o.TripID,
		CompletedAt:             o.CompletedAt,
		DeliveryDurationSeconds: o.DeliveryDurationSeconds,
		CreatedAt:               o.CreatedAt,
	}
}

func ToDomainList(ordersDB []OrderDB, hoursByOrder map[int64][]entities.TimeInterval) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB, hoursByOrder[orderDB.ID])
	}
	return result
}
