package trip

import (
	"sweets-delivery/internal/entities"
)

func ToDomain(t *TripDB) *entities.Trip {
	if t == nil {
		return nil
	}

	return &entities.Trip{
		ID:             t.ID,
		CourierID:      t.CourierID,
		EarningsFactor: t.EarningsFactor,
		AssignedAt:     t.AssignedAt,
		IsComplete:     t.IsComplete,
	}
}

func ToDomainList(tripsDB []TripDB) []entities.Trip {
	if len(tripsDB) == 0 {
		return []entities.Trip{}
	}

	result := make([]entities.Trip, len(tripsDB))
	for i, tripDB := range tripsDB {
		result[i] = *ToDomain(&tripDB)
	}
	return result
}
