package courier

import (
	"sweets-delivery/internal/entities"
)

func ToDomain(c *CourierDB, regions []int64, hours []entities.TimeInterval) *entities.Courier {
	if c == nil {
		return nil
	}

	return &entities.Courier{
		ID:           c.ID,
		Type:         entities.CourierType(c.CourierType),
		Regions:      regions,
		WorkingHours: hours,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toIntervals(hours []WorkingHoursDB) []entities.TimeInterval {
	result := make([]entities.TimeInterval, 0, len(hours))
	for _, h := range hours {
		result = append(result, entities.TimeInterval{
			Start: entities.Minute(h.StartMinute),
			End:   entities.Minute(h.EndMinute),
		})
	}
	return result
}
