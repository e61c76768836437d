package courier

import "sweets-delivery/internal/entities"

func isValidRegions(regions []int64) bool {
	if len(regions) == 0 {
		return false
	}
	for _, region := range regions {
		if region <= 0 {
			return false
		}
	}
	return true
}

func isValidWorkingHours(hours []entities.TimeInterval) bool {
	return len(hours) > 0
}

// validateModify проверяет только заполненные поля частичного обновления.
func validateModify(modify entities.CourierModify) error {
	if modify.Type != nil && !modify.Type.Valid() {
		return ErrInvalidCourierType
	}
	if modify.Regions != nil && !isValidRegions(*modify.Regions) {
		return ErrInvalidRegions
	}
	if modify.WorkingHours != nil && !isValidWorkingHours(*modify.WorkingHours) {
		return ErrInvalidWorkingHours
	}
	return nil
}
