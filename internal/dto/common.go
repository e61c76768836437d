package dto

type ID struct {
	ID int64 `json:"id"`
}

// ValidationError тело ответа 400 пакетного импорта: id элементов,
// не прошедших валидацию. Заполняется ровно одно из полей.
type ValidationError struct {
	Couriers []ID `json:"couriers,omitempty"`
	Orders   []ID `json:"orders,omitempty"`
}

type ValidationErrorResponse struct {
	ValidationError ValidationError `json:"validation_error"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

func IDs(ids []int64) []ID {
	result := make([]ID, 0, len(ids))
	for _, id := range ids {
		result = append(result, ID{ID: id})
	}
	return result
}
