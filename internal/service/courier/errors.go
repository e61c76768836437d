package courier

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCourierID    = errors.New("invalid courier id")
	ErrInvalidCourierType  = errors.New("invalid courier type")
	ErrInvalidRegions      = errors.New("invalid regions")
	ErrInvalidWorkingHours = errors.New("invalid working hours")

	ErrCourierNotFound = errors.New("courier not found")
	ErrConflict        = errors.New("courier already exists")
)

// BatchValidationError ошибки пакетного импорта: id элементов,
// не прошедших валидацию. Остальная часть пакета не сохраняется.
type BatchValidationError struct {
	IDs []int64
}

func (e *BatchValidationError) Error() string {
	return fmt.Sprintf("validation failed for ids %v", e.IDs)
}
