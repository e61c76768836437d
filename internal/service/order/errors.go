package order

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrConflict      = errors.New("order already exists")
)

// BatchValidationError id заказов, не прошедших валидацию импорта.
type BatchValidationError struct {
	IDs []int64
}

func (e *BatchValidationError) Error() string {
	return fmt.Sprintf("validation failed for ids %v", e.IDs)
}
