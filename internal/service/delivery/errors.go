package delivery

import "errors"

var (
	ErrInvalidCourierID = errors.New("invalid courier id")
	ErrInvalidOrderID   = errors.New("invalid order id")

	ErrTripNotFound             = errors.New("trip not found")
	ErrOrderNotFound            = errors.New("order not found")
	ErrOrderNotAssigned         = errors.New("order is not assigned to any trip")
	ErrCourierMismatch          = errors.New("order belongs to another courier")
	ErrCompleteTimeBeforeAssign = errors.New("complete time precedes trip assignment")
	ErrOrderAlreadyCompleted    = errors.New("order already completed")

	// ErrInvariantViolation внутренняя ошибка: нарушение инварианта движка.
	// Наружу не раскрывается, только логируется.
	ErrInvariantViolation = errors.New("invariant violation")
)
