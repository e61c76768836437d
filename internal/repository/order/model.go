package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDB struct {
	ID                      int64
	Weight                  decimal.Decimal
	Region                  int64
	TripID                  *int64
	CompletedAt             *time.Time
	DeliveryDurationSeconds *float64
	CreatedAt               time.Time
}

type DeliveryHoursDB struct {
	OrderID     int64
	StartMinute int
	EndMinute   int
}
