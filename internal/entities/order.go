package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	minOrderWeight = decimal.New(1, -2)    // 0.01
	maxOrderWeight = decimal.New(5000, -2) // 50.00
)

type Order struct {
	ID            int64
	Weight        decimal.Decimal
	Region        int64
	DeliveryHours []TimeInterval

	// TripID слабая обратная ссылка на развоз; nil пока заказ не назначен.
	TripID *int64

	// CompletedAt выставляется ровно один раз.
	CompletedAt *time.Time

	// DeliveryDurationSeconds время доставки в секундах, может быть дробным.
	DeliveryDurationSeconds *float64

	CreatedAt time.Time
}

func (o *Order) Assigned() bool {
	return o.TripID != nil
}

func (o *Order) Completed() bool {
	return o.CompletedAt != nil
}

// ValidOrderWeight проверяет попадание веса в [0.01, 50.00]
// с точностью не более двух знаков после запятой.
func ValidOrderWeight(w decimal.Decimal) bool {
	if !w.Equal(w.Round(2)) {
		return false
	}
	return w.GreaterThanOrEqual(minOrderWeight) && w.LessThanOrEqual(maxOrderWeight)
}

// OrderModify структура создания заказа: id задается клиентом,
// как и у курьеров.
type OrderModify struct {
	ID            *int64
	Weight        *decimal.Decimal
	Region        *int64
	DeliveryHours *[]TimeInterval
}

// OrderCompletion результат пересчета длительности доставки одного заказа.
type OrderCompletion struct {
	OrderID                 int64
	CompletedAt             time.Time
	DeliveryDurationSeconds float64
}
