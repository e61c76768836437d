package entities

import "time"

// Trip развоз: набор заказов, назначенных курьеру одним решением.
type Trip struct {
	ID        int64
	CourierID int64

	// EarningsFactor снимок множителя на момент создания развоза.
	// Смена транспорта курьера прошлые развозы не переоценивает.
	EarningsFactor int64

	AssignedAt time.Time
	IsComplete bool
}

// TripEarningsBonus плоская премия за завершенный развоз,
// умножается на EarningsFactor.
const TripEarningsBonus = 500

// Assignment результат назначения заказов курьеру.
// AssignedAt == nil, когда подходящих заказов не нашлось
// и развоз не создавался.
type Assignment struct {
	Orders     []Order
	AssignedAt *time.Time
}
