package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Courier struct {
	ID           int64
	Type         CourierType
	Regions      []int64
	WorkingHours []TimeInterval
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CourierType string

const (
	CourierFoot CourierType = "foot"
	CourierBike CourierType = "bike"
	CourierCar  CourierType = "car"
)

func (t CourierType) String() string {
	return string(t)
}

func (t CourierType) Valid() bool {
	switch t {
	case CourierFoot, CourierBike, CourierCar:
		return true
	default:
		return false
	}
}

var (
	maxWeightFoot = decimal.New(1000, -2) // 10.00
	maxWeightBike = decimal.New(1500, -2) // 15.00
	maxWeightCar  = decimal.New(5000, -2) // 50.00
)

// MaxWeight грузоподъемность по типу транспорта, кг с точностью до сотых.
func (t CourierType) MaxWeight() decimal.Decimal {
	switch t {
	case CourierBike:
		return maxWeightBike
	case CourierCar:
		return maxWeightCar
	default:
		return maxWeightFoot
	}
}

// EarningsFactor множитель заработка по типу транспорта.
func (t CourierType) EarningsFactor() int64 {
	switch t {
	case CourierBike:
		return 5
	case CourierCar:
		return 9
	default:
		return 2
	}
}

// RegionSet множество районов курьера для быстрой проверки membership.
func (c *Courier) RegionSet() map[int64]struct{} {
	set := make(map[int64]struct{}, len(c.Regions))
	for _, region := range c.Regions {
		set[region] = struct{}{}
	}
	return set
}

// CanCarry проверяет район и пересечение часов доставки с рабочими часами.
// Вес проверяется отдельно, на уровне набора заказов.
func (c *Courier) CanCarry(order *Order) bool {
	if _, ok := c.RegionSet()[order.Region]; !ok {
		return false
	}
	return AnyIntersection(order.DeliveryHours, c.WorkingHours)
}

// CourierModify частичное обновление профиля. nil-поле означает "не менять".
// Regions и WorkingHours заменяются целиком, не сливаются.
type CourierModify struct {
	ID           *int64
	Type         *CourierType
	Regions      *[]int64
	WorkingHours *[]TimeInterval
}

// CourierInfo профиль с производными метриками.
// Rating == nil, когда у курьера нет ни одного завершенного развоза.
type CourierInfo struct {
	Courier
	Earnings int64
	Rating   *float64
}
