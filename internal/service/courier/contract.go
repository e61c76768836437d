//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"

	"sweets-delivery/internal/entities"
)

type Repository interface {
	CreateBatch(ctx context.Context, couriers []entities.Courier) error
	GetByID(ctx context.Context, id int64) (*entities.Courier, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Courier, error)

	// Update заменяет переданные поля; regions и working hours
	// перезаписываются целиком.
	Update(ctx context.Context, modify entities.CourierModify) (*entities.Courier, error)
}

type TripRepository interface {
	GetCompletedByCourier(ctx context.Context, courierID int64) ([]entities.Trip, error)
}

type OrderRepository interface {
	GetCompletedByCourier(ctx context.Context, courierID int64) ([]entities.Order, error)
}

// TripReevaluator пересматривает открытый развоз после смены профиля.
// Реализуется сервисом delivery.
type TripReevaluator interface {
	ReevaluateOpenTrip(ctx context.Context, courier *entities.Courier) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
