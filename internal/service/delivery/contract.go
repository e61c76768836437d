//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"sweets-delivery/internal/entities"
)

type CourierRepository interface {
	// GetByIDForUpdate читает профиль курьера и блокирует его строку
	// до конца транзакции: операции над одним курьером сериализуются.
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Courier, error)
}

type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)

	// GetUnassigned возвращает пул кандидатов: заказы без развоза,
	// отсортированные по (weight ASC, id ASC).
	GetUnassigned(ctx context.Context) ([]entities.Order, error)

	// GetByTripID возвращает заказы развоза в том же порядке (weight ASC, id ASC).
	GetByTripID(ctx context.Context, tripID int64) ([]entities.Order, error)

	AttachToTrip(ctx context.Context, orderIDs []int64, tripID int64) error
	DetachFromTrip(ctx context.Context, orderIDs []int64) error

	SetCompletion(ctx context.Context, completion entities.OrderCompletion) error
	SetCompletions(ctx context.Context, completions []entities.OrderCompletion) error
}

type TripRepository interface {
	Create(ctx context.Context, courierID, earningsFactor int64, assignedAt time.Time) (*entities.Trip, error)
	GetByID(ctx context.Context, id int64) (*entities.Trip, error)
	FindOpenByCourier(ctx context.Context, courierID int64) (*entities.Trip, error)
	Delete(ctx context.Context, id int64) error
	MarkComplete(ctx context.Context, id int64) error

	// CloseCompletedTrips закрывает открытые развозы, у которых все заказы
	// уже завершены. Возвращает число закрытых развозов.
	CloseCompletedTrips(ctx context.Context) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
