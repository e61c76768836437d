package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"sweets-delivery/internal/entities"
)

// Delivery движок назначения и завершения заказов.
// Каждая операция выполняется в одной Serializable-транзакции,
// строка курьера берется под блокировку первой.
type Delivery struct {
	courierRepo CourierRepository
	orderRepo   OrderRepository
	tripRepo    TripRepository
	txManager   TxManager
}

func New(
	courierRepo CourierRepository,
	orderRepo OrderRepository,
	tripRepo TripRepository,
	txManager TxManager,
) *Delivery {
	return &Delivery{
		courierRepo: courierRepo,
		orderRepo:   orderRepo,
		tripRepo:    tripRepo,
		txManager:   txManager,
	}
}

// AssignOrders подбирает заказы для курьера.
// Пока у курьера есть открытый развоз, повторные вызовы идемпотентны:
// возвращается текущий состав и исходное время назначения.
func (d *Delivery) AssignOrders(ctx context.Context, courierID int64) (*entities.Assignment, error) {
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}

	assignment := entities.Assignment{}
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		courier, err := d.courierRepo.GetByIDForUpdate(ctx, courierID)
		if err != nil {
			return fmt.Errorf("lock courier: %w", err)
		}

		trip, err := d.tripRepo.FindOpenByCourier(ctx, courierID)
		if err == nil {
			orders, err := d.orderRepo.GetByTripID(ctx, trip.ID)
			if err != nil {
				return fmt.Errorf("load open trip orders: %w", err)
			}
			assignment = entities.Assignment{
				Orders:     orders,
				AssignedAt: &trip.AssignedAt,
			}
			return nil
		}
		if !errors.Is(err, ErrTripNotFound) {
			return fmt.Errorf("find open trip: %w", err)
		}

		candidates, err := d.orderRepo.GetUnassigned(ctx)
		if err != nil {
			return fmt.Errorf("load candidate pool: %w", err)
		}

		selected := selectOrders(courier, candidates)
		if len(selected) == 0 {
			assignment = entities.Assignment{Orders: []entities.Order{}}
			return nil
		}

		assignedAt := time.Now().UTC()
		newTrip, err := d.tripRepo.Create(ctx, courier.ID, courier.Type.EarningsFactor(), assignedAt)
		if err != nil {
			return fmt.Errorf("create trip: %w", err)
		}

		if err := d.orderRepo.AttachToTrip(ctx, orderIDs(selected), newTrip.ID); err != nil {
			return fmt.Errorf("attach orders: %w", err)
		}

		for i := range selected {
			selected[i].TripID = &newTrip.ID
		}
		assignment = entities.Assignment{
			Orders:     selected,
			AssignedAt: &newTrip.AssignedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// selectOrders жадный выбор: кандидаты идут от легких к тяжелым,
// первый заказ, переполняющий грузоподъемность, останавливает проход целиком —
// более легких кандидатов дальше уже не будет.
func selectOrders(courier *entities.Courier, candidates []entities.Order) []entities.Order {
	regions := courier.RegionSet()
	maxWeight := courier.Type.MaxWeight()

	total := decimal.Zero
	selected := make([]entities.Order, 0, len(candidates))

	for _, order := range candidates {
		if _, ok := regions[order.Region]; !ok {
			continue
		}
		if !entities.AnyIntersection(order.DeliveryHours, courier.WorkingHours) {
			continue
		}

		tentative := total.Add(order.Weight)
		if tentative.GreaterThan(maxWeight) {
			break
		}

		total = tentative
		selected = append(selected, order)
	}

	return selected
}

func orderIDs(orders []entities.Order) []int64 {
	ids := make([]int64, 0, len(orders))
	for _, order := range orders {
		ids = append(ids, order.ID)
	}
	return ids
}
