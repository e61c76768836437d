package delivery

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"sweets-delivery/internal/entities"
)

// ReevaluateOpenTrip пересматривает открытый развоз курьера после изменения
// его профиля. Сначала район и часы против нового профиля, затем вес:
// лишние заказы снимаются с тяжелого конца. Завершенные заказы не трогаем.
//
// Вызывается внутри транзакции UpdateCourier: либо применяется целиком,
// либо не применяется вовсе.
func (d *Delivery) ReevaluateOpenTrip(ctx context.Context, courier *entities.Courier) error {
	trip, err := d.tripRepo.FindOpenByCourier(ctx, courier.ID)
	if errors.Is(err, ErrTripNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("find open trip: %w", err)
	}

	members, err := d.orderRepo.GetByTripID(ctx, trip.ID)
	if err != nil {
		return fmt.Errorf("load trip orders: %w", err)
	}

	kept, evicted := planEviction(courier, members)
	if len(evicted) > 0 {
		if err := d.orderRepo.DetachFromTrip(ctx, orderIDs(evicted)); err != nil {
			return fmt.Errorf("evict orders: %w", err)
		}
	}

	if len(kept) == 0 {
		if err := d.tripRepo.Delete(ctx, trip.ID); err != nil {
			return fmt.Errorf("delete empty trip: %w", err)
		}
		return nil
	}

	if incompleteCount(kept) == 0 {
		if err := d.tripRepo.MarkComplete(ctx, trip.ID); err != nil {
			return fmt.Errorf("close trip: %w", err)
		}
	}
	return nil
}

// planEviction делит заказы развоза на оставляемые и снимаемые.
// members приходят отсортированными по (weight ASC, id ASC).
func planEviction(courier *entities.Courier, members []entities.Order) (kept, evicted []entities.Order) {
	kept = make([]entities.Order, 0, len(members))
	evicted = make([]entities.Order, 0)

	// Шаг 1: район и часы, только для незавершенных. Вес здесь не важен.
	survivors := make([]entities.Order, 0, len(members))
	for _, member := range members {
		if member.Completed() {
			kept = append(kept, member)
			continue
		}
		if !courier.CanCarry(&member) {
			evicted = append(evicted, member)
			continue
		}
		survivors = append(survivors, member)
	}

	// Шаг 2: вес. Снимаем с тяжелого конца, пока сумма не впишется
	// в новую грузоподъемность; легкие уходят последними.
	maxWeight := courier.Type.MaxWeight()
	total := decimal.Zero
	for _, survivor := range survivors {
		total = total.Add(survivor.Weight)
	}
	for len(survivors) > 0 && total.GreaterThan(maxWeight) {
		heaviest := survivors[len(survivors)-1]
		survivors = survivors[:len(survivors)-1]
		total = total.Sub(heaviest.Weight)
		evicted = append(evicted, heaviest)
	}

	kept = append(kept, survivors...)
	return kept, evicted
}

func incompleteCount(orders []entities.Order) int {
	count := 0
	for _, order := range orders {
		if !order.Completed() {
			count++
		}
	}
	return count
}
