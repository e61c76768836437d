package delivery

import (
	"context"
	"fmt"
	"sort"
	"time"

	"sweets-delivery/internal/entities"
)

// CompleteOrder фиксирует завершение заказа и пересчитывает длительность
// доставки. Повторное завершение — ошибка, не no-op: ретраить его нельзя.
func (d *Delivery) CompleteOrder(ctx context.Context, courierID, orderID int64, completeTime time.Time) (int64, error) {
	if courierID <= 0 {
		return 0, ErrInvalidCourierID
	}
	if orderID <= 0 {
		return 0, ErrInvalidOrderID
	}

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := d.courierRepo.GetByIDForUpdate(ctx, courierID); err != nil {
			return fmt.Errorf("lock courier: %w", err)
		}

		order, err := d.orderRepo.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("load order: %w", err)
		}
		if !order.Assigned() {
			return ErrOrderNotAssigned
		}

		trip, err := d.tripRepo.GetByID(ctx, *order.TripID)
		if err != nil {
			return fmt.Errorf("load trip: %w", err)
		}
		if trip.CourierID != courierID {
			return ErrCourierMismatch
		}
		if completeTime.Before(trip.AssignedAt) {
			return ErrCompleteTimeBeforeAssign
		}
		if order.Completed() {
			return ErrOrderAlreadyCompleted
		}

		members, err := d.orderRepo.GetByTripID(ctx, trip.ID)
		if err != nil {
			return fmt.Errorf("load trip orders: %w", err)
		}

		startTime := lastCompletionTime(members, trip.AssignedAt)
		duration := completeTime.Sub(startTime).Seconds()

		if duration > 0 {
			err = d.orderRepo.SetCompletion(ctx, entities.OrderCompletion{
				OrderID:                 orderID,
				CompletedAt:             completeTime,
				DeliveryDurationSeconds: duration,
			})
			if err != nil {
				return fmt.Errorf("save completion: %w", err)
			}
		} else {
			// Конкурентные запросы могли завершить заказы не в хронологическом
			// порядке. Переигрываем всю цепочку развоза от времени назначения.
			completions := replayCompletions(members, orderID, completeTime, trip.AssignedAt)
			if err := d.orderRepo.SetCompletions(ctx, completions); err != nil {
				return fmt.Errorf("replay completions: %w", err)
			}
		}

		if remainingIncomplete(members, orderID) == 0 {
			if err := d.tripRepo.MarkComplete(ctx, trip.ID); err != nil {
				return fmt.Errorf("close trip: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// SweepStaleTrips закрывает открытые развозы, все заказы которых уже
// завершены. Защитная сверка для фоновой задачи.
func (d *Delivery) SweepStaleTrips(ctx context.Context) (int64, error) {
	closed, err := d.tripRepo.CloseCompletedTrips(ctx)
	if err != nil {
		return 0, fmt.Errorf("close completed trips: %w", err)
	}
	return closed, nil
}

// lastCompletionTime момент последнего завершения в развозе,
// либо время назначения, если завершений еще не было.
func lastCompletionTime(members []entities.Order, assignedAt time.Time) time.Time {
	last := assignedAt
	for _, member := range members {
		if member.Completed() && member.CompletedAt.After(last) {
			last = *member.CompletedAt
		}
	}
	return last
}

// replayCompletions восстанавливает согласованную хронологию: все завершенные
// заказы развоза (включая текущий) выстраиваются по времени завершения, и
// длительности назначаются заново как разрывы между соседними событиями.
func replayCompletions(members []entities.Order, orderID int64, completeTime, assignedAt time.Time) []entities.OrderCompletion {
	completions := make([]entities.OrderCompletion, 0, len(members))
	for _, member := range members {
		if member.ID == orderID {
			completions = append(completions, entities.OrderCompletion{
				OrderID:     member.ID,
				CompletedAt: completeTime,
			})
			continue
		}
		if member.Completed() {
			completions = append(completions, entities.OrderCompletion{
				OrderID:     member.ID,
				CompletedAt: *member.CompletedAt,
			})
		}
	}

	sort.SliceStable(completions, func(i, j int) bool {
		if completions[i].CompletedAt.Equal(completions[j].CompletedAt) {
			return completions[i].OrderID < completions[j].OrderID
		}
		return completions[i].CompletedAt.Before(completions[j].CompletedAt)
	})

	prev := assignedAt
	for i := range completions {
		completions[i].DeliveryDurationSeconds = completions[i].CompletedAt.Sub(prev).Seconds()
		prev = completions[i].CompletedAt
	}
	return completions
}

func remainingIncomplete(members []entities.Order, justCompletedID int64) int {
	count := 0
	for _, member := range members {
		if member.ID == justCompletedID || member.Completed() {
			continue
		}
		count++
	}
	return count
}
