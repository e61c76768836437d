package order

import (
	"context"
	"fmt"
	"sort"

	"sweets-delivery/internal/entities"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// ImportOrders пакетное создание заказов; семантика валидации та же,
// что у импорта курьеров: один невалидный элемент отклоняет весь пакет.
func (s *Service) ImportOrders(ctx context.Context, batch []entities.OrderModify) ([]int64, error) {
	orders := make([]entities.Order, 0, len(batch))
	invalid := make([]int64, 0)

	for _, item := range batch {
		order, ok := buildOrder(item)
		if !ok {
			if item.ID != nil {
				invalid = append(invalid, *item.ID)
			}
			continue
		}
		orders = append(orders, order)
	}

	if len(invalid) > 0 || len(orders) != len(batch) {
		return nil, &BatchValidationError{IDs: invalid}
	}

	if err := s.repository.CreateBatch(ctx, orders); err != nil {
		return nil, fmt.Errorf("create orders: %w", err)
	}

	ids := make([]int64, 0, len(orders))
	for _, order := range orders {
		ids = append(ids, order.ID)
	}
	return ids, nil
}

func buildOrder(item entities.OrderModify) (entities.Order, bool) {
	if item.ID == nil || *item.ID <= 0 {
		return entities.Order{}, false
	}
	if item.Weight == nil || !entities.ValidOrderWeight(*item.Weight) {
		return entities.Order{}, false
	}
	if item.Region == nil || *item.Region <= 0 {
		return entities.Order{}, false
	}
	if item.DeliveryHours == nil || len(*item.DeliveryHours) == 0 {
		return entities.Order{}, false
	}

	hours := append([]entities.TimeInterval(nil), *item.DeliveryHours...)
	sort.Slice(hours, func(i, j int) bool { return hours[i].Start < hours[j].Start })

	return entities.Order{
		ID:            *item.ID,
		Weight:        *item.Weight,
		Region:        *item.Region,
		DeliveryHours: hours,
	}, true
}
