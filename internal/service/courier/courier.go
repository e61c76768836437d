package courier

import (
	"context"
	"fmt"
	"sort"

	"sweets-delivery/internal/entities"
)

type Courier struct {
	repository  Repository
	tripRepo    TripRepository
	orderRepo   OrderRepository
	reevaluator TripReevaluator
	txManager   TxManager
}

func New(
	repository Repository,
	tripRepo TripRepository,
	orderRepo OrderRepository,
	reevaluator TripReevaluator,
	txManager TxManager,
) *Courier {
	return &Courier{
		repository:  repository,
		tripRepo:    tripRepo,
		orderRepo:   orderRepo,
		reevaluator: reevaluator,
		txManager:   txManager,
	}
}

// ImportCouriers пакетное создание курьеров. Валидация поэлементная:
// если хоть один элемент некорректен, пакет отклоняется целиком,
// в ошибке перечислены id невалидных элементов.
func (s *Courier) ImportCouriers(ctx context.Context, batch []entities.CourierModify) ([]int64, error) {
	couriers := make([]entities.Courier, 0, len(batch))
	invalid := make([]int64, 0)

	for _, item := range batch {
		courier, ok := buildCourier(item)
		if !ok {
			if item.ID != nil {
				invalid = append(invalid, *item.ID)
			}
			continue
		}
		couriers = append(couriers, courier)
	}

	if len(invalid) > 0 || len(couriers) != len(batch) {
		return nil, &BatchValidationError{IDs: invalid}
	}

	if err := s.repository.CreateBatch(ctx, couriers); err != nil {
		return nil, fmt.Errorf("create couriers: %w", err)
	}

	ids := make([]int64, 0, len(couriers))
	for _, courier := range couriers {
		ids = append(ids, courier.ID)
	}
	return ids, nil
}

func buildCourier(item entities.CourierModify) (entities.Courier, bool) {
	if item.ID == nil || *item.ID <= 0 {
		return entities.Courier{}, false
	}
	if item.Type == nil || !item.Type.Valid() {
		return entities.Courier{}, false
	}
	if item.Regions == nil || !isValidRegions(*item.Regions) {
		return entities.Courier{}, false
	}
	if item.WorkingHours == nil || !isValidWorkingHours(*item.WorkingHours) {
		return entities.Courier{}, false
	}

	hours := append([]entities.TimeInterval(nil), *item.WorkingHours...)
	sort.Slice(hours, func(i, j int) bool { return hours[i].Start < hours[j].Start })

	return entities.Courier{
		ID:           *item.ID,
		Type:         *item.Type,
		Regions:      append([]int64(nil), *item.Regions...),
		WorkingHours: hours,
	}, true
}

// UpdateCourier заменяет переданные поля профиля и пересматривает
// открытый развоз против нового профиля в одной транзакции.
func (s *Courier) UpdateCourier(ctx context.Context, modify entities.CourierModify) (*entities.Courier, error) {
	if modify.ID == nil || *modify.ID <= 0 {
		return nil, ErrInvalidCourierID
	}
	if err := validateModify(modify); err != nil {
		return nil, err
	}

	var updated *entities.Courier
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, *modify.ID)
		if err != nil {
			return fmt.Errorf("lock courier: %w", err)
		}

		// Пустой patch: менять нечего, развоз не пересматриваем.
		if modify.Type == nil && modify.Regions == nil && modify.WorkingHours == nil {
			updated = current
			return nil
		}

		courier, err := s.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("update courier: %w", err)
		}

		if err := s.reevaluator.ReevaluateOpenTrip(ctx, courier); err != nil {
			return fmt.Errorf("reevaluate open trip: %w", err)
		}

		updated = courier
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Courier) GetCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	if id <= 0 {
		return nil, ErrInvalidCourierID
	}

	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}
	return courier, nil
}

// GetCourierInfo профиль с заработком и рейтингом.
// Заработок: сумма по завершенным развозам множителя развоза на плоскую
// премию. Рейтинг определен только при наличии завершенных развозов.
func (s *Courier) GetCourierInfo(ctx context.Context, id int64) (*entities.CourierInfo, error) {
	courier, err := s.GetCourier(ctx, id)
	if err != nil {
		return nil, err
	}

	trips, err := s.tripRepo.GetCompletedByCourier(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get completed trips: %w", err)
	}

	info := entities.CourierInfo{Courier: *courier}
	for _, trip := range trips {
		info.Earnings += trip.EarningsFactor * entities.TripEarningsBonus
	}

	if len(trips) > 0 {
		orders, err := s.orderRepo.GetCompletedByCourier(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get completed orders: %w", err)
		}
		info.Rating = computeRating(orders)
	}

	return &info, nil
}

const ratingWindowSeconds = 3600

// computeRating берет средние длительности доставки по районам и
// оценивает лучший район: 5 за мгновенные доставки, 0 за средние
// длительности от часа и выше. Без завершенных заказов рейтинга нет.
func computeRating(orders []entities.Order) *float64 {
	sums := make(map[int64]float64)
	counts := make(map[int64]int)
	for _, order := range orders {
		if order.DeliveryDurationSeconds == nil {
			continue
		}
		sums[order.Region] += *order.DeliveryDurationSeconds
		counts[order.Region]++
	}
	if len(counts) == 0 {
		return nil
	}

	best := -1.0
	for region, count := range counts {
		avg := sums[region] / float64(count)
		if best < 0 || avg < best {
			best = avg
		}
	}
	if best > ratingWindowSeconds {
		best = ratingWindowSeconds
	}

	rating := 5 * (ratingWindowSeconds - best) / ratingWindowSeconds
	return &rating
}
