package trip_sweeper

import (
	"context"
	"time"

	"sweets-delivery/pkg/logger"
)

type Service interface {
	SweepStaleTrips(ctx context.Context) (int64, error)
}

// TripSweeper фоновая сверка: закрывает открытые развозы, все заказы
// которых уже завершены. В норме развоз закрывается синхронно при
// последнем завершении, задача подчищает пропуски.
type TripSweeper struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewTripSweeper(log logger.Logger, service Service, interval time.Duration) *TripSweeper {
	return &TripSweeper{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *TripSweeper) TTL() time.Duration {
	return s.interval
}

func (s *TripSweeper) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	closed, err := s.service.SweepStaleTrips(ctxWithTimeout)

	if closed > 0 {
		s.log.With(
			logger.NewField("closed_trips", closed),
		).Info("trip sweep")
	}

	return err
}

func (s *TripSweeper) Info() string {
	return "trip sweep"
}
