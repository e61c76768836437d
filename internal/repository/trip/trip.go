package trip

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"sweets-delivery/internal/entities"
	"sweets-delivery/internal/service/delivery"
)

const tripColumns = `id, courier_id, earnings_factor, assigned_at, is_complete`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, courierID, earningsFactor int64, assignedAt time.Time) (*entities.Trip, error) {
	query := `INSERT INTO trips (courier_id, earnings_factor, assigned_at)
		VALUES ($1, $2, $3)
		RETURNING ` + tripColumns

	var tripModel TripDB
	err := r.querier.QueryRow(ctx, query, courierID, earningsFactor, assignedAt).
		Scan(
			&tripModel.ID,
			&tripModel.CourierID,
			&tripModel.EarningsFactor,
			&tripModel.AssignedAt,
			&tripModel.IsComplete,
		)
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository create error: %w", err)
	}

	return ToDomain(&tripModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Trip, error) {
	query := `SELECT ` + tripColumns + `
		FROM trips
		WHERE id = $1`

	return r.queryTrip(ctx, query, id)
}

// FindOpenByCourier незакрытый развоз курьера; открытым может быть
// не больше одного.
func (r *Repository) FindOpenByCourier(ctx context.Context, courierID int64) (*entities.Trip, error) {
	query := `SELECT ` + tripColumns + `
		FROM trips
		WHERE courier_id = $1 AND NOT is_complete`

	return r.queryTrip(ctx, query, courierID)
}

func (r *Repository) GetCompletedByCourier(ctx context.Context, courierID int64) ([]entities.Trip, error) {
	query := `SELECT ` + tripColumns + `
		FROM trips
		WHERE courier_id = $1 AND is_complete
		ORDER BY assigned_at, id`

	rows, err := r.querier.Query(ctx, query, courierID)
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository get completed error: %w", err)
	}
	defer rows.Close()

	tripModels := make([]TripDB, 0, 8)
	for rows.Next() {
		var tripModel TripDB
		err := rows.Scan(
			&tripModel.ID,
			&tripModel.CourierID,
			&tripModel.EarningsFactor,
			&tripModel.AssignedAt,
			&tripModel.IsComplete,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected trip repository get completed error: %w", err)
		}
		tripModels = append(tripModels, tripModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected trip repository get completed error: %w", err)
	}

	return ToDomainList(tripModels), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM trips WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected trip repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return delivery.ErrTripNotFound
	}
	return nil
}

func (r *Repository) MarkComplete(ctx context.Context, id int64) error {
	query := `UPDATE trips SET is_complete = TRUE WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected trip repository mark complete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return delivery.ErrTripNotFound
	}
	return nil
}

// CloseCompletedTrips закрывает открытые развозы, у которых не осталось
// незавершенных заказов. Один UPDATE, без построчной обработки.
func (r *Repository) CloseCompletedTrips(ctx context.Context) (int64, error) {
	query := `UPDATE trips t
		SET is_complete = TRUE
		WHERE NOT t.is_complete
		  AND EXISTS (SELECT 1 FROM orders o WHERE o.trip_id = t.id)
		  AND NOT EXISTS (
			SELECT 1 FROM orders o
			WHERE o.trip_id = t.id AND o.completed_at IS NULL
		  )`

	tag, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected trip repository close completed error: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) queryTrip(ctx context.Context, query string, args ...interface{}) (*entities.Trip, error) {
	var tripModel TripDB
	err := r.querier.QueryRow(ctx, query, args...).
		Scan(
			&tripModel.ID,
			&tripModel.CourierID,
			&tripModel.EarningsFactor,
			&tripModel.AssignedAt,
			&tripModel.IsComplete,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrTripNotFound
		}
		return nil, fmt.Errorf("unexpected trip repository query error: %w", err)
	}

	return ToDomain(&tripModel), nil
}
