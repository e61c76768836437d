package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"sweets-delivery/internal/entities"
	"sweets-delivery/internal/repository"
	"sweets-delivery/internal/service/delivery"
	"sweets-delivery/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, weight, region, trip_id, completed_at, delivery_duration_seconds, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// CreateBatch вставляет заказы вместе с интервалами доставки.
func (r *Repository) CreateBatch(ctx context.Context, orders []entities.Order) error {
	orderBuilder := qb.
		Insert("orders").
		Columns("id", "weight", "region", "created_at")
	hoursBuilder := qb.
		Insert("order_delivery_hours").
		Columns("order_id", "start_minute", "end_minute")

	for _, o := range orders {
		orderBuilder = orderBuilder.Values(o.ID, o.Weight, o.Region, sq.Expr("NOW()"))
		for _, interval := range o.DeliveryHours {
			hoursBuilder = hoursBuilder.Values(o.ID, int(interval.Start), int(interval.End))
		}
	}

	for _, builder := range []sq.InsertBuilder{orderBuilder, hoursBuilder} {
		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("unexpected order repository createbatch error: %w", err)
		}
		if _, err := r.querier.Exec(ctx, query, args...); err != nil {
			if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
				return order.ErrConflict
			}
			return fmt.Errorf("unexpected order repository createbatch error: %w", err)
		}
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&orderModel.ID,
			&orderModel.Weight,
			&orderModel.Region,
			&orderModel.TripID,
			&orderModel.CompletedAt,
			&orderModel.DeliveryDurationSeconds,
			&orderModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	hours, err := r.loadDeliveryHours(ctx, []int64{id})
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderModel, hours[id]), nil
}

// GetUnassigned пул кандидатов на назначение: заказы без развоза,
// отсортированные по (weight ASC, id ASC). Порядок — контракт подбора.
func (r *Repository) GetUnassigned(ctx context.Context) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE trip_id IS NULL
		ORDER BY weight, id`

	return r.queryOrders(ctx, query)
}

func (r *Repository) GetByTripID(ctx context.Context, tripID int64) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE trip_id = $1
		ORDER BY weight, id`

	return r.queryOrders(ctx, query, tripID)
}

// GetCompletedByCourier завершенные заказы всех развозов курьера,
// источник данных для рейтинга.
func (r *Repository) GetCompletedByCourier(ctx context.Context, courierID int64) ([]entities.Order, error) {
	query := `SELECT o.id, o.weight, o.region, o.trip_id, o.completed_at, o.delivery_duration_seconds, o.created_at
		FROM orders o
		JOIN trips t ON t.id = o.trip_id
		WHERE t.courier_id = $1 AND o.completed_at IS NOT NULL
		ORDER BY o.completed_at, o.id`

	return r.queryOrders(ctx, query, courierID)
}

func (r *Repository) AttachToTrip(ctx context.Context, orderIDs []int64, tripID int64) error {
	query := `UPDATE orders
		SET trip_id = $1
		WHERE id = ANY($2) AND trip_id IS NULL`

	tag, err := r.querier.Exec(ctx, query, tripID, orderIDs)
	if err != nil {
		return fmt.Errorf("unexpected order repository attach error: %w", err)
	}
	if tag.RowsAffected() != int64(len(orderIDs)) {
		return delivery.ErrInvariantViolation
	}
	return nil
}

func (r *Repository) DetachFromTrip(ctx context.Context, orderIDs []int64) error {
	query := `UPDATE orders
		SET trip_id = NULL
		WHERE id = ANY($1) AND completed_at IS NULL`

	tag, err := r.querier.Exec(ctx, query, orderIDs)
	if err != nil {
		return fmt.Errorf("unexpected order repository detach error: %w", err)
	}
	if tag.RowsAffected() != int64(len(orderIDs)) {
		return delivery.ErrInvariantViolation
	}
	return nil
}

func (r *Repository) SetCompletion(ctx context.Context, completion entities.OrderCompletion) error {
	query := `UPDATE orders
		SET completed_at = $1, delivery_duration_seconds = $2
		WHERE id = $3`

	tag, err := r.querier.Exec(ctx, query, completion.CompletedAt, completion.DeliveryDurationSeconds, completion.OrderID)
	if err != nil {
		return fmt.Errorf("unexpected order repository set completion error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return delivery.ErrOrderNotFound
	}
	return nil
}

func (r *Repository) SetCompletions(ctx context.Context, completions []entities.OrderCompletion) error {
	for _, completion := range completions {
		if err := r.SetCompletion(ctx, completion); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]entities.Order, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository query error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.Weight,
			&orderModel.Region,
			&orderModel.TripID,
			&orderModel.CompletedAt,
			&orderModel.DeliveryDurationSeconds,
			&orderModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository query error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository query error: %w", err)
	}

	ids := make([]int64, 0, len(orderModels))
	for _, orderModel := range orderModels {
		ids = append(ids, orderModel.ID)
	}
	hours, err := r.loadDeliveryHours(ctx, ids)
	if err != nil {
		return nil, err
	}

	return ToDomainList(orderModels, hours), nil
}

func (r *Repository) loadDeliveryHours(ctx context.Context, orderIDs []int64) (map[int64][]entities.TimeInterval, error) {
	result := make(map[int64][]entities.TimeInterval, len(orderIDs))
	if len(orderIDs) == 0 {
		return result, nil
	}

	query := `SELECT order_id, start_minute, end_minute
		FROM order_delivery_hours
		WHERE order_id = ANY($1)
		ORDER BY order_id, start_minute`

	rows, err := r.querier.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository load delivery hours error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var h DeliveryHoursDB
		if err := rows.Scan(&h.OrderID, &h.StartMinute, &h.EndMinute); err != nil {
			return nil, fmt.Errorf("unexpected order repository load delivery hours error: %w", err)
		}
		result[h.OrderID] = append(result[h.OrderID], entities.TimeInterval{
			Start: entities.Minute(h.StartMinute),
			End:   entities.Minute(h.EndMinute),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository load delivery hours error: %w", err)
	}

	return result, nil
}
