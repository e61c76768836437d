package courier

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"sweets-delivery/internal/entities"
	"sweets-delivery/internal/repository"
	"sweets-delivery/internal/service/courier"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// CreateBatch вставляет курьеров вместе с районами и часами работы.
// Идентификаторы приходят от клиента, конфликт по id — ошибка пакета.
func (r *Repository) CreateBatch(ctx context.Context, couriers []entities.Courier) error {
	courierBuilder := qb.
		Insert("couriers").
		Columns("id", "courier_type", "created_at", "updated_at")
	regionBuilder := qb.
		Insert("courier_regions").
		Columns("courier_id", "region")
	hoursBuilder := qb.
		Insert("courier_working_hours").
		Columns("courier_id", "start_minute", "end_minute")

	for _, c := range couriers {
		courierBuilder = courierBuilder.Values(c.ID, c.Type.String(), sq.Expr("NOW()"), sq.Expr("NOW()"))
		for _, region := range c.Regions {
			regionBuilder = regionBuilder.Values(c.ID, region)
		}
		for _, interval := range c.WorkingHours {
			hoursBuilder = hoursBuilder.Values(c.ID, int(interval.Start), int(interval.End))
		}
	}

	for _, builder := range []sq.InsertBuilder{courierBuilder, regionBuilder, hoursBuilder} {
		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("unexpected courier repository createbatch error: %w", err)
		}
		if _, err := r.querier.Exec(ctx, query, args...); err != nil {
			if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
				return courier.ErrConflict
			}
			return fmt.Errorf("unexpected courier repository createbatch error: %w", err)
		}
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Courier, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate блокирует строку курьера до конца транзакции.
// Дочерние таблицы не блокируем: писатели всегда берут строку курьера первой.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Courier, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id int64, forUpdate bool) (*entities.Courier, error) {
	query := `SELECT id, courier_type, created_at, updated_at
		FROM couriers
		WHERE id = $1`
	if forUpdate {
		query += `
		FOR UPDATE`
	}

	var courierModel CourierDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&courierModel.ID,
			&courierModel.CourierType,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	regions, err := r.loadRegions(ctx, id)
	if err != nil {
		return nil, err
	}
	hours, err := r.loadWorkingHours(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToDomain(&courierModel, regions, toIntervals(hours)), nil
}

// Update заменяет заполненные поля профиля; районы и часы работы
// перезаписываются целиком, а не сливаются.
func (r *Repository) Update(ctx context.Context, modify entities.CourierModify) (*entities.Courier, error) {
	if modify.Type != nil {
		builder := qb.
			Update("couriers").
			Set("courier_type", modify.Type.String()).
			Set("updated_at", sq.Expr("NOW()")).
			Where(sq.Eq{"id": modify.ID})

		query, args, err := builder.ToSql()
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
		}
		tag, err := r.querier.Exec(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil, courier.ErrCourierNotFound
		}
	}

	if modify.Regions != nil {
		if err := r.replaceRegions(ctx, *modify.ID, *modify.Regions); err != nil {
			return nil, err
		}
	}
	if modify.WorkingHours != nil {
		if err := r.replaceWorkingHours(ctx, *modify.ID, *modify.WorkingHours); err != nil {
			return nil, err
		}
	}

	return r.GetByID(ctx, *modify.ID)
}

func (r *Repository) replaceRegions(ctx context.Context, courierID int64, regions []int64) error {
	if _, err := r.querier.Exec(ctx, `DELETE FROM courier_regions WHERE courier_id = $1`, courierID); err != nil {
		return fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	builder := qb.
		Insert("courier_regions").
		Columns("courier_id", "region")
	for _, region := range regions {
		builder = builder.Values(courierID, region)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected courier repository update error: %w", err)
	}
	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("unexpected courier repository update error: %w", err)
	}
	return nil
}

func (r *Repository) replaceWorkingHours(ctx context.Context, courierID int64, hours []entities.TimeInterval) error {
	if _, err := r.querier.Exec(ctx, `DELETE FROM courier_working_hours WHERE courier_id = $1`, courierID); err != nil {
		return fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	builder := qb.
		Insert("courier_working_hours").
		Columns("courier_id", "start_minute", "end_minute")
	for _, interval := range hours {
		builder = builder.Values(courierID, int(interval.Start), int(interval.End))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected courier repository update error: %w", err)
	}
	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("unexpected courier repository update error: %w", err)
	}
	return nil
}

func (r *Repository) loadRegions(ctx context.Context, courierID int64) ([]int64, error) {
	query := `SELECT region
		FROM courier_regions
		WHERE courier_id = $1
		ORDER BY region`

	rows, err := r.querier.Query(ctx, query, courierID)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository load regions error: %w", err)
	}
	defer rows.Close()

	regions := make([]int64, 0, 4)
	for rows.Next() {
		var region int64
		if err := rows.Scan(&region); err != nil {
			return nil, fmt.Errorf("unexpected courier repository load regions error: %w", err)
		}
		regions = append(regions, region)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected courier repository load regions error: %w", err)
	}

	return regions, nil
}

func (r *Repository) loadWorkingHours(ctx context.Context, courierID int64) ([]WorkingHoursDB, error) {
	query := `SELECT courier_id, start_minute, end_minute
		FROM courier_working_hours
		WHERE courier_id = $1
		ORDER BY start_minute`

	rows, err := r.querier.Query(ctx, query, courierID)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository load working hours error: %w", err)
	}
	defer rows.Close()

	hours := make([]WorkingHoursDB, 0, 4)
	for rows.Next() {
		var h WorkingHoursDB
		if err := rows.Scan(&h.CourierID, &h.StartMinute, &h.EndMinute); err != nil {
			return nil, fmt.Errorf("unexpected courier repository load working hours error: %w", err)
		}
		hours = append(hours, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected courier repository load working hours error: %w", err)
	}

	return hours, nil
}
