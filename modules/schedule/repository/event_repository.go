package repository

import (
	"context"
	"database/sql"

	"planner-api/core/database"
	"planner-api/core/logger"
	"planner-api/modules/schedule/entity"
)

// PostgresEventRepository stores events in the events table.
type PostgresEventRepository struct {
	db database.IDatabase
}

func NewPostgresEventRepository(db database.IDatabase) *PostgresEventRepository {
	return &PostgresEventRepository{db: db}
}

const eventColumns = `id, title, type, day, start_time, end_time, duration_minutes, travel_minutes, prep_minutes, timestamp, created_at, updated_at`

func (r *PostgresEventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (id, title, type, day, start_time, end_time, duration_minutes, travel_minutes, prep_minutes, timestamp, created_at, updated_at)
		VALUES (:id, :title, :type, :day, :start_time, :end_time, :duration_minutes, :travel_minutes, :prep_minutes, :timestamp, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, event)
	if err != nil {
		logger.Error("PostgresEventRepository:Create", err)
		return err
	}
	return nil
}

func (r *PostgresEventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var event entity.Event
	err := r.db.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("PostgresEventRepository:GetByID", err)
		return nil, err
	}
	return &event, nil
}

func (r *PostgresEventRepository) GetForDay(ctx context.Context, day string) ([]entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE day = $1 ORDER BY start_time ASC`

	events := []entity.Event{}
	if err := r.db.SelectContext(ctx, &events, query, day); err != nil {
		logger.Error("PostgresEventRepository:GetForDay", err)
		return nil, err
	}
	return events, nil
}

func (r *PostgresEventRepository) GetForRange(ctx context.Context, from, to string) ([]entity.Event, error) {
	// Reversed bounds are an empty range by contract. The ISO day format
	// makes the lexicographic comparison equivalent to a date comparison.
	if from > to {
		return []entity.Event{}, nil
	}

	query := `SELECT ` + eventColumns + ` FROM events WHERE day >= $1 AND day <= $2 ORDER BY day ASC, start_time ASC`

	events := []entity.Event{}
	if err := r.db.SelectContext(ctx, &events, query, from, to); err != nil {
		logger.Error("PostgresEventRepository:GetForRange", err)
		return nil, err
	}
	return events, nil
}

func (r *PostgresEventRepository) GetAll(ctx context.Context) ([]entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY day ASC, start_time ASC`

	events := []entity.Event{}
	if err := r.db.SelectContext(ctx, &events, query); err != nil {
		logger.Error("PostgresEventRepository:GetAll", err)
		return nil, err
	}
	return events, nil
}

func (r *PostgresEventRepository) Update(ctx context.Context, event *entity.Event) (bool, error) {
	query := `
		UPDATE events
		SET title = :title, type = :type, day = :day, start_time = :start_time, end_time = :end_time,
		    duration_minutes = :duration_minutes, travel_minutes = :travel_minutes, prep_minutes = :prep_minutes,
		    timestamp = :timestamp, updated_at = :updated_at
		WHERE id = :id
	`
	res, err := r.db.NamedExecContext(ctx, query, event)
	if err != nil {
		logger.Error("PostgresEventRepository:Update", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PostgresEventRepository) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM events WHERE id = $1`

	res, err := r.db.SQLx().ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("PostgresEventRepository:Delete", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
