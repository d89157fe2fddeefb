package repository

import (
	"context"

	"planner-api/modules/schedule/entity"
)

// EventRepository is the persistence contract for schedule events. The store
// never enforces conflict policy; that belongs to callers (see the schedule
// service).
type EventRepository interface {
	// Create inserts a new event. The caller is responsible for having
	// assigned the id and timestamps.
	Create(ctx context.Context, event *entity.Event) error

	// GetByID returns the event or (nil, nil) when no event has that id.
	GetByID(ctx context.Context, id string) (*entity.Event, error)

	// GetForDay returns events whose day matches exactly, ordered ascending
	// by start time.
	GetForDay(ctx context.Context, day string) ([]entity.Event, error)

	// GetForRange returns events with day in the inclusive [from, to] bound,
	// ordered by day then start time. Reversed bounds (from > to) yield an
	// empty result, never an error.
	GetForRange(ctx context.Context, from, to string) ([]entity.Event, error)

	// GetAll returns every stored event ordered by day then start time.
	GetAll(ctx context.Context) ([]entity.Event, error)

	// Update overwrites the stored event with the same id. Returns
	// (false, nil) when the id does not exist.
	Update(ctx context.Context, event *entity.Event) (bool, error)

	// Delete removes the event. Returns (false, nil) when the id does not
	// exist.
	Delete(ctx context.Context, id string) (bool, error)
}
