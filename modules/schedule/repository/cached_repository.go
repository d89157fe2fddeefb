package repository

import (
	"context"
	"encoding/json"
	"time"

	"planner-api/core/logger"
	"planner-api/modules/schedule/entity"

	"github.com/redis/go-redis/v9"
)

// CachedEventRepository is a read-through Redis cache in front of another
// EventRepository. Only the hot per-day query is cached; any write touching
// a day drops that day's entry. Cache failures degrade to the inner store.
type CachedEventRepository struct {
	inner EventRepository
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedEventRepository(inner EventRepository, rdb *redis.Client, ttl time.Duration) *CachedEventRepository {
	return &CachedEventRepository{inner: inner, rdb: rdb, ttl: ttl}
}

func dayKey(day string) string {
	return "schedule:day:" + day
}

func (r *CachedEventRepository) Create(ctx context.Context, event *entity.Event) error {
	if err := r.inner.Create(ctx, event); err != nil {
		return err
	}
	r.invalidate(ctx, event.Day)
	return nil
}

func (r *CachedEventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	return r.inner.GetByID(ctx, id)
}

func (r *CachedEventRepository) GetForDay(ctx context.Context, day string) ([]entity.Event, error) {
	if cached, err := r.rdb.Get(ctx, dayKey(day)).Bytes(); err == nil {
		var events []entity.Event
		if jsonErr := json.Unmarshal(cached, &events); jsonErr == nil {
			return events, nil
		}
		// Corrupt entry, fall through to the store.
		r.invalidate(ctx, day)
	}

	events, err := r.inner.GetForDay(ctx, day)
	if err != nil {
		return nil, err
	}

	if payload, jsonErr := json.Marshal(events); jsonErr == nil {
		if setErr := r.rdb.Set(ctx, dayKey(day), payload, r.ttl).Err(); setErr != nil {
			logger.Warn("CachedEventRepository:GetForDay:CacheSet", "error", setErr, "day", day)
		}
	}
	return events, nil
}

func (r *CachedEventRepository) GetForRange(ctx context.Context, from, to string) ([]entity.Event, error) {
	return r.inner.GetForRange(ctx, from, to)
}

func (r *CachedEventRepository) GetAll(ctx context.Context) ([]entity.Event, error) {
	return r.inner.GetAll(ctx)
}

func (r *CachedEventRepository) Update(ctx context.Context, event *entity.Event) (bool, error) {
	// The day may have changed; drop the entry for the previously stored day
	// as well as the new one.
	var staleDays []string
	if prev, err := r.inner.GetByID(ctx, event.ID); err == nil && prev != nil && prev.Day != event.Day {
		staleDays = append(staleDays, prev.Day)
	}

	ok, err := r.inner.Update(ctx, event)
	if err != nil || !ok {
		return ok, err
	}

	r.invalidate(ctx, append(staleDays, event.Day)...)
	return true, nil
}

func (r *CachedEventRepository) Delete(ctx context.Context, id string) (bool, error) {
	prev, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return false, err
	}

	ok, err := r.inner.Delete(ctx, id)
	if err != nil || !ok {
		return ok, err
	}

	if prev != nil {
		r.invalidate(ctx, prev.Day)
	}
	return true, nil
}

func (r *CachedEventRepository) invalidate(ctx context.Context, days ...string) {
	for _, day := range days {
		if err := r.rdb.Del(ctx, dayKey(day)).Err(); err != nil {
			logger.Warn("CachedEventRepository:Invalidate", "error", err, "day", day)
		}
	}
}
