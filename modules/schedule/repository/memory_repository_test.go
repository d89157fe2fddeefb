package repository

import (
	"context"
	"testing"

	"planner-api/modules/schedule/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, r *MemoryEventRepository, id, day, start string) {
	t.Helper()
	require.NoError(t, r.Create(context.Background(), &entity.Event{
		ID:        id,
		Title:     "Event " + id,
		Type:      entity.EventTypeTask,
		Day:       day,
		StartTime: start,
		EndTime:   start,
	}))
}

func TestMemoryEventRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("should return nil without error for a missing id", func(t *testing.T) {
		r := NewMemoryEventRepository()
		got, err := r.GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("should return copies that do not alias the store", func(t *testing.T) {
		r := NewMemoryEventRepository()
		seed(t, r, "a", "2025-03-11", "09:00")

		got, err := r.GetByID(ctx, "a")
		require.NoError(t, err)
		got.Title = "mutated"

		again, err := r.GetByID(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "Event a", again.Title)
	})

	t.Run("should order a day's events by start time", func(t *testing.T) {
		r := NewMemoryEventRepository()
		seed(t, r, "late", "2025-03-11", "14:00")
		seed(t, r, "early", "2025-03-11", "08:00")
		seed(t, r, "other", "2025-03-12", "06:00")

		events, err := r.GetForDay(ctx, "2025-03-11")
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "early", events[0].ID)
		assert.Equal(t, "late", events[1].ID)
	})

	t.Run("should include both bounds of a day range", func(t *testing.T) {
		r := NewMemoryEventRepository()
		seed(t, r, "a", "2025-03-10", "09:00")
		seed(t, r, "b", "2025-03-11", "09:00")
		seed(t, r, "c", "2025-03-12", "09:00")
		seed(t, r, "d", "2025-03-13", "09:00")

		events, err := r.GetForRange(ctx, "2025-03-11", "2025-03-12")
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "b", events[0].ID)
		assert.Equal(t, "c", events[1].ID)
	})

	t.Run("should return an empty slice for reversed bounds", func(t *testing.T) {
		r := NewMemoryEventRepository()
		seed(t, r, "a", "2025-03-11", "09:00")

		events, err := r.GetForRange(ctx, "2025-03-12", "2025-03-11")
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("should report whether an update matched", func(t *testing.T) {
		r := NewMemoryEventRepository()
		seed(t, r, "a", "2025-03-11", "09:00")

		ok, err := r.Update(ctx, &entity.Event{ID: "a", Title: "Changed", Day: "2025-03-11"})
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = r.Update(ctx, &entity.Event{ID: "nope"})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should report whether a delete matched", func(t *testing.T) {
		r := NewMemoryEventRepository()
		seed(t, r, "a", "2025-03-11", "09:00")

		ok, err := r.Delete(ctx, "a")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = r.Delete(ctx, "a")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
