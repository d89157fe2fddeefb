package service

import (
	"context"
	"testing"

	"planner-api/core/config"
	"planner-api/core/errors"
	"planner-api/core/utils"
	"planner-api/modules/schedule/dto"
	"planner-api/modules/schedule/entity"
	"planner-api/modules/schedule/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConflictService(t *testing.T, stored ...entity.Event) ScheduleServiceInterface {
	t.Helper()
	repo := repository.NewMemoryEventRepository()
	for i := range stored {
		require.NoError(t, repo.Create(context.Background(), &stored[i]))
	}
	return NewScheduleService(repo, utils.NewEventIDGenerator(), config.ScheduleConfig{}, nil)
}

func storedEvent(id, day, start, end string) entity.Event {
	return entity.Event{
		ID:        id,
		Title:     "Event " + id,
		Type:      entity.EventTypeTask,
		Day:       day,
		StartTime: start,
		EndTime:   end,
	}
}

func TestScheduleService_FindConflicts(t *testing.T) {
	ctx := context.Background()

	t.Run("should detect an overlapping event", func(t *testing.T) {
		svc := newConflictService(t, storedEvent("e1", "2025-03-11", "09:00", "10:00"))

		got, appErr := svc.FindConflicts(ctx, "2025-03-11", "09:30", "10:30", "")
		require.Nil(t, appErr)
		assert.True(t, got.HasConflict)
		require.Len(t, got.Conflicts, 1)
		assert.Equal(t, "e1", got.Conflicts[0].ID)
	})

	t.Run("should be symmetric", func(t *testing.T) {
		svc := newConflictService(t, storedEvent("e1", "2025-03-11", "09:30", "10:30"))

		got, appErr := svc.FindConflicts(ctx, "2025-03-11", "09:00", "10:00", "")
		require.Nil(t, appErr)
		assert.True(t, got.HasConflict)
	})

	t.Run("should not flag touching ranges", func(t *testing.T) {
		svc := newConflictService(t,
			storedEvent("before", "2025-03-11", "08:00", "09:00"),
			storedEvent("after", "2025-03-11", "10:00", "11:00"),
		)

		got, appErr := svc.FindConflicts(ctx, "2025-03-11", "09:00", "10:00", "")
		require.Nil(t, appErr)
		assert.False(t, got.HasConflict)
		assert.Empty(t, got.Conflicts)
	})

	t.Run("should skip the excluded event", func(t *testing.T) {
		svc := newConflictService(t,
			storedEvent("self", "2025-03-11", "09:00", "10:00"),
			storedEvent("other", "2025-03-11", "09:30", "10:30"),
		)

		got, appErr := svc.FindConflicts(ctx, "2025-03-11", "09:00", "10:00", "self")
		require.Nil(t, appErr)
		require.Len(t, got.Conflicts, 1)
		assert.Equal(t, "other", got.Conflicts[0].ID)
	})

	t.Run("should detect a previous-day event spanning midnight", func(t *testing.T) {
		svc := newConflictService(t, storedEvent("late", "2025-03-10", "23:00", "01:00"))

		got, appErr := svc.FindConflicts(ctx, "2025-03-11", "00:30", "01:30", "")
		require.Nil(t, appErr)
		assert.True(t, got.HasConflict)
	})

	t.Run("should detect overlap against a midnight-spanning target", func(t *testing.T) {
		svc := newConflictService(t, storedEvent("early", "2025-03-12", "00:30", "01:00"))

		got, appErr := svc.FindConflicts(ctx, "2025-03-11", "23:00", "01:00", "")
		require.Nil(t, appErr)
		assert.True(t, got.HasConflict)
	})

	t.Run("should treat an end of 00:00 as end of day", func(t *testing.T) {
		svc := newConflictService(t, storedEvent("night", "2025-03-11", "22:00", "00:00"))

		got, appErr := svc.FindConflicts(ctx, "2025-03-11", "23:00", "23:30", "")
		require.Nil(t, appErr)
		assert.True(t, got.HasConflict)
	})

	t.Run("should skip stored records with unusable times", func(t *testing.T) {
		svc := newConflictService(t,
			storedEvent("bad", "2025-03-11", "late", "later"),
			storedEvent("good", "2025-03-11", "09:00", "10:00"),
		)

		got, appErr := svc.FindConflicts(ctx, "2025-03-11", "09:30", "10:30", "")
		require.Nil(t, appErr)
		require.Len(t, got.Conflicts, 1)
		assert.Equal(t, "good", got.Conflicts[0].ID)
	})

	t.Run("should reject an invalid target range", func(t *testing.T) {
		svc := newConflictService(t)

		_, appErr := svc.FindConflicts(ctx, "2025-03-11", "9am", "10:00", "")
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	})

	t.Run("should move an event to fill a half-open boundary without conflict", func(t *testing.T) {
		svc := newConflictService(t, storedEvent("anchor", "2025-03-11", "10:00", "11:00"))
		created, appErr := svc.CreateEvent(ctx, &dto.CreateEventRequest{
			Title:     "Adjacent",
			Day:       "2025-03-11",
			StartTime: "07:00",
			EndTime:   "08:00",
		})
		require.Nil(t, appErr)

		moved, appErr := svc.MoveEvent(ctx, created.Event.ID, &dto.MoveEventRequest{
			Day:            "2025-03-11",
			StartTime:      "09:00",
			CheckConflicts: true,
		})
		require.Nil(t, appErr)
		assert.Equal(t, "10:00", moved.EndTime)
	})
}
