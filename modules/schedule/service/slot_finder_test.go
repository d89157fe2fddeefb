package service

import (
	"testing"

	"planner-api/modules/schedule/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func busyEvent(start, end string) entity.Event {
	return entity.Event{Day: "2025-03-11", StartTime: start, EndTime: end}
}

func TestSlotFinder_FindAvailableSlots(t *testing.T) {
	fullDay := NewSlotFinder(0, 1440, false)

	t.Run("should return the whole window for an empty day", func(t *testing.T) {
		slots := fullDay.FindAvailableSlots(nil, 0)
		require.Len(t, slots, 1)
		assert.Equal(t, "00:00", slots[0].StartTime)
		assert.Equal(t, "00:00", slots[0].EndTime)
		assert.Equal(t, 1440, slots[0].DurationMinutes)
	})

	t.Run("should find the gaps around and between events", func(t *testing.T) {
		slots := fullDay.FindAvailableSlots([]entity.Event{
			busyEvent("09:00", "10:00"),
			busyEvent("12:00", "13:30"),
		}, 0)
		require.Len(t, slots, 3)

		assert.Equal(t, "00:00", slots[0].StartTime)
		assert.Equal(t, "09:00", slots[0].EndTime)
		assert.Equal(t, "10:00", slots[1].StartTime)
		assert.Equal(t, "12:00", slots[1].EndTime)
		assert.Equal(t, "13:30", slots[2].StartTime)
		assert.Equal(t, "00:00", slots[2].EndTime)
		assert.Equal(t, 630, slots[2].DurationMinutes)
	})

	t.Run("should yield no slot between back-to-back events", func(t *testing.T) {
		slots := fullDay.FindAvailableSlots([]entity.Event{
			busyEvent("09:00", "10:00"),
			busyEvent("10:00", "11:00"),
		}, 0)
		require.Len(t, slots, 2)
		assert.Equal(t, "09:00", slots[0].EndTime)
		assert.Equal(t, "11:00", slots[1].StartTime)
	})

	t.Run("should merge overlapping events into one busy block", func(t *testing.T) {
		slots := fullDay.FindAvailableSlots([]entity.Event{
			busyEvent("09:00", "11:00"),
			busyEvent("10:00", "12:00"),
			busyEvent("09:30", "09:45"),
		}, 0)
		require.Len(t, slots, 2)
		assert.Equal(t, "09:00", slots[0].EndTime)
		assert.Equal(t, "12:00", slots[1].StartTime)
	})

	t.Run("should drop slots shorter than the minimum duration", func(t *testing.T) {
		slots := fullDay.FindAvailableSlots([]entity.Event{
			busyEvent("00:00", "09:00"),
			busyEvent("09:30", "23:00"),
		}, 60)
		require.Len(t, slots, 1)
		assert.Equal(t, "23:00", slots[0].StartTime)
		assert.Equal(t, 60, slots[0].DurationMinutes)
	})

	t.Run("should clip events to a business-hours window", func(t *testing.T) {
		sf := NewSlotFinder(9*60, 17*60, false)
		slots := sf.FindAvailableSlots([]entity.Event{
			busyEvent("07:00", "10:00"),
			busyEvent("16:00", "19:00"),
		}, 0)
		require.Len(t, slots, 1)
		assert.Equal(t, "10:00", slots[0].StartTime)
		assert.Equal(t, "16:00", slots[0].EndTime)
	})

	t.Run("should treat a midnight-spanning event as busy to the window end", func(t *testing.T) {
		slots := fullDay.FindAvailableSlots([]entity.Event{
			busyEvent("22:00", "02:00"),
		}, 0)
		require.Len(t, slots, 1)
		assert.Equal(t, "00:00", slots[0].StartTime)
		assert.Equal(t, "22:00", slots[0].EndTime)
	})

	t.Run("should skip events with unusable times", func(t *testing.T) {
		slots := fullDay.FindAvailableSlots([]entity.Event{
			busyEvent("9am", "10:00"),
			busyEvent("12:00", "13:00"),
		}, 0)
		require.Len(t, slots, 2)
		assert.Equal(t, "12:00", slots[0].EndTime)
	})
}
