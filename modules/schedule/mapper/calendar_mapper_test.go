package mapper

import (
	"testing"
	"time"

	"planner-api/modules/schedule/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvent() *entity.Event {
	return &entity.Event{
		ID:              "1741687200000",
		Title:           "Standup",
		Type:            entity.EventTypeMeeting,
		Day:             "2025-03-11",
		StartTime:       "09:00",
		EndTime:         "10:00",
		DurationMinutes: 60,
		TravelMinutes:   15,
		PrepMinutes:     5,
	}
}

func TestToBigCalendarEvent(t *testing.T) {
	t.Run("should combine day and times into instants", func(t *testing.T) {
		got := ToBigCalendarEvent(sampleEvent(), false)
		require.NotNil(t, got)

		assert.Equal(t, "1741687200000", got.ID)
		assert.Equal(t, "Standup", got.Title)
		assert.Equal(t, time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC), got.Start)
		assert.Equal(t, time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC), got.End)
		assert.False(t, got.AllDay)
	})

	t.Run("should place a wrapped end on the next day", func(t *testing.T) {
		e := sampleEvent()
		e.StartTime = "23:00"
		e.EndTime = "01:00"
		e.DurationMinutes = 120

		got := ToBigCalendarEvent(e, false)
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2025, 3, 11, 23, 0, 0, 0, time.UTC), got.Start)
		assert.Equal(t, time.Date(2025, 3, 12, 1, 0, 0, 0, time.UTC), got.End)
	})

	t.Run("should mark a full-day event as all-day", func(t *testing.T) {
		e := sampleEvent()
		e.StartTime = "00:00"
		e.EndTime = "00:00"
		e.DurationMinutes = 1440

		got := ToBigCalendarEvent(e, false)
		require.NotNil(t, got)
		assert.True(t, got.AllDay)
	})

	t.Run("should resolve an equal-times event as 24h under the wrap policy", func(t *testing.T) {
		e := sampleEvent()
		e.StartTime = "09:00"
		e.EndTime = "09:00"
		e.DurationMinutes = 1440

		got := ToBigCalendarEvent(e, true)
		require.NotNil(t, got)
		assert.True(t, got.End.After(got.Start))
		assert.Equal(t, time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC), got.End)
		assert.True(t, got.AllDay)
	})

	t.Run("should resolve an equal-times event as zero-length without the wrap policy", func(t *testing.T) {
		e := sampleEvent()
		e.StartTime = "09:00"
		e.EndTime = "09:00"
		e.DurationMinutes = 0

		got := ToBigCalendarEvent(e, false)
		require.NotNil(t, got)
		assert.Equal(t, got.Start, got.End)
		assert.False(t, got.AllDay)
	})

	t.Run("should return nil for nil input", func(t *testing.T) {
		assert.Nil(t, ToBigCalendarEvent(nil, false))
	})

	t.Run("should return nil for an unresolvable record", func(t *testing.T) {
		e := sampleEvent()
		e.StartTime = "9am"
		assert.Nil(t, ToBigCalendarEvent(e, false))
	})
}

func TestBigCalendarRoundTrip(t *testing.T) {
	t.Run("should recover the source record through the resource", func(t *testing.T) {
		original := sampleEvent()
		got := FromBigCalendarEvent(ToBigCalendarEvent(original, false))
		require.NotNil(t, got)
		assert.Equal(t, *original, *got)
	})

	t.Run("should return nil for nil input", func(t *testing.T) {
		assert.Nil(t, FromBigCalendarEvent(nil))
	})
}

func TestToFullCalendarEvent(t *testing.T) {
	t.Run("should render ISO instants, class names and extended props", func(t *testing.T) {
		got := ToFullCalendarEvent(sampleEvent(), false)
		require.NotNil(t, got)

		assert.Equal(t, "2025-03-11T09:00:00Z", got.Start)
		assert.Equal(t, "2025-03-11T10:00:00Z", got.End)
		assert.Equal(t, []string{"event-meeting"}, got.ClassNames)
		assert.Equal(t, "2025-03-11", got.ExtendedProps["day"])
		assert.Equal(t, 60, got.ExtendedProps["duration"])
		assert.Equal(t, 15, got.ExtendedProps["travelTime"])
		assert.Equal(t, 5, got.ExtendedProps["preparationTime"])
	})

	t.Run("should resolve an equal-times event as 24h under the wrap policy", func(t *testing.T) {
		e := sampleEvent()
		e.StartTime = "09:00"
		e.EndTime = "09:00"
		e.DurationMinutes = 1440

		got := ToFullCalendarEvent(e, true)
		require.NotNil(t, got)
		assert.Equal(t, "2025-03-11T09:00:00Z", got.Start)
		assert.Equal(t, "2025-03-12T09:00:00Z", got.End)
	})

	t.Run("should return nil for an unresolvable record", func(t *testing.T) {
		e := sampleEvent()
		e.Day = "someday"
		assert.Nil(t, ToFullCalendarEvent(e, false))
	})
}

func TestBatchConversions(t *testing.T) {
	good1 := *sampleEvent()
	good1.ID = "a"
	bad := *sampleEvent()
	bad.ID = "b"
	bad.StartTime = "bad"
	good2 := *sampleEvent()
	good2.ID = "c"

	events := []entity.Event{good1, bad, good2}

	t.Run("should drop unconvertible records and preserve order", func(t *testing.T) {
		big := ToBigCalendarEvents(events, false)
		require.Len(t, big, 2)
		assert.Equal(t, "a", big[0].ID)
		assert.Equal(t, "c", big[1].ID)

		full := ToFullCalendarEvents(events, false)
		require.Len(t, full, 2)
		assert.Equal(t, "a", full[0].ID)
		assert.Equal(t, "c", full[1].ID)
	})

	t.Run("should return empty slices for empty input", func(t *testing.T) {
		assert.Empty(t, ToBigCalendarEvents(nil, false))
		assert.Empty(t, ToFullCalendarEvents(nil, false))
	})
}
