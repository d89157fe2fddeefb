package mapper

import (
	"time"

	"planner-api/core/timeutil"
	"planner-api/modules/schedule/entity"
)

// Calendar widget mappings. Each target widget gets its own fixed output
// shape and its own named function; conversions are pure and never fail
// loudly. A nil result marks a record the widget cannot render, so batch
// conversions can drop it and keep going. wrapEqual carries the configured
// equal-times policy so widget spans resolve the same way the service does.

// BigCalendarEvent is the shape consumed by big-calendar style widgets:
// combined date-time instants plus a resource back-reference to the source
// record for round-tripping edits.
type BigCalendarEvent struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Start    time.Time    `json:"start"`
	End      time.Time    `json:"end"`
	AllDay   bool         `json:"allDay"`
	Resource entity.Event `json:"resource"`
}

// FullCalendarEvent is the shape consumed by full-calendar style widgets:
// ISO date-time strings, CSS class names derived from the event type and
// the remaining record fields under extendedProps.
type FullCalendarEvent struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Start         string         `json:"start"`
	End           string         `json:"end"`
	ClassNames    []string       `json:"classNames"`
	ExtendedProps map[string]any `json:"extendedProps"`
}

// ToBigCalendarEvent converts one event. Returns nil for a nil input or an
// event whose day/times cannot be resolved.
func ToBigCalendarEvent(e *entity.Event, wrapEqual bool) *BigCalendarEvent {
	if e == nil {
		return nil
	}
	start, end, err := timeutil.Span(e.Day, e.StartTime, e.EndTime, wrapEqual)
	if err != nil {
		return nil
	}

	return &BigCalendarEvent{
		ID:       e.ID,
		Title:    e.Title,
		Start:    start,
		End:      end,
		AllDay:   e.DurationMinutes >= timeutil.MinutesPerDay,
		Resource: *e,
	}
}

// ToBigCalendarEvents converts a batch, dropping records that fail
// individual conversion and preserving the order of the survivors.
func ToBigCalendarEvents(events []entity.Event, wrapEqual bool) []BigCalendarEvent {
	result := make([]BigCalendarEvent, 0, len(events))
	for i := range events {
		if converted := ToBigCalendarEvent(&events[i], wrapEqual); converted != nil {
			result = append(result, *converted)
		}
	}
	return result
}

// FromBigCalendarEvent recovers the source record from a widget event. The
// resource back-reference carries the original, so id, title, day and times
// survive the round trip.
func FromBigCalendarEvent(w *BigCalendarEvent) *entity.Event {
	if w == nil {
		return nil
	}
	e := w.Resource
	return &e
}

// ToFullCalendarEvent converts one event. Returns nil for a nil input or an
// event whose day/times cannot be resolved.
func ToFullCalendarEvent(e *entity.Event, wrapEqual bool) *FullCalendarEvent {
	if e == nil {
		return nil
	}
	start, end, err := timeutil.Span(e.Day, e.StartTime, e.EndTime, wrapEqual)
	if err != nil {
		return nil
	}

	return &FullCalendarEvent{
		ID:         e.ID,
		Title:      e.Title,
		Start:      start.Format(time.RFC3339),
		End:        end.Format(time.RFC3339),
		ClassNames: []string{"event-" + string(e.Type)},
		ExtendedProps: map[string]any{
			"day":             e.Day,
			"startTime":       e.StartTime,
			"endTime":         e.EndTime,
			"duration":        e.DurationMinutes,
			"travelTime":      e.TravelMinutes,
			"preparationTime": e.PrepMinutes,
			"timestamp":       e.Timestamp,
			"type":            string(e.Type),
		},
	}
}

// ToFullCalendarEvents converts a batch, dropping records that fail
// individual conversion and preserving the order of the survivors.
func ToFullCalendarEvents(events []entity.Event, wrapEqual bool) []FullCalendarEvent {
	result := make([]FullCalendarEvent, 0, len(events))
	for i := range events {
		if converted := ToFullCalendarEvent(&events[i], wrapEqual); converted != nil {
			result = append(result, *converted)
		}
	}
	return result
}
