package entity

import "time"

// EventType classifies an event in the planner.
type EventType string

const (
	EventTypeTask    EventType = "task"
	EventTypeMeeting EventType = "meeting"
	EventTypeRoutine EventType = "routine"
	EventTypeHabit   EventType = "habit"
)

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeTask, EventTypeMeeting, EventTypeRoutine, EventTypeHabit:
		return true
	}
	return false
}

// Event is a scheduled item on a single calendar day. StartTime and EndTime
// are HH:MM clock strings; an EndTime numerically at or before StartTime
// means the event runs past midnight into the following day.
type Event struct {
	ID              string    `db:"id" json:"id"`
	Title           string    `db:"title" json:"title"`
	Type            EventType `db:"type" json:"type"`
	Day             string    `db:"day" json:"day"` // YYYY-MM-DD
	StartTime       string    `db:"start_time" json:"startTime"`
	EndTime         string    `db:"end_time" json:"endTime"`
	DurationMinutes int       `db:"duration_minutes" json:"duration"`
	TravelMinutes   int       `db:"travel_minutes" json:"travelTime"`
	PrepMinutes     int       `db:"prep_minutes" json:"preparationTime"`
	// Timestamp is the millisecond mirror of UpdatedAt, re-stamped on every
	// mutation.
	Timestamp int64     `db:"timestamp" json:"timestamp"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Slot is a maximal free interval within a day's schedule.
type Slot struct {
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"duration"`
}
