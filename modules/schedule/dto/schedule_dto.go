package dto

import (
	"time"

	"planner-api/modules/schedule/entity"
)

// ===================== Request DTOs =====================

// CreateEventRequest creates a new event. Creation is lenient: missing
// fields are filled with defaults and reported back in the response.
type CreateEventRequest struct {
	Title         string `json:"title"`
	Type          string `json:"type"`
	Day           string `json:"day"`        // YYYY-MM-DD
	StartTime     string `json:"start_time"` // HH:MM
	EndTime       string `json:"end_time"`   // HH:MM
	TravelMinutes int    `json:"travel_minutes"`
	PrepMinutes   int    `json:"prep_minutes"`
}

// UpdateEventRequest updates event details. Nil/empty fields are unchanged.
type UpdateEventRequest struct {
	Title         *string `json:"title"`
	Type          *string `json:"type"`
	Day           *string `json:"day"`
	StartTime     *string `json:"start_time"`
	EndTime       *string `json:"end_time"`
	TravelMinutes *int    `json:"travel_minutes"`
	PrepMinutes   *int    `json:"prep_minutes"`
}

// MoveEventRequest moves an event to a new day/start, preserving duration.
type MoveEventRequest struct {
	Day       string `json:"day" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	// CheckConflicts blocks the move when the target range overlaps other
	// events. Conflict avoidance is caller policy, not a store invariant.
	CheckConflicts bool `json:"check_conflicts"`
}

// ===================== Response DTOs =====================

// EventResponse for event details
type EventResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Type            string    `json:"type"`
	Day             string    `json:"day"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	TravelMinutes   int       `json:"travel_minutes"`
	PrepMinutes     int       `json:"prep_minutes"`
	Timestamp       int64     `json:"timestamp"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateEventResponse reports the created event plus which fields were
// filled with defaults by the normalize step.
type CreateEventResponse struct {
	Event           EventResponse `json:"event"`
	DefaultedFields []string      `json:"defaulted_fields,omitempty"`
}

// SlotResponse is a free interval within a day.
type SlotResponse struct {
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
}

// ConflictCheckResponse lists events overlapping a candidate range.
type ConflictCheckResponse struct {
	HasConflict bool            `json:"has_conflict"`
	Conflicts   []EventResponse `json:"conflicts"`
}

// ===================== Mapper Functions =====================

// ToEventResponse maps entity to DTO
func ToEventResponse(e *entity.Event) *EventResponse {
	return &EventResponse{
		ID:              e.ID,
		Title:           e.Title,
		Type:            string(e.Type),
		Day:             e.Day,
		StartTime:       e.StartTime,
		EndTime:         e.EndTime,
		DurationMinutes: e.DurationMinutes,
		TravelMinutes:   e.TravelMinutes,
		PrepMinutes:     e.PrepMinutes,
		Timestamp:       e.Timestamp,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// ToEventResponses maps a slice of entities.
func ToEventResponses(events []entity.Event) []EventResponse {
	result := make([]EventResponse, 0, len(events))
	for i := range events {
		result = append(result, *ToEventResponse(&events[i]))
	}
	return result
}

// ToSlotResponse maps a slot entity.
func ToSlotResponse(s entity.Slot) SlotResponse {
	return SlotResponse{
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		DurationMinutes: s.DurationMinutes,
	}
}

// ToSlotResponses maps a slice of slots.
func ToSlotResponses(slots []entity.Slot) []SlotResponse {
	result := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, ToSlotResponse(s))
	}
	return result
}
