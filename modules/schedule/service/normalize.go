package service

import (
	"strings"
	"time"

	"planner-api/core/errors"
	"planner-api/core/timeutil"
	"planner-api/modules/schedule/dto"
	"planner-api/modules/schedule/entity"
)

// NormalizedEvent is the result of the normalize-on-write step: the event
// with defaults applied, plus the names of the fields that were defaulted so
// callers can see what the lenient creation policy changed.
type NormalizedEvent struct {
	Event     entity.Event
	Defaulted []string
}

// normalizeNewEvent applies the lenient creation policy. Missing fields are
// filled with safe defaults and reported; fields that are present but
// unparseable are rejected, since defaulting them would silently discard
// caller intent.
func normalizeNewEvent(req *dto.CreateEventRequest, now time.Time, wrapEqual bool) (*NormalizedEvent, *errors.AppError) {
	n := &NormalizedEvent{}
	e := &n.Event

	e.Title = strings.TrimSpace(req.Title)
	if e.Title == "" {
		n.Defaulted = append(n.Defaulted, "title")
	}

	switch {
	case req.Type == "":
		e.Type = entity.EventTypeTask
		n.Defaulted = append(n.Defaulted, "type")
	case !entity.EventType(req.Type).Valid():
		return nil, errors.NewAppError(errors.ErrInvalidInput, "unknown event type: "+req.Type, nil)
	default:
		e.Type = entity.EventType(req.Type)
	}

	if req.Day == "" {
		e.Day = now.Format(timeutil.DayLayout)
		n.Defaulted = append(n.Defaulted, "day")
	} else {
		if _, err := timeutil.ParseDay(req.Day); err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid day", err)
		}
		e.Day = req.Day
	}

	if req.StartTime == "" {
		e.StartTime = "00:00"
		n.Defaulted = append(n.Defaulted, "start_time")
	} else {
		if _, err := timeutil.ParseClock(req.StartTime); err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid start time", err)
		}
		e.StartTime = req.StartTime
	}

	if req.EndTime == "" {
		// A missing end collapses to a zero-length event at the start.
		e.EndTime = e.StartTime
		n.Defaulted = append(n.Defaulted, "end_time")
	} else {
		if _, err := timeutil.ParseClock(req.EndTime); err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid end time", err)
		}
		e.EndTime = req.EndTime
	}

	if req.TravelMinutes < 0 {
		n.Defaulted = append(n.Defaulted, "travel_minutes")
	} else {
		e.TravelMinutes = req.TravelMinutes
	}
	if req.PrepMinutes < 0 {
		n.Defaulted = append(n.Defaulted, "prep_minutes")
	} else {
		e.PrepMinutes = req.PrepMinutes
	}

	dur, err := timeutil.DurationMinutes(e.StartTime, e.EndTime, wrapEqual)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid time range", err)
	}
	// A defaulted end_time stays zero-length regardless of the wrap
	// policies; the caller never asked for a 24h event.
	if req.EndTime == "" {
		dur = 0
	}
	e.DurationMinutes = dur

	return n, nil
}
