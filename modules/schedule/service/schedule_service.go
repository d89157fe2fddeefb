package service

import (
	"context"
	"fmt"
	"time"

	"planner-api/core/config"
	"planner-api/core/constants"
	"planner-api/core/errors"
	"planner-api/core/logger"
	"planner-api/core/timeutil"
	"planner-api/core/utils"
	"planner-api/modules/schedule/dto"
	"planner-api/modules/schedule/entity"
	"planner-api/modules/schedule/repository"
)

// ReminderScheduler is notified when an event is created or its time
// changes, so a reminder can be (re)scheduled. Implemented by the
// notification module; a nil scheduler disables reminders.
type ReminderScheduler interface {
	EventUpserted(ctx context.Context, event *entity.Event)
}

// ScheduleService handles event business logic
type ScheduleService struct {
	repo       repository.EventRepository
	idGen      *utils.EventIDGenerator
	slotFinder *SlotFinder
	reminders  ReminderScheduler
	wrapEqual  bool
	now        func() time.Time
}

// ScheduleServiceInterface defines the service contract
type ScheduleServiceInterface interface {
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.CreateEventResponse, *errors.AppError)
	GetEventByID(ctx context.Context, id string) (*dto.EventResponse, *errors.AppError)
	GetEventsForDay(ctx context.Context, day string) ([]dto.EventResponse, *errors.AppError)
	GetEventsForRange(ctx context.Context, from, to string) ([]dto.EventResponse, *errors.AppError)
	UpdateEvent(ctx context.Context, id string, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError)
	DeleteEvent(ctx context.Context, id string) *errors.AppError
	MoveEvent(ctx context.Context, id string, req *dto.MoveEventRequest) (*dto.EventResponse, *errors.AppError)
	FindConflicts(ctx context.Context, day, start, end, excludeID string) (*dto.ConflictCheckResponse, *errors.AppError)
	FindAvailableSlots(ctx context.Context, day string, minDurationMinutes int) ([]dto.SlotResponse, *errors.AppError)
}

// NewScheduleService creates the schedule service from config. reminders may
// be nil.
func NewScheduleService(repo repository.EventRepository, idGen *utils.EventIDGenerator, cfg config.ScheduleConfig, reminders ReminderScheduler) ScheduleServiceInterface {
	windowStart, windowEnd := dayWindow(cfg)
	return &ScheduleService{
		repo:       repo,
		idGen:      idGen,
		slotFinder: NewSlotFinder(windowStart, windowEnd, cfg.WrapEqualTimes),
		reminders:  reminders,
		wrapEqual:  cfg.WrapEqualTimes,
		now:        time.Now,
	}
}

// dayWindow resolves the configured day window to minutes from midnight.
// An end of "00:00" means end of day. Unparseable values fall back to the
// full day.
func dayWindow(cfg config.ScheduleConfig) (int, int) {
	start := constants.DefaultDayWindowStart
	end := constants.DefaultDayWindowEnd

	if m, err := timeutil.ParseClock(cfg.WindowStart); err == nil {
		start = m
	}
	if m, err := timeutil.ParseClock(cfg.WindowEnd); err == nil && m != 0 {
		end = m
	}
	if end < start {
		return constants.DefaultDayWindowStart, constants.DefaultDayWindowEnd
	}
	return start, end
}

// CreateEvent normalizes the request, assigns an id and stores the event.
func (s *ScheduleService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.CreateEventResponse, *errors.AppError) {
	normalized, appErr := normalizeNewEvent(req, s.now(), s.wrapEqual)
	if appErr != nil {
		return nil, appErr
	}

	event := normalized.Event
	event.ID = s.idGen.Next()
	now := s.now()
	event.CreatedAt = now
	event.UpdatedAt = now
	event.Timestamp = now.UnixMilli()

	if err := s.repo.Create(ctx, &event); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create event", err)
	}

	logger.Info("ScheduleService:CreateEvent", "event_id", event.ID, "day", event.Day, "defaulted", normalized.Defaulted)
	s.notifyUpserted(ctx, &event)

	return &dto.CreateEventResponse{
		Event:           *dto.ToEventResponse(&event),
		DefaultedFields: normalized.Defaulted,
	}, nil
}

// GetEventByID retrieves an event by ID
func (s *ScheduleService) GetEventByID(ctx context.Context, id string) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	return dto.ToEventResponse(event), nil
}

// GetEventsForDay returns the day's events ordered by start time.
func (s *ScheduleService) GetEventsForDay(ctx context.Context, day string) ([]dto.EventResponse, *errors.AppError) {
	if _, err := timeutil.ParseDay(day); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid day", err)
	}

	events, err := s.repo.GetForDay(ctx, day)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get events", err)
	}
	return dto.ToEventResponses(events), nil
}

// GetEventsForRange returns events in the inclusive [from, to] day range.
// Reversed bounds are an empty range.
func (s *ScheduleService) GetEventsForRange(ctx context.Context, from, to string) ([]dto.EventResponse, *errors.AppError) {
	if _, err := timeutil.ParseDay(from); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid range start", err)
	}
	if _, err := timeutil.ParseDay(to); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid range end", err)
	}

	events, err := s.repo.GetForRange(ctx, from, to)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get events", err)
	}
	return dto.ToEventResponses(events), nil
}

// UpdateEvent applies the non-nil request fields, recomputes the duration
// when times changed and re-stamps updated_at.
func (s *ScheduleService) UpdateEvent(ctx context.Context, id string, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	timesChanged := false

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Type != nil {
		if !entity.EventType(*req.Type).Valid() {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "unknown event type: "+*req.Type, nil)
		}
		event.Type = entity.EventType(*req.Type)
	}
	if req.Day != nil {
		if _, dayErr := timeutil.ParseDay(*req.Day); dayErr != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid day", dayErr)
		}
		event.Day = *req.Day
		timesChanged = true
	}
	if req.StartTime != nil {
		if _, clockErr := timeutil.ParseClock(*req.StartTime); clockErr != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid start time", clockErr)
		}
		event.StartTime = *req.StartTime
		timesChanged = true
	}
	if req.EndTime != nil {
		if _, clockErr := timeutil.ParseClock(*req.EndTime); clockErr != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid end time", clockErr)
		}
		event.EndTime = *req.EndTime
		timesChanged = true
	}
	if req.TravelMinutes != nil && *req.TravelMinutes >= 0 {
		event.TravelMinutes = *req.TravelMinutes
	}
	if req.PrepMinutes != nil && *req.PrepMinutes >= 0 {
		event.PrepMinutes = *req.PrepMinutes
	}

	if timesChanged {
		dur, durErr := timeutil.DurationMinutes(event.StartTime, event.EndTime, s.wrapEqual)
		if durErr != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid time range", durErr)
		}
		event.DurationMinutes = dur
	}

	event.UpdatedAt = s.now()
	event.Timestamp = event.UpdatedAt.UnixMilli()

	ok, err := s.repo.Update(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update event", err)
	}
	if !ok {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	if timesChanged {
		s.notifyUpserted(ctx, event)
	}
	return dto.ToEventResponse(event), nil
}

// DeleteEvent deletes an event
func (s *ScheduleService) DeleteEvent(ctx context.Context, id string) *errors.AppError {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete event", err)
	}
	if !ok {
		return errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	return nil
}

// MoveEvent relocates an event to a new day and start, preserving its
// duration by recomputing the end time. When CheckConflicts is set and the
// target range overlaps other events, the move is rejected.
func (s *ScheduleService) MoveEvent(ctx context.Context, id string, req *dto.MoveEventRequest) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	if _, dayErr := timeutil.ParseDay(req.Day); dayErr != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid day", dayErr)
	}
	startMin, clockErr := timeutil.ParseClock(req.StartTime)
	if clockErr != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid start time", clockErr)
	}

	// A full-day event's end wraps back onto its start. Under the default
	// equal-times policy that pair reads as zero-length, so only a midnight
	// start keeps the "00:00"-anchored end representable.
	if event.DurationMinutes >= timeutil.MinutesPerDay && !s.wrapEqual && startMin != 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "a full-day event can only be moved to a midnight start", nil)
	}

	newEnd := timeutil.FormatClock(startMin + event.DurationMinutes)

	if req.CheckConflicts {
		conflicts, appErr := s.findConflicts(ctx, req.Day, req.StartTime, newEnd, id)
		if appErr != nil {
			return nil, appErr
		}
		if len(conflicts) > 0 {
			return nil, errors.NewAppError(errors.ErrConflict,
				fmt.Sprintf("move conflicts with %d event(s), first: %q", len(conflicts), conflicts[0].Title), nil)
		}
	}

	event.Day = req.Day
	event.StartTime = req.StartTime
	event.EndTime = newEnd
	event.UpdatedAt = s.now()
	event.Timestamp = event.UpdatedAt.UnixMilli()

	ok, err := s.repo.Update(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to move event", err)
	}
	if !ok {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	logger.Info("ScheduleService:MoveEvent", "event_id", id, "day", req.Day, "start", req.StartTime)
	s.notifyUpserted(ctx, event)
	return dto.ToEventResponse(event), nil
}

// FindConflicts returns the full records of events overlapping the range.
func (s *ScheduleService) FindConflicts(ctx context.Context, day, start, end, excludeID string) (*dto.ConflictCheckResponse, *errors.AppError) {
	conflicts, appErr := s.findConflicts(ctx, day, start, end, excludeID)
	if appErr != nil {
		return nil, appErr
	}
	return &dto.ConflictCheckResponse{
		HasConflict: len(conflicts) > 0,
		Conflicts:   dto.ToEventResponses(conflicts),
	}, nil
}

// FindAvailableSlots returns the free gaps in a day's schedule.
func (s *ScheduleService) FindAvailableSlots(ctx context.Context, day string, minDurationMinutes int) ([]dto.SlotResponse, *errors.AppError) {
	if _, err := timeutil.ParseDay(day); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid day", err)
	}
	if minDurationMinutes < 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "minimum duration must not be negative", nil)
	}

	events, err := s.repo.GetForDay(ctx, day)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get events", err)
	}

	slots := s.slotFinder.FindAvailableSlots(events, minDurationMinutes)
	return dto.ToSlotResponses(slots), nil
}

func (s *ScheduleService) notifyUpserted(ctx context.Context, event *entity.Event) {
	if s.reminders == nil {
		return
	}
	s.reminders.EventUpserted(ctx, event)
}
