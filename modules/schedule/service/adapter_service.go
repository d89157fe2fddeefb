package service

import (
	"context"

	"planner-api/core/errors"
	"planner-api/core/timeutil"
	"planner-api/modules/schedule/entity"
	"planner-api/modules/schedule/mapper"
	"planner-api/modules/schedule/repository"
)

// AdapterServiceInterface serves events in calendar-widget shapes.
type AdapterServiceInterface interface {
	BigCalendarRange(ctx context.Context, from, to string) ([]mapper.BigCalendarEvent, *errors.AppError)
	FullCalendarRange(ctx context.Context, from, to string) ([]mapper.FullCalendarEvent, *errors.AppError)
}

// AdapterService loads a day range and runs the batch widget conversions.
// Records that fail individual conversion are dropped, not propagated, so a
// single bad record never empties a calendar view. The configured equal-times
// wrap policy is threaded into the mappers so widget spans match the
// service's resolution.
type AdapterService struct {
	repo      repository.EventRepository
	wrapEqual bool
}

func NewAdapterService(repo repository.EventRepository, wrapEqual bool) AdapterServiceInterface {
	return &AdapterService{repo: repo, wrapEqual: wrapEqual}
}

func (s *AdapterService) BigCalendarRange(ctx context.Context, from, to string) ([]mapper.BigCalendarEvent, *errors.AppError) {
	events, appErr := s.loadRange(ctx, from, to)
	if appErr != nil {
		return nil, appErr
	}
	return mapper.ToBigCalendarEvents(events, s.wrapEqual), nil
}

func (s *AdapterService) FullCalendarRange(ctx context.Context, from, to string) ([]mapper.FullCalendarEvent, *errors.AppError) {
	events, appErr := s.loadRange(ctx, from, to)
	if appErr != nil {
		return nil, appErr
	}
	return mapper.ToFullCalendarEvents(events, s.wrapEqual), nil
}

func (s *AdapterService) loadRange(ctx context.Context, from, to string) ([]entity.Event, *errors.AppError) {
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
	return events, nil
}
