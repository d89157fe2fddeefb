package service

import (
	"context"
	"time"

	"planner-api/core/errors"
	"planner-api/core/logger"
	"planner-api/core/timeutil"
	"planner-api/modules/schedule/entity"
)

// findConflicts returns every stored event whose resolved time range shares
// an instant with [day start, end). Half-open semantics: a range ending
// exactly when another starts does not conflict. The event with excludeID is
// skipped so an event can be checked against its own move/update target.
//
// Events from the previous and next calendar day are considered too, since
// midnight-spanning events on either side can reach into the target range.
func (s *ScheduleService) findConflicts(ctx context.Context, day, start, end, excludeID string) ([]entity.Event, *errors.AppError) {
	targetStart, targetEnd, err := timeutil.Span(day, start, end, s.wrapEqual)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid conflict range", err)
	}

	d, _ := timeutil.ParseDay(day)
	from := d.AddDate(0, 0, -1).Format(timeutil.DayLayout)
	to := d.AddDate(0, 0, 1).Format(timeutil.DayLayout)

	candidates, repoErr := s.repo.GetForRange(ctx, from, to)
	if repoErr != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load events for conflict check", repoErr)
	}

	conflicts := []entity.Event{}
	for _, e := range candidates {
		if e.ID == excludeID {
			continue
		}

		eStart, eEnd, spanErr := timeutil.Span(e.Day, e.StartTime, e.EndTime, s.wrapEqual)
		if spanErr != nil {
			// A stored record with unusable times must not abort the scan.
			logger.Warn("ScheduleService:FindConflicts:SkipBadRecord", "event_id", e.ID, "error", spanErr)
			continue
		}

		if overlaps(targetStart, targetEnd, eStart, eEnd) {
			conflicts = append(conflicts, e)
		}
	}

	return conflicts, nil
}

// overlaps reports whether two half-open instant ranges share any instant.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
