package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"planner-api/core/constants"
	"planner-api/core/logger"
	"planner-api/core/timeutil"
	scheduleEntity "planner-api/modules/schedule/entity"
	scheduleRepo "planner-api/modules/schedule/repository"

	"github.com/hibiken/asynq"
)

// EventReminderPayload is the asynq task payload for event reminders.
// RemindAtUnix lets the worker detect tasks superseded by a later move.
type EventReminderPayload struct {
	EventID      string `json:"event_id"`
	RemindAtUnix int64  `json:"remind_at_unix"`
}

// remindAt computes when an event's reminder fires: start minus travel and
// preparation lead time. Returns false when the event's day/times are
// unusable.
func remindAt(e *scheduleEntity.Event) (time.Time, bool) {
	start, err := timeutil.Instant(e.Day, e.StartTime)
	if err != nil {
		return time.Time{}, false
	}
	lead := time.Duration(e.TravelMinutes+e.PrepMinutes) * time.Minute
	return start.Add(-lead), true
}

// ReminderEnqueuer schedules reminder tasks on event create/update/move.
// It implements the schedule service's ReminderScheduler contract.
type ReminderEnqueuer struct {
	client *asynq.Client
	now    func() time.Time
}

func NewReminderEnqueuer(client *asynq.Client) *ReminderEnqueuer {
	return &ReminderEnqueuer{client: client, now: time.Now}
}

// EventUpserted enqueues a reminder at the event's lead time. Past lead
// times are skipped. Failures are logged, never propagated: reminders must
// not fail event writes.
func (r *ReminderEnqueuer) EventUpserted(_ context.Context, event *scheduleEntity.Event) {
	at, ok := remindAt(event)
	if !ok {
		logger.Warn("ReminderEnqueuer:EventUpserted:UnusableTimes", "event_id", event.ID)
		return
	}
	if !at.After(r.now()) {
		return
	}

	payload, err := json.Marshal(EventReminderPayload{EventID: event.ID, RemindAtUnix: at.Unix()})
	if err != nil {
		logger.Error("ReminderEnqueuer:EventUpserted:Marshal", err)
		return
	}

	task := asynq.NewTask(constants.TaskTypeEventReminder, payload)
	if _, err := r.client.Enqueue(task, asynq.ProcessAt(at)); err != nil {
		logger.Error("ReminderEnqueuer:EventUpserted:Enqueue", "error", err, "event_id", event.ID)
		return
	}
	logger.Info("ReminderEnqueuer:EventUpserted", "event_id", event.ID, "remind_at", at)
}

// ReminderWorker handles reminder tasks when they fire.
type ReminderWorker struct {
	events        scheduleRepo.EventRepository
	notifications NotificationServiceInterface
}

func NewReminderWorker(events scheduleRepo.EventRepository, notifications NotificationServiceInterface) *ReminderWorker {
	return &ReminderWorker{events: events, notifications: notifications}
}

// HandleEventReminder re-checks the event before delivering: a deleted event
// means nothing to do, and a moved event leaves the old task stale (its
// remind time no longer matches), so it is dropped silently. The enqueue on
// move created the replacement.
func (w *ReminderWorker) HandleEventReminder(ctx context.Context, t *asynq.Task) error {
	var payload EventReminderPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal reminder payload: %w", err)
	}

	event, err := w.events.GetByID(ctx, payload.EventID)
	if err != nil {
		return fmt.Errorf("load event %s: %w", payload.EventID, err)
	}
	if event == nil {
		logger.Info("ReminderWorker:HandleEventReminder:EventGone", "event_id", payload.EventID)
		return nil
	}

	current, ok := remindAt(event)
	if !ok || current.Unix() != payload.RemindAtUnix {
		logger.Info("ReminderWorker:HandleEventReminder:Superseded", "event_id", payload.EventID)
		return nil
	}

	title := event.Title
	if title == "" {
		title = "Upcoming event"
	}
	message := fmt.Sprintf("%s starts at %s on %s", title, event.StartTime, event.Day)

	if appErr := w.notifications.Deliver(ctx, event.ID, title, message); appErr != nil {
		return appErr
	}
	return nil
}
