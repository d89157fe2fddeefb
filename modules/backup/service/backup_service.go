package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"planner-api/core/errors"
	"planner-api/core/logger"
	"planner-api/core/timeutil"
	"planner-api/core/utils"
	"planner-api/modules/schedule/entity"
	"planner-api/modules/schedule/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// EventRecord is the backup wire format: one event as stored, plus the
// legacy millisecond timestamp mirror of updatedAt.
type EventRecord struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Type            string    `json:"type"`
	Day             string    `json:"day"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	Duration        int       `json:"duration"`
	TravelTime      int       `json:"travelTime"`
	PreparationTime int       `json:"preparationTime"`
	Timestamp       int64     `json:"timestamp"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ExportResult is the outcome of an export.
type ExportResult struct {
	SnapshotID string        `json:"snapshot_id"`
	Events     []EventRecord `json:"events"`
	ObjectKey  string        `json:"object_key,omitempty"`
}

// ImportResult reports per-item outcomes of a lenient import.
type ImportResult struct {
	Imported int      `json:"imported"`
	Updated  int      `json:"updated"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// BackupServiceInterface defines the service contract
type BackupServiceInterface interface {
	Export(ctx context.Context, pushToStorage bool) (*ExportResult, *errors.AppError)
	Import(ctx context.Context, payload []byte) (*ImportResult, *errors.AppError)
	ListSnapshots(ctx context.Context) ([]SnapshotInfo, *errors.AppError)
}

// BackupService serializes the full event set to the backup JSON format and
// back. uploader may be nil when object storage is disabled.
type BackupService struct {
	repo     repository.EventRepository
	idGen    *utils.EventIDGenerator
	uploader Uploader
	now      func() time.Time
}

func NewBackupService(repo repository.EventRepository, idGen *utils.EventIDGenerator, uploader Uploader) *BackupService {
	return &BackupService{
		repo:     repo,
		idGen:    idGen,
		uploader: uploader,
		now:      time.Now,
	}
}

const snapshotPrefix = "backups/"

// Export serializes every stored event. With pushToStorage set and an
// uploader configured, the document is also written to object storage.
func (s *BackupService) Export(ctx context.Context, pushToStorage bool) (*ExportResult, *errors.AppError) {
	events, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load events for export", err)
	}

	records := make([]EventRecord, 0, len(events))
	for i := range events {
		records = append(records, toRecord(&events[i]))
	}

	result := &ExportResult{
		SnapshotID: uuid.New().String(),
		Events:     records,
	}

	if pushToStorage && s.uploader != nil {
		payload, marshalErr := json.Marshal(records)
		if marshalErr != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to serialize export", marshalErr)
		}

		key := fmt.Sprintf("%s%s/%s-%s.json",
			snapshotPrefix,
			s.now().Format(timeutil.DayLayout),
			slug.Make("planner events"),
			result.SnapshotID,
		)
		if upErr := s.uploader.Upload(ctx, key, payload); upErr != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to upload snapshot", upErr)
		}
		result.ObjectKey = key
	}

	logger.Info("BackupService:Export", "events", len(records), "snapshot_id", result.SnapshotID, "pushed", result.ObjectKey != "")
	return result, nil
}

// Import restores events from a backup document. Each record is handled in
// isolation: records whose day or times cannot be made usable are skipped
// with a reported reason, everything else is upserted by id.
func (s *BackupService) Import(ctx context.Context, payload []byte) (*ImportResult, *errors.AppError) {
	var records []EventRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Backup document must be a JSON array of events", err)
	}

	result := &ImportResult{}
	for i := range records {
		event, reason := s.restore(&records[i])
		if event == nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("record %d: %s", i, reason))
			continue
		}

		existing, err := s.repo.GetByID(ctx, event.ID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check existing event", err)
		}

		if existing != nil {
			if _, err := s.repo.Update(ctx, event); err != nil {
				return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update imported event", err)
			}
			result.Updated++
		} else {
			if err := s.repo.Create(ctx, event); err != nil {
				return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create imported event", err)
			}
			result.Imported++
		}
	}

	logger.Info("BackupService:Import", "imported", result.Imported, "updated", result.Updated, "skipped", result.Skipped)
	return result, nil
}

// ListSnapshots lists stored backup objects, newest storage listing order.
func (s *BackupService) ListSnapshots(ctx context.Context) ([]SnapshotInfo, *errors.AppError) {
	if s.uploader == nil {
		return []SnapshotInfo{}, nil
	}
	snapshots, err := s.uploader.List(ctx, snapshotPrefix)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list snapshots", err)
	}
	return snapshots, nil
}

func toRecord(e *entity.Event) EventRecord {
	ts := e.Timestamp
	if ts == 0 {
		ts = e.UpdatedAt.UnixMilli()
	}
	return EventRecord{
		ID:              e.ID,
		Title:           e.Title,
		Type:            string(e.Type),
		Day:             e.Day,
		StartTime:       e.StartTime,
		EndTime:         e.EndTime,
		Duration:        e.DurationMinutes,
		TravelTime:      e.TravelMinutes,
		PreparationTime: e.PrepMinutes,
		Timestamp:       ts,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// restore converts a backup record back to an event, applying the lenient
// policy: defaults for missing id/type/metadata, skip when day or times are
// unusable.
func (s *BackupService) restore(r *EventRecord) (*entity.Event, string) {
	if _, err := timeutil.ParseDay(r.Day); err != nil {
		return nil, "unusable day"
	}
	if _, err := timeutil.ParseClock(r.StartTime); err != nil {
		return nil, "unusable start time"
	}
	if _, err := timeutil.ParseClock(r.EndTime); err != nil {
		return nil, "unusable end time"
	}

	eventType := entity.EventType(r.Type)
	if !eventType.Valid() {
		eventType = entity.EventTypeTask
	}

	id := r.ID
	if id == "" {
		id = s.idGen.Next()
	}

	dur, err := timeutil.DurationMinutes(r.StartTime, r.EndTime, false)
	if err != nil {
		return nil, "unusable time range"
	}

	now := s.now()
	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := r.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = now
	}
	ts := r.Timestamp
	if ts == 0 {
		ts = updatedAt.UnixMilli()
	}

	travel := r.TravelTime
	if travel < 0 {
		travel = 0
	}
	prep := r.PreparationTime
	if prep < 0 {
		prep = 0
	}

	return &entity.Event{
		ID:              id,
		Title:           r.Title,
		Type:            eventType,
		Day:             r.Day,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		DurationMinutes: dur,
		TravelMinutes:   travel,
		PrepMinutes:     prep,
		Timestamp:       ts,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}, ""
}
