package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"planner-api/core/errors"
	"planner-api/core/utils"
	"planner-api/modules/schedule/entity"
	"planner-api/modules/schedule/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	uploads map[string][]byte
	listed  []SnapshotInfo
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{uploads: make(map[string][]byte)}
}

func (f *fakeUploader) Upload(_ context.Context, key string, body []byte) error {
	f.uploads[key] = body
	return nil
}

func (f *fakeUploader) List(_ context.Context, _ string) ([]SnapshotInfo, error) {
	return f.listed, nil
}

func backupEvent(id, day, start, end string) *entity.Event {
	return &entity.Event{
		ID:              id,
		Title:           "Event " + id,
		Type:            entity.EventTypeTask,
		Day:             day,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: 60,
		Timestamp:       time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC).UnixMilli(),
		CreatedAt:       time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC),
	}
}

func newBackupService(t *testing.T, uploader Uploader, events ...*entity.Event) (*BackupService, *repository.MemoryEventRepository) {
	t.Helper()
	repo := repository.NewMemoryEventRepository()
	for _, e := range events {
		require.NoError(t, repo.Create(context.Background(), e))
	}
	return NewBackupService(repo, utils.NewEventIDGenerator(), uploader), repo
}

func TestBackupService_Export(t *testing.T) {
	ctx := context.Background()

	t.Run("should serialize every stored event", func(t *testing.T) {
		svc, _ := newBackupService(t, nil,
			backupEvent("a", "2025-03-11", "09:00", "10:00"),
			backupEvent("b", "2025-03-12", "11:00", "12:00"),
		)

		result, appErr := svc.Export(ctx, false)
		require.Nil(t, appErr)

		require.Len(t, result.Events, 2)
		assert.NotEmpty(t, result.SnapshotID)
		assert.Empty(t, result.ObjectKey)

		first := result.Events[0]
		assert.Equal(t, "a", first.ID)
		assert.Equal(t, "09:00", first.StartTime)
		assert.Equal(t, first.UpdatedAt.UnixMilli(), first.Timestamp)
	})

	t.Run("should push a snapshot to object storage when asked", func(t *testing.T) {
		uploader := newFakeUploader()
		svc, _ := newBackupService(t, uploader, backupEvent("a", "2025-03-11", "09:00", "10:00"))

		result, appErr := svc.Export(ctx, true)
		require.Nil(t, appErr)

		require.NotEmpty(t, result.ObjectKey)
		assert.True(t, strings.HasPrefix(result.ObjectKey, "backups/"))
		assert.True(t, strings.HasSuffix(result.ObjectKey, ".json"))
		assert.Contains(t, result.ObjectKey, result.SnapshotID)

		stored, ok := uploader.uploads[result.ObjectKey]
		require.True(t, ok)
		var records []EventRecord
		require.NoError(t, json.Unmarshal(stored, &records))
		assert.Len(t, records, 1)
	})

	t.Run("should skip the push when no uploader is configured", func(t *testing.T) {
		svc, _ := newBackupService(t, nil, backupEvent("a", "2025-03-11", "09:00", "10:00"))

		result, appErr := svc.Export(ctx, true)
		require.Nil(t, appErr)
		assert.Empty(t, result.ObjectKey)
	})
}

func TestBackupService_Import(t *testing.T) {
	ctx := context.Background()

	t.Run("should round-trip an export", func(t *testing.T) {
		source, _ := newBackupService(t, nil,
			backupEvent("a", "2025-03-11", "09:00", "10:00"),
			backupEvent("b", "2025-03-12", "11:00", "12:00"),
		)
		exported, appErr := source.Export(ctx, false)
		require.Nil(t, appErr)

		payload, err := json.Marshal(exported.Events)
		require.NoError(t, err)

		target, repo := newBackupService(t, nil)
		result, appErr := target.Import(ctx, payload)
		require.Nil(t, appErr)

		assert.Equal(t, 2, result.Imported)
		assert.Equal(t, 0, result.Skipped)

		restored, getErr := repo.GetByID(ctx, "a")
		require.NoError(t, getErr)
		require.NotNil(t, restored)
		assert.Equal(t, "Event a", restored.Title)
		assert.Equal(t, 60, restored.DurationMinutes)
		assert.Equal(t, restored.UpdatedAt.UnixMilli(), restored.Timestamp)
	})

	t.Run("should update existing events by id", func(t *testing.T) {
		svc, repo := newBackupService(t, nil, backupEvent("a", "2025-03-11", "09:00", "10:00"))

		payload := []byte(`[{"id":"a","title":"Renamed","type":"task","day":"2025-03-11","startTime":"09:00","endTime":"10:00"}]`)
		result, appErr := svc.Import(ctx, payload)
		require.Nil(t, appErr)

		assert.Equal(t, 1, result.Updated)
		assert.Equal(t, 0, result.Imported)

		got, err := repo.GetByID(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Title)
	})

	t.Run("should skip unusable records and keep going", func(t *testing.T) {
		svc, repo := newBackupService(t, nil)

		payload := []byte(`[
			{"id":"bad","title":"No day","type":"task","day":"someday","startTime":"09:00","endTime":"10:00"},
			{"id":"good","title":"Fine","type":"task","day":"2025-03-11","startTime":"09:00","endTime":"10:00"}
		]`)
		result, appErr := svc.Import(ctx, payload)
		require.Nil(t, appErr)

		assert.Equal(t, 1, result.Imported)
		assert.Equal(t, 1, result.Skipped)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "record 0")

		got, err := repo.GetByID(ctx, "good")
		require.NoError(t, err)
		require.NotNil(t, got)
	})

	t.Run("should generate an id for a record without one", func(t *testing.T) {
		svc, repo := newBackupService(t, nil)

		payload := []byte(`[{"title":"No id","type":"task","day":"2025-03-11","startTime":"09:00","endTime":"10:00"}]`)
		result, appErr := svc.Import(ctx, payload)
		require.Nil(t, appErr)
		assert.Equal(t, 1, result.Imported)

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.NotEmpty(t, all[0].ID)
	})

	t.Run("should default an unknown type to task", func(t *testing.T) {
		svc, repo := newBackupService(t, nil)

		payload := []byte(`[{"id":"x","title":"Odd","type":"party","day":"2025-03-11","startTime":"09:00","endTime":"10:00"}]`)
		_, appErr := svc.Import(ctx, payload)
		require.Nil(t, appErr)

		got, err := repo.GetByID(ctx, "x")
		require.NoError(t, err)
		assert.Equal(t, entity.EventTypeTask, got.Type)
	})

	t.Run("should recompute the duration across midnight", func(t *testing.T) {
		svc, repo := newBackupService(t, nil)

		payload := []byte(`[{"id":"n","title":"Night","type":"task","day":"2025-03-11","startTime":"23:00","endTime":"01:00"}]`)
		_, appErr := svc.Import(ctx, payload)
		require.Nil(t, appErr)

		got, err := repo.GetByID(ctx, "n")
		require.NoError(t, err)
		assert.Equal(t, 120, got.DurationMinutes)
	})

	t.Run("should reject a non-array document", func(t *testing.T) {
		svc, _ := newBackupService(t, nil)

		_, appErr := svc.Import(ctx, []byte(`{"not":"an array"}`))
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	})
}

func TestBackupService_ListSnapshots(t *testing.T) {
	ctx := context.Background()

	t.Run("should return an empty list without object storage", func(t *testing.T) {
		svc, _ := newBackupService(t, nil)
		snapshots, appErr := svc.ListSnapshots(ctx)
		require.Nil(t, appErr)
		assert.Empty(t, snapshots)
	})

	t.Run("should return stored snapshot metadata", func(t *testing.T) {
		uploader := newFakeUploader()
		uploader.listed = []SnapshotInfo{{Key: "backups/2025-03-11/planner-events-x.json", SizeBytes: 42}}
		svc, _ := newBackupService(t, uploader)

		snapshots, appErr := svc.ListSnapshots(ctx)
		require.Nil(t, appErr)
		require.Len(t, snapshots, 1)
		assert.Equal(t, int64(42), snapshots[0].SizeBytes)
	})
}
