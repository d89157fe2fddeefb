package service

import (
	"context"

	"planner-api/core/logger"

	"github.com/hibiken/asynq"
)

// ScheduledExportHandler runs the periodic snapshot export enqueued by the
// asynq scheduler.
type ScheduledExportHandler struct {
	backups BackupServiceInterface
}

func NewScheduledExportHandler(backups BackupServiceInterface) *ScheduledExportHandler {
	return &ScheduledExportHandler{backups: backups}
}

// HandleExport pushes a fresh snapshot to object storage. Failures are
// returned so asynq retries with backoff.
func (h *ScheduledExportHandler) HandleExport(ctx context.Context, _ *asynq.Task) error {
	result, appErr := h.backups.Export(ctx, true)
	if appErr != nil {
		logger.Error("ScheduledExportHandler:HandleExport", "error", appErr)
		return appErr
	}
	logger.Info("ScheduledExportHandler:HandleExport", "snapshot_id", result.SnapshotID, "object_key", result.ObjectKey)
	return nil
}
