package backup

import (
	"planner-api/core/config"
	"planner-api/core/logger"
	"planner-api/core/middleware"
	"planner-api/core/utils"
	"planner-api/modules/backup/controller"
	"planner-api/modules/backup/router"
	"planner-api/modules/backup/service"
	scheduleRepo "planner-api/modules/schedule/repository"

	"github.com/labstack/echo/v4"
)

// Module bundles the backup service with its scheduled-export handler so
// the server can register the asynq task.
type Module struct {
	Service       service.BackupServiceInterface
	ExportHandler *service.ScheduledExportHandler
}

// Init wires the backup module and registers its routes. Object storage is
// optional: without a configured bucket, export works locally and the
// snapshot endpoints return empty results.
func Init(e *echo.Echo, cfg *config.Config, events scheduleRepo.EventRepository, mw *middleware.Middleware) *Module {
	var uploader service.Uploader
	if cfg.Backup.Enabled && cfg.Backup.Bucket != "" {
		uploader = service.NewS3Uploader(cfg.Backup)
	} else {
		logger.Info("BackupModule:Init", "storage", "disabled")
	}

	svc := service.NewBackupService(events, utils.NewEventIDGenerator(), uploader)
	ctrl := controller.NewBackupController(svc)
	rtr := router.NewBackupRouter(ctrl)
	rtr.Setup(e, mw)

	return &Module{
		Service:       svc,
		ExportHandler: service.NewScheduledExportHandler(svc),
	}
}
