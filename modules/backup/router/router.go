package router

import (
	"planner-api/core/middleware"
	"planner-api/modules/backup/controller"

	"github.com/labstack/echo/v4"
)

// BackupRouter handles backup routes
type BackupRouter struct {
	BackupController *controller.BackupController
}

// NewBackupRouter creates a new router
func NewBackupRouter(backupController *controller.BackupController) *BackupRouter {
	return &BackupRouter{
		BackupController: backupController,
	}
}

// Setup registers backup routes
func (r *BackupRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	backupRoutes := privateRoutes.Group("/backup", mw.AuthMiddleware())
	backupRoutes.POST("/export", r.BackupController.Export)
	backupRoutes.POST("/import", r.BackupController.Import)
	backupRoutes.GET("/snapshots", r.BackupController.ListSnapshots)
}
