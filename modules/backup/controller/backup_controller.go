package controller

import (
	"io"

	"planner-api/core/controller"
	"planner-api/core/errors"
	"planner-api/modules/backup/service"

	"github.com/labstack/echo/v4"
)

// BackupController handles backup HTTP requests
type BackupController struct {
	controller.BaseController
	BackupService service.BackupServiceInterface
}

// NewBackupController creates a new controller
func NewBackupController(svc service.BackupServiceInterface) *BackupController {
	return &BackupController{
		BaseController: controller.NewBaseController(),
		BackupService:  svc,
	}
}

// Export handles POST /backup/export
// @Summary Export all events as a backup document
// @Tags Backup
// @Security BearerAuth
// @Produce json
// @Param push query bool false "Also push the snapshot to object storage"
// @Success 200 {object} service.ExportResult
// @Router /private/backup/export [post]
func (c *BackupController) Export(ctx echo.Context) error {
	push := ctx.QueryParam("push") == "true"
	result, appErr := c.BackupService.Export(ctx.Request().Context(), push)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Export complete")
}

// Import handles POST /backup/import
// @Summary Restore events from a backup document
// @Tags Backup
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} service.ImportResult
// @Failure 400 {object} errors.AppError
// @Router /private/backup/import [post]
func (c *BackupController) Import(ctx echo.Context) error {
	payload, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Failed to read request body")
	}
	result, appErr := c.BackupService.Import(ctx.Request().Context(), payload)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Import complete")
}

// ListSnapshots handles GET /backup/snapshots
// @Summary List snapshots stored in object storage
// @Tags Backup
// @Security BearerAuth
// @Produce json
// @Success 200 {array} service.SnapshotInfo
// @Router /private/backup/snapshots [get]
func (c *BackupController) ListSnapshots(ctx echo.Context) error {
	snapshots, appErr := c.BackupService.ListSnapshots(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, snapshots, "Success")
}
