package controller

import (
	"planner-api/core/controller"
	"planner-api/core/params"
	"planner-api/modules/notification/service"

	"github.com/labstack/echo/v4"
)

// NotificationController handles notification HTTP requests
type NotificationController struct {
	controller.BaseController
	NotificationService service.NotificationServiceInterface
}

// NewNotificationController creates a new controller
func NewNotificationController(svc service.NotificationServiceInterface) *NotificationController {
	return &NotificationController{
		BaseController:      controller.NewBaseController(),
		NotificationService: svc,
	}
}

// List handles GET /notifications
// @Summary List notifications, newest first
// @Tags Notification
// @Security BearerAuth
// @Produce json
// @Param page_number query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} entity.PaginatedNotifications
// @Router /private/notifications [get]
func (c *NotificationController) List(ctx echo.Context) error {
	result, appErr := c.NotificationService.List(ctx.Request().Context(), params.FromContext(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// MarkRead handles PUT /notifications/:id/read
// @Summary Mark a notification as read
// @Tags Notification
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} errors.AppError
// @Router /private/notifications/{id}/read [put]
func (c *NotificationController) MarkRead(ctx echo.Context) error {
	if appErr := c.NotificationService.MarkRead(ctx.Request().Context(), ctx.Param("id")); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Notification marked as read")
}
