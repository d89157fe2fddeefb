package notification

import (
	"planner-api/core/middleware"
	"planner-api/modules/notification/controller"
	"planner-api/modules/notification/repository"
	"planner-api/modules/notification/router"
	"planner-api/modules/notification/service"
	scheduleRepo "planner-api/modules/schedule/repository"

	"github.com/labstack/echo/v4"
)

// Module bundles the notification service with its queue worker so the
// server can register the asynq handler.
type Module struct {
	Service *service.NotificationService
	Worker  *service.ReminderWorker
}

// Init wires the notification module and registers its routes. events is
// the schedule store the worker re-checks before delivering.
func Init(e *echo.Echo, repo repository.NotificationRepository, events scheduleRepo.EventRepository, mw *middleware.Middleware) *Module {
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)
	rtr := router.NewNotificationRouter(ctrl)
	rtr.Setup(e, mw)

	return &Module{
		Service: svc,
		Worker:  service.NewReminderWorker(events, svc),
	}
}
