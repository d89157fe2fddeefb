package schedule

import (
	"planner-api/core/config"
	"planner-api/core/middleware"
	"planner-api/core/utils"
	"planner-api/modules/schedule/controller"
	"planner-api/modules/schedule/repository"
	"planner-api/modules/schedule/router"
	"planner-api/modules/schedule/service"

	"github.com/labstack/echo/v4"
)

// Init wires the schedule module and registers its routes. The repository is
// injected because the store driver (postgres/memory, optionally cached) is
// chosen at server startup; reminders may be nil.
func Init(e *echo.Echo, cfg *config.Config, repo repository.EventRepository, reminders service.ReminderScheduler, mw *middleware.Middleware) service.ScheduleServiceInterface {
	idGen := utils.NewEventIDGenerator()
	svc := service.NewScheduleService(repo, idGen, cfg.Schedule, reminders)
	adapter := service.NewAdapterService(repo, cfg.Schedule.WrapEqualTimes)
	ctrl := controller.NewScheduleController(svc, adapter)
	rtr := router.NewScheduleRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
