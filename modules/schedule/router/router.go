package router

import (
	"planner-api/core/middleware"
	"planner-api/modules/schedule/controller"

	"github.com/labstack/echo/v4"
)

// ScheduleRouter handles event routes
type ScheduleRouter struct {
	ScheduleController *controller.ScheduleController
}

// NewScheduleRouter creates a new router
func NewScheduleRouter(scheduleController *controller.ScheduleController) *ScheduleRouter {
	return &ScheduleRouter{
		ScheduleController: scheduleController,
	}
}

// Setup registers event routes
func (r *ScheduleRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	eventRoutes := privateRoutes.Group("/events", mw.AuthMiddleware())

	// CRUD + queries
	eventRoutes.POST("", r.ScheduleController.CreateEvent)
	eventRoutes.GET("", r.ScheduleController.ListEvents)

	// Static paths before the :id wildcard
	eventRoutes.GET("/conflicts", r.ScheduleController.FindConflicts)
	eventRoutes.GET("/slots", r.ScheduleController.FindSlots)
	eventRoutes.GET("/calendar/big", r.ScheduleController.BigCalendarView)
	eventRoutes.GET("/calendar/full", r.ScheduleController.FullCalendarView)

	eventRoutes.GET("/:id", r.ScheduleController.GetEvent)
	eventRoutes.PUT("/:id", r.ScheduleController.UpdateEvent)
	eventRoutes.DELETE("/:id", r.ScheduleController.DeleteEvent)
	eventRoutes.POST("/:id/move", r.ScheduleController.MoveEvent)
}
