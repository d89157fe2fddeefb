package controller

import (
	"strconv"

	"planner-api/core/controller"
	"planner-api/core/errors"
	"planner-api/modules/schedule/dto"
	"planner-api/modules/schedule/service"

	"github.com/labstack/echo/v4"
)

// ScheduleController handles event HTTP requests
type ScheduleController struct {
	controller.BaseController
	ScheduleService service.ScheduleServiceInterface
	AdapterService  service.AdapterServiceInterface
}

// NewScheduleController creates a new controller
func NewScheduleController(svc service.ScheduleServiceInterface, adapter service.AdapterServiceInterface) *ScheduleController {
	return &ScheduleController{
		BaseController:  controller.NewBaseController(),
		ScheduleService: svc,
		AdapterService:  adapter,
	}
}

// CreateEvent handles POST /events
// @Summary Create an event
// @Tags Schedule
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event fields"
// @Success 200 {object} dto.CreateEventResponse
// @Failure 400 {object} errors.AppError
// @Router /private/events [post]
func (c *ScheduleController) CreateEvent(ctx echo.Context) error {
	var req dto.CreateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.ScheduleService.CreateEvent(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Event created successfully")
}

// GetEvent handles GET /events/:id
// @Summary Get an event by id
// @Tags Schedule
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} errors.AppError
// @Router /private/events/{id} [get]
func (c *ScheduleController) GetEvent(ctx echo.Context) error {
	result, appErr := c.ScheduleService.GetEventByID(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// ListEvents handles GET /events?day= or ?from=&to=
// @Summary List events for a day or an inclusive day range
// @Tags Schedule
// @Security BearerAuth
// @Produce json
// @Param day query string false "Exact day (YYYY-MM-DD)"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {array} dto.EventResponse
// @Failure 400 {object} errors.AppError
// @Router /private/events [get]
func (c *ScheduleController) ListEvents(ctx echo.Context) error {
	day := ctx.QueryParam("day")
	from := ctx.QueryParam("from")
	to := ctx.QueryParam("to")

	reqCtx := ctx.Request().Context()

	switch {
	case day != "":
		result, appErr := c.ScheduleService.GetEventsForDay(reqCtx, day)
		if appErr != nil {
			return c.ErrorResponse(ctx, appErr)
		}
		return c.SuccessResponse(ctx, result, "Success")
	case from != "" && to != "":
		result, appErr := c.ScheduleService.GetEventsForRange(reqCtx, from, to)
		if appErr != nil {
			return c.ErrorResponse(ctx, appErr)
		}
		return c.SuccessResponse(ctx, result, "Success")
	default:
		return c.BadRequest(errors.ErrInvalidInput, "Provide either ?day= or ?from=&to=")
	}
}

// UpdateEvent handles PUT /events/:id
// @Summary Update an event
// @Tags Schedule
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} errors.AppError
// @Router /private/events/{id} [put]
func (c *ScheduleController) UpdateEvent(ctx echo.Context) error {
	var req dto.UpdateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.ScheduleService.UpdateEvent(ctx.Request().Context(), ctx.Param("id"), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Event updated successfully")
}

// DeleteEvent handles DELETE /events/:id
// @Summary Delete an event
// @Tags Schedule
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} errors.AppError
// @Router /private/events/{id} [delete]
func (c *ScheduleController) DeleteEvent(ctx echo.Context) error {
	if appErr := c.ScheduleService.DeleteEvent(ctx.Request().Context(), ctx.Param("id")); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Event deleted successfully")
}

// MoveEvent handles POST /events/:id/move
// @Summary Move an event to a new day/start, preserving duration
// @Tags Schedule
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.MoveEventRequest true "Target day and start"
// @Success 200 {object} dto.EventResponse
// @Failure 409 {object} errors.AppError
// @Router /private/events/{id}/move [post]
func (c *ScheduleController) MoveEvent(ctx echo.Context) error {
	var req dto.MoveEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.ScheduleService.MoveEvent(ctx.Request().Context(), ctx.Param("id"), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Event moved successfully")
}

// FindConflicts handles GET /events/conflicts
// @Summary Check a candidate range for conflicts
// @Tags Schedule
// @Security BearerAuth
// @Produce json
// @Param day query string true "Day (YYYY-MM-DD)"
// @Param start query string true "Start time (HH:MM)"
// @Param end query string true "End time (HH:MM)"
// @Param exclude_id query string false "Event id to ignore"
// @Success 200 {object} dto.ConflictCheckResponse
// @Failure 400 {object} errors.AppError
// @Router /private/events/conflicts [get]
func (c *ScheduleController) FindConflicts(ctx echo.Context) error {
	result, appErr := c.ScheduleService.FindConflicts(
		ctx.Request().Context(),
		ctx.QueryParam("day"),
		ctx.QueryParam("start"),
		ctx.QueryParam("end"),
		ctx.QueryParam("exclude_id"),
	)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// FindSlots handles GET /events/slots
// @Summary Find free slots in a day
// @Tags Schedule
// @Security BearerAuth
// @Produce json
// @Param day query string true "Day (YYYY-MM-DD)"
// @Param min_duration query int false "Minimum slot length in minutes"
// @Success 200 {array} dto.SlotResponse
// @Failure 400 {object} errors.AppError
// @Router /private/events/slots [get]
func (c *ScheduleController) FindSlots(ctx echo.Context) error {
	minDuration := 0
	if raw := ctx.QueryParam("min_duration"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "min_duration must be an integer")
		}
		minDuration = v
	}

	result, appErr := c.ScheduleService.FindAvailableSlots(ctx.Request().Context(), ctx.QueryParam("day"), minDuration)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// BigCalendarView handles GET /events/calendar/big
// @Summary Events in big-calendar widget shape
// @Tags Schedule
// @Security BearerAuth
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} mapper.BigCalendarEvent
// @Router /private/events/calendar/big [get]
func (c *ScheduleController) BigCalendarView(ctx echo.Context) error {
	result, appErr := c.AdapterService.BigCalendarRange(ctx.Request().Context(), ctx.QueryParam("from"), ctx.QueryParam("to"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// FullCalendarView handles GET /events/calendar/full
// @Summary Events in full-calendar widget shape
// @Tags Schedule
// @Security BearerAuth
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} mapper.FullCalendarEvent
// @Router /private/events/calendar/full [get]
func (c *ScheduleController) FullCalendarView(ctx echo.Context) error {
	result, appErr := c.AdapterService.FullCalendarRange(ctx.Request().Context(), ctx.QueryParam("from"), ctx.QueryParam("to"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}
