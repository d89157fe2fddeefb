package auth

import (
	"planner-api/core/config"
	"planner-api/modules/auth/controller"
	"planner-api/modules/auth/router"
	"planner-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the auth module and registers routes
func Init(e *echo.Echo, cfg *config.Config) {
	svc := service.NewAuthService(cfg.Auth)
	ctrl := controller.NewAuthController(svc)
	rtr := router.NewAuthRouter(ctrl)

	rtr.Setup(e)
}
