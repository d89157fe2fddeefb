package main

import (
	"planner-api/core/logger"
	"planner-api/core/server"
)

// @title Planner API
// @version 1.0
// @description Backend API for the planner: events, availability, reminders and backups.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
