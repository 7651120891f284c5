package router

import (
	"github.com/labstack/echo/v4"

	"roadwatch/internal/adapter/api/handler"
	"roadwatch/internal/adapter/api/middleware"
)

func SetupOfficerRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, officerMiddleware *middleware.OfficerMiddleware) {
	officerHandler := handler.GetOfficerHandler()

	officer := e.Group("/v1/officer")
	officer.Use(authMiddleware.Authenticate)
	officer.Use(officerMiddleware.OfficerOnly)

	officer.GET("/reports", officerHandler.ListReports)
	officer.POST("/reports/status", officerHandler.UpdateStatus)
}
