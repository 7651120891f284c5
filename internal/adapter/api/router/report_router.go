package router

import (
	"github.com/labstack/echo/v4"

	"roadwatch/internal/adapter/api/handler"
	"roadwatch/internal/adapter/api/middleware"
)

func SetupReportRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reportHandler := handler.GetReportHandler()

	reports := e.Group("/v1/reports")
	reports.Use(authMiddleware.Authenticate)

	reports.POST("", reportHandler.Create)
	reports.GET("", reportHandler.ListMine)
}
