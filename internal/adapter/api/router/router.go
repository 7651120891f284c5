package router

import (
	"github.com/labstack/echo/v4"

	"roadwatch/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, officerMiddleware *middleware.OfficerMiddleware) {
	SetupAuthRouter(e)
	SetupUserRouter(e, authMiddleware)
	SetupReportRouter(e, authMiddleware)
	SetupOfficerRouter(e, authMiddleware, officerMiddleware)
	SetupHealthRouter(e)
}
