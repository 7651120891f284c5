package router

import (
	"github.com/labstack/echo/v4"

	"roadwatch/internal/adapter/api/handler"
)

func SetupAuthRouter(e *echo.Echo) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")

	auth.POST("/signup/citizen", authHandler.SignupCitizen)
	auth.POST("/signup/officer", authHandler.SignupOfficer)
	auth.POST("/signin/citizen", authHandler.SigninCitizen)
	auth.POST("/signin/officer", authHandler.SigninOfficer)
}
