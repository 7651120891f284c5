package handler

import (
	"roadwatch/internal/usecase"
)

var (
	authHandler    *AuthHandler
	userHandler    *UserHandler
	reportHandler  *ReportHandler
	officerHandler *OfficerHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	reportUseCase *usecase.ReportUseCase,
	officerUseCase *usecase.OfficerUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(authUseCase)
	reportHandler = NewReportHandler(reportUseCase)
	officerHandler = NewOfficerHandler(officerUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetReportHandler() *ReportHandler {
	return reportHandler
}

func GetOfficerHandler() *OfficerHandler {
	return officerHandler
}
