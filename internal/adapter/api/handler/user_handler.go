package handler

import (
	"github.com/labstack/echo/v4"

	"roadwatch/internal/usecase"
	"roadwatch/pkg/errors"
	"roadwatch/pkg/response"
)

type UserHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewUserHandler(authUseCase *usecase.AuthUseCase) *UserHandler {
	return &UserHandler{
		authUseCase: authUseCase,
	}
}

func (h *UserHandler) Me(c echo.Context) error {
	user := getUserFromContext(c)
	if user == nil {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	return response.Success(c, toUserResponse(user))
}
