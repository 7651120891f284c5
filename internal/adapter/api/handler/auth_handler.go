package handler

import (
	"github.com/labstack/echo/v4"

	"roadwatch/internal/domain/entity"
	"roadwatch/internal/usecase"
	"roadwatch/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type signupRequest struct {
	Name       string `json:"name" validate:"required,min=2"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	SecretCode string `json:"secret_code"`
}

type signinRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func (h *AuthHandler) SignupCitizen(c echo.Context) error {
	return h.signup(c, entity.RoleCitizen)
}

func (h *AuthHandler) SignupOfficer(c echo.Context) error {
	return h.signup(c, entity.RoleOfficer)
}

func (h *AuthHandler) SigninCitizen(c echo.Context) error {
	return h.signin(c, entity.RoleCitizen)
}

func (h *AuthHandler) SigninOfficer(c echo.Context) error {
	return h.signin(c, entity.RoleOfficer)
}

func (h *AuthHandler) signup(c echo.Context, role string) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Signup(c.Request().Context(), role, usecase.SignupInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		SecretCode: req.SecretCode,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, authResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
	})
}

func (h *AuthHandler) signin(c echo.Context, role string) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Signin(c.Request().Context(), role, req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, authResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
	})
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}
