package handler

import (
	"github.com/labstack/echo/v4"

	"roadwatch/internal/usecase"
	"roadwatch/pkg/errors"
	"roadwatch/pkg/response"
)

type OfficerHandler struct {
	officerUseCase *usecase.OfficerUseCase
}

func NewOfficerHandler(officerUseCase *usecase.OfficerUseCase) *OfficerHandler {
	return &OfficerHandler{
		officerUseCase: officerUseCase,
	}
}

type updateStatusRequest struct {
	ReportID string `json:"report_id" validate:"required"`
	Status   string `json:"status" validate:"required"`
	Comment  string `json:"comment"`
}

func (h *OfficerHandler) ListReports(c echo.Context) error {
	user := getUserFromContext(c)
	if user == nil {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	reports, err := h.officerUseCase.ListReports(c.Request().Context(), user)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reports)
}

func (h *OfficerHandler) UpdateStatus(c echo.Context) error {
	user := getUserFromContext(c)
	if user == nil {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	report, err := h.officerUseCase.UpdateStatus(c.Request().Context(), user, req.ReportID, req.Status, req.Comment)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, report)
}
