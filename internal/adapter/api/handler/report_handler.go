package handler

import (
	"github.com/labstack/echo/v4"

	"roadwatch/internal/domain/entity"
	"roadwatch/internal/usecase"
	"roadwatch/pkg/errors"
	"roadwatch/pkg/logger"
	"roadwatch/pkg/response"
)

type ReportHandler struct {
	reportUseCase *usecase.ReportUseCase
}

func NewReportHandler(reportUseCase *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
	}
}

type createReportRequest struct {
	Description string   `form:"description"`
	IssueType   string   `form:"issue_type" validate:"required,oneof=pothole crack drainage debris signage other"`
	Lat         *float64 `form:"lat" validate:"required,latitude"`
	Lng         *float64 `form:"lng" validate:"required,longitude"`
}

// Create handles the multipart submission: image file plus description,
// location and issue type fields.
func (h *ReportHandler) Create(c echo.Context) error {
	user := getUserFromContext(c)
	if user == nil {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	var req createReportRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid form data", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.BadRequest("Please upload an image", err))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	report, err := h.reportUseCase.Submit(c.Request().Context(), usecase.SubmitInput{
		ReporterID:  user.ID,
		Description: req.Description,
		IssueType:   req.IssueType,
		Location:    entity.GeoPoint{Lat: *req.Lat, Lng: *req.Lng},
		Image:       src,
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
	})
	if err != nil {
		logger.Error("Report submission by %s failed: %v", user.ID, err)
		return response.Error(c, err)
	}

	return response.Created(c, report)
}

// ListMine returns the authenticated reporter's own submissions.
func (h *ReportHandler) ListMine(c echo.Context) error {
	user := getUserFromContext(c)
	if user == nil {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	reports, err := h.reportUseCase.ListMine(c.Request().Context(), user.ID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reports)
}

func getUserFromContext(c echo.Context) *entity.User {
	if user, ok := c.Get("user").(*entity.User); ok {
		return user
	}
	return nil
}
