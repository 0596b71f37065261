package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"webeye/internal/api/middleware"
	"webeye/internal/schemas"
	"webeye/internal/services"
)

type ReportHandler struct {
	reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Create stores a report from the current user.
// @Summary Create report
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body schemas.ReportCreate true "Report"
// @Success 201 {object} schemas.ReportOut
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Resource not found"
// @Failure 429 {object} map[string]interface{} "Too many reports"
// @Router /api/reports/ [post]
func (h *ReportHandler) Create(c echo.Context) error {
	var req schemas.ReportCreate
	if err := bindBody(c, &req); err != nil {
		return err
	}

	report, err := h.reports.Create(c.Request().Context(), req, middleware.CurrentUser(c))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, schemas.NewReportOut(report))
}

// List returns reports with their resource names.
// @Summary List reports
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Param is_moderated query bool false "Moderation filter"
// @Success 200 {array} schemas.ReportOutWithResourceName
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Router /api/reports/ [get]
func (h *ReportHandler) List(c echo.Context) error {
	var filter schemas.ReportFilter
	if err := bindQuery(c, &filter); err != nil {
		return err
	}
	if raw := c.QueryParam("is_moderated"); raw != "" {
		moderated, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "is_moderated must be a boolean")
		}
		filter.IsModerated = &moderated
	}

	reports, err := h.reports.List(c.Request().Context(), filter)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, schemas.NewReportOutWithResourceNameList(reports))
}

// Get returns a single report.
// @Summary Get report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Report UUID"
// @Success 200 {object} schemas.ReportOutWithResourceName
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /api/reports/{uuid} [get]
func (h *ReportHandler) Get(c echo.Context) error {
	id, err := uuidParam(c, "uuid")
	if err != nil {
		return err
	}

	report, err := h.reports.Get(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, schemas.NewReportOutWithResourceName(report))
}

// Update applies the provided fields to a report.
// @Summary Update report
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Report UUID"
// @Param request body schemas.ReportUpdate true "Fields to change"
// @Success 200 {object} schemas.ReportOut
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /api/reports/{uuid} [patch]
func (h *ReportHandler) Update(c echo.Context) error {
	id, err := uuidParam(c, "uuid")
	if err != nil {
		return err
	}

	var req schemas.ReportUpdate
	if err := bindBody(c, &req); err != nil {
		return err
	}

	report, err := h.reports.Update(c.Request().Context(), id, req)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, schemas.NewReportOut(report))
}

// Delete soft deletes a report.
// @Summary Delete report
// @Tags reports
// @Security BearerAuth
// @Param uuid path string true "Report UUID"
// @Success 204 "No content"
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /api/reports/{uuid} [delete]
func (h *ReportHandler) Delete(c echo.Context) error {
	id, err := uuidParam(c, "uuid")
	if err != nil {
		return err
	}

	if err := h.reports.Delete(c.Request().Context(), id); err != nil {
		return serviceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
