package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"webeye/internal/schemas"
	"webeye/internal/services"
	"webeye/internal/utils/logger"
)

const exportURLExpiry = 15 * time.Minute

type StatsHandler struct {
	checks *services.CheckService
	window time.Duration
	log    *logger.Logger
	now    func() time.Time
}

// NewStatsHandler serves check statistics. window bounds the history
// included in an export.
func NewStatsHandler(checks *services.CheckService, window time.Duration) *StatsHandler {
	return &StatsHandler{
		checks: checks,
		window: window,
		log:    logger.New("stats_handler"),
		now:    time.Now,
	}
}

// Checks returns probe counts in equal-width time buckets.
// @Summary Check statistics
// @Tags resources
// @Produce json
// @Param uuid path string true "Resource UUID"
// @Param timedelta query int false "Window in seconds" default(172800)
// @Param max_count query int false "Number of buckets" default(7)
// @Success 200 {array} schemas.CheckBucket
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /api/resources/{uuid}/stats/checks [get]
func (h *StatsHandler) Checks(c echo.Context) error {
	id, err := uuidParam(c, "uuid")
	if err != nil {
		return err
	}

	var q schemas.CheckStatsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	q.ApplyDefaults()
	if err := c.Validate(&q); err != nil {
		return err
	}

	buckets, err := h.checks.Buckets(c.Request().Context(), id, q, h.now())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, buckets)
}

// Export returns the resource's recent checks as CSV. With object storage
// configured the file is uploaded and the client redirected to it.
// @Summary Export check history
// @Tags resources
// @Produce text/csv
// @Param uuid path string true "Resource UUID"
// @Success 200 {string} string "CSV file"
// @Success 307 "Redirect to the uploaded file"
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /api/resources/{uuid}/stats/export [get]
func (h *StatsHandler) Export(c echo.Context) error {
	id, err := uuidParam(c, "uuid")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	now := h.now().UTC()

	checks, err := h.checks.History(ctx, id, now.Add(-h.window))
	if err != nil {
		return serviceError(err)
	}

	var buf bytes.Buffer
	if err := services.WriteCSV(&buf, checks); err != nil {
		return serviceError(err)
	}

	filename := fmt.Sprintf("checks-%s-%s.csv", id, now.Format("20060102T150405Z"))

	if storage := GetStorageHandler(); storage != nil {
		key := "exports/" + filename
		if _, err := storage.UploadFile(ctx, buf.Bytes(), key, "text/csv"); err != nil {
			h.log.Warn("Upload of %s failed, sending inline: %v", key, err)
		} else if url, err := storage.GetSignedURL(ctx, key, exportURLExpiry); err != nil {
			h.log.Warn("Signing %s failed, sending inline: %v", key, err)
		} else {
			return c.Redirect(http.StatusTemporaryRedirect, url)
		}
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}
