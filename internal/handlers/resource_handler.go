package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"webeye/internal/schemas"
	"webeye/internal/services"
)

type ResourceHandler struct {
	resources *services.ResourceService
	reports   *services.ReportService
	reviews   *services.ReviewService
}

func NewResourceHandler(resources *services.ResourceService, reports *services.ReportService, reviews *services.ReviewService) *ResourceHandler {
	return &ResourceHandler{
		resources: resources,
		reports:   reports,
		reviews:   reviews,
	}
}

// List returns a page of resources.
// @Summary List resources
// @Tags resources
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} schemas.ResourceOut
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Router /api/resources/ [get]
func (h *ResourceHandler) List(c echo.Context) error {
	var page schemas.Page
	if err := bindQuery(c, &page); err != nil {
		return err
	}

	resources, err := h.resources.List(c.Request().Context(), page)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, schemas.NewResourceOutList(resources))
}

// Create stores a new resource.
// @Summary Create resource
// @Tags resources
// @Accept json
// @Produce json
// @Param request body schemas.ResourceCreate true "Resource"
// @Success 201 {object} schemas.ResourceOut
// @Failure 400 {object} map[string]interface{} "Validation error or name exists"
// @Router /api/resources/ [post]
func (h *ResourceHandler) Create(c echo.Context) error {
	var req schemas.ResourceCreate
	if err := bindBody(c, &req); err != nil {
		return err
	}

	resource, err := h.resources.Create(c.Request().Context(), req)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, schemas.NewResourceOut(resource))
}

// Get returns a single resource.
// @Summary Get resource
// @Tags resources
// @Produce json
// @Param uuid path string true "Resource UUID"
// @Success 200 {object} schemas.ResourceOut
// @Failure 400 {object} map[string]interface{} "Malformed uuid"
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /api/resources/{uuid} [get]
func (h *ResourceHandler) Get(c echo.Context) error {
	id, err := uuidParam(c, "uuid")
	if err != nil {
		return err
	}

	resource, err := h.resources.Get(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, schemas.NewResourceOut(resource))
}

// Update changes the name or status of a resource.
// @Summary Update resource
// @Tags resources
// @Accept json
// @Produce json
// @Param uuid path string true "Resource UUID"
// @Param request body schemas.ResourceUpdate true "Fields to change"
// @Success 201 {object} schemas.ResourceOut
// @Failure 400 {object} map[string]interface{} "Validation error or name exists"
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /api/resources/{uuid} [patch]
func (h *ResourceHandler) Update(c echo.Context) error {
	id, err := uuidParam(c, "uuid")
	if err != nil {
		return err
	}

	var req schemas.ResourceUpdate
	if err := bindBody(c, &req); err != nil {
		return err
	}

	resource, err := h.resources.Update(c.Request().Context(), id, req)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, schemas.NewResourceOut(resource))
}

// Delete soft deletes a resource.
// @Summary Delete resource
// @Tags resources
// @Param uuid path string true "Resource UUID"
// @Security BearerAuth
// @Success 204 "No content"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /api/resources/{uuid} [delete]
func (h *ResourceHandler) Delete(c echo.Context) error {
	id, err := uuidParam(c, "uuid")
	if err != nil {
		return err
	}

	if err := h.resources.Delete(c.Request().Context(), id); err != nil {
		return serviceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListNodes returns the nodes of a resource.
// @Summary List resource nodes
// @Tags resources
// @Produce json
// @Param uuid path string true "Resource UUID"
// @Success 200 {array} schemas.ResourceNodeOut
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /api/resources/{uuid}/nodes [get]
func (h *ResourceHandler) ListNodes(c echo.Context) error {
	id, err := uuidParam(c, "uuid")
	if err != nil {
		return err
	}

	resource, err := h.resources.GetWithNodes(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, schemas.NewResourceNodeOutList(resource.Nodes))
}

// ListAllNodes returns a page of nodes across resources.
// @Summary List all nodes
// @Tags resources
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} schemas.ResourceNodeOut
// @Router /api/resources/nodes [get]
func (h *ResourceHandler) ListAllNodes(c echo.Context) error {
	var page schemas.Page
	if err := bindQuery(c, &page); err != nil {
		return err
	}

	nodes, err := h.resources.ListNodes(c.Request().Context(), page)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, schemas.NewResourceNodeOutList(nodes))
}

// CreateNode attaches a url to an existing resource.
// @Summary Create resource node
// @Tags resources
// @Accept json
// @Produce json
// @Param request body schemas.ResourceNodeCreate true "Node"
// @Success 201 {object} schemas.ResourceNodeOut
// @Failure 400 {object} map[string]interface{} "Validation error or url exists"
// @Failure 404 {object} map[string]interface{} "Resource not found"
// @Router /api/resources/nodes [post]
func (h *ResourceHandler) CreateNode(c echo.Context) error {
	var req schemas.ResourceNodeCreate
	if err := bindBody(c, &req); err != nil {
		return err
	}

	node, err := h.resources.CreateNode(c.Request().Context(), req)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, schemas.NewResourceNodeOut(node))
}

// ListReports returns the moderated reports of a resource.
// @Summary List resource reports
// @Tags resources
// @Produce json
// @Param uuid path string true "Resource UUID"
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} schemas.ReportOut
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /api/resources/{uuid}/reports [get]
func (h *ResourceHandler) ListReports(c echo.Context) error {
	id, err := uuidParam(c, "uuid")
	if err != nil {
		return err
	}

	var page schemas.Page
	if err := bindQuery(c, &page); err != nil {
		return err
	}

	reports, err := h.reports.ListForResource(c.Request().Context(), id, page)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, schemas.NewReportOutList(reports))
}

// ListReviews returns the reviews of a resource.
// @Summary List resource reviews
// @Tags resources
// @Produce json
// @Param uuid path string true "Resource UUID"
// @Success 200 {array} schemas.ReviewOut
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /api/resources/{uuid}/reviews [get]
func (h *ResourceHandler) ListReviews(c echo.Context) error {
	id, err := uuidParam(c, "uuid")
	if err != nil {
		return err
	}

	var page schemas.Page
	if err := bindQuery(c, &page); err != nil {
		return err
	}

	reviews, err := h.reviews.ListForResource(c.Request().Context(), id, page)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, schemas.NewReviewOutList(reviews))
}
