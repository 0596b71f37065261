package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"webeye/internal/api/middleware"
	"webeye/internal/schemas"
	"webeye/internal/services"
)

type ReviewHandler struct {
	reviews *services.ReviewService
}

func NewReviewHandler(reviews *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// Create stores a review from the current user.
// @Summary Create review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body schemas.ReviewCreate true "Review"
// @Success 201 {object} schemas.ReviewOut
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 404 {object} map[string]interface{} "Resource not found"
// @Router /api/reviews/ [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	var req schemas.ReviewCreate
	if err := bindBody(c, &req); err != nil {
		return err
	}

	review, err := h.reviews.Create(c.Request().Context(), req, middleware.CurrentUser(c))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, schemas.NewReviewOut(review))
}
