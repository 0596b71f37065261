package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"webeye/internal/api/middleware"
	"webeye/internal/schemas"
	"webeye/internal/services"
)

type SubscriptionHandler struct {
	subscriptions *services.SubscriptionService
}

func NewSubscriptionHandler(subscriptions *services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptions: subscriptions}
}

// Create subscribes the current user to a resource.
// @Summary Subscribe to resource
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body schemas.SubscriptionCreate true "Subscription"
// @Success 201 {object} schemas.SubscriptionOut
// @Failure 400 {object} map[string]interface{} "Validation error or already subscribed"
// @Failure 404 {object} map[string]interface{} "Resource not found"
// @Router /api/subscriptions/ [post]
func (h *SubscriptionHandler) Create(c echo.Context) error {
	var req schemas.SubscriptionCreate
	if err := bindBody(c, &req); err != nil {
		return err
	}

	sub, err := h.subscriptions.Create(c.Request().Context(), req, middleware.CurrentUser(c))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, schemas.NewSubscriptionOut(sub))
}

// Update toggles one of the current user's subscriptions.
// @Summary Update subscription
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "Subscription UUID"
// @Param request body schemas.SubscriptionUpdate true "Fields to change"
// @Success 200 {object} schemas.SubscriptionOut
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /api/subscriptions/{uuid} [patch]
func (h *SubscriptionHandler) Update(c echo.Context) error {
	id, err := uuidParam(c, "uuid")
	if err != nil {
		return err
	}

	var req schemas.SubscriptionUpdate
	if err := bindBody(c, &req); err != nil {
		return err
	}

	sub, err := h.subscriptions.Update(c.Request().Context(), id, req, middleware.CurrentUser(c))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, schemas.NewSubscriptionOut(sub))
}

// ListMine returns the current user's subscriptions.
// @Summary List my subscriptions
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Param resource_uuid query string false "Resource filter"
// @Success 200 {array} schemas.SubscriptionOut
// @Router /api/auth/users/me/subscriptions [get]
func (h *SubscriptionHandler) ListMine(c echo.Context) error {
	var filter schemas.SubscriptionFilter
	if err := bindQuery(c, &filter); err != nil {
		return err
	}

	subs, err := h.subscriptions.ListForUser(c.Request().Context(), middleware.CurrentUser(c), filter)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, schemas.NewSubscriptionOutList(subs))
}
