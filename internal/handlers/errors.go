package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"webeye/internal/services"
	"webeye/internal/utils/logger"
)

var log = logger.New("handlers")

// serviceError maps a service failure onto an HTTP error. Unclassified
// errors are logged and reported as 500 without details.
func serviceError(err error) error {
	var se *services.ServiceError
	if !errors.As(err, &se) {
		_ = log.Error("Unhandled service error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}

	switch se.Kind {
	case services.KindNotFound:
		return echo.NewHTTPError(http.StatusNotFound, se.Message)
	case services.KindForbidden:
		return echo.NewHTTPError(http.StatusForbidden, se.Message)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, se.Message)
	}
}

// bindBody binds the request into v and validates it. Validation errors are
// returned unchanged for the server's error handler to format.
func bindBody(c echo.Context, v interface{}) error {
	if err := c.Bind(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return c.Validate(v)
}

// bindQuery binds only query parameters, whatever the method.
func bindQuery(c echo.Context, v interface{}) error {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	return c.Validate(v)
}

// uuidParam returns the named path parameter when it is a well-formed uuid.
func uuidParam(c echo.Context, name string) (string, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, name+" must be a valid UUID")
	}
	return id.String(), nil
}
