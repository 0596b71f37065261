package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// BotSecretHeader carries the secret shared between the API and the bot.
const BotSecretHeader = "X-Bot-Secret"

// RequireAdmin allows only admins and super admins. It must run after
// AuthMiddleware.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}
			if !user.Role.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "The user doesn't have enough privileges")
			}
			return next(c)
		}
	}
}

// RequireBotSecret rejects requests whose X-Bot-Secret header does not match
// secret. An empty secret rejects everything.
func RequireBotSecret(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got := c.Request().Header.Get(BotSecretHeader)
			if secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid bot secret")
			}
			return next(c)
		}
	}
}
