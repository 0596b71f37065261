package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"webeye/internal/models"
	"webeye/internal/utils"
	"webeye/internal/utils/logger"
)

var log = logger.New("auth_middleware")

const userContextKey = "user"

type AuthMiddleware struct {
	jwtSecret string
	db        *gorm.DB
}

func NewAuthMiddleware(jwtSecret string, db *gorm.DB) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret: jwtSecret,
		db:        db,
	}
}

// Middleware rejects requests without a valid access token and stores the
// token's user in the context.
func (m *AuthMiddleware) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := utils.ExtractToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}

			user, err := m.Authenticate(c.Request().Context(), token)
			if err != nil {
				return err
			}

			SetCurrentUser(c, user)
			return next(c)
		}
	}
}

// Authenticate resolves an access token to its user. Failures are returned
// as echo 401 errors.
func (m *AuthMiddleware) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := utils.ParseAccessToken(token, m.jwtSecret)
	if err != nil {
		log.Debug("Rejected access token: %v", err)
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
	}

	user := &models.User{}
	err = m.db.WithContext(ctx).Where("uuid = ?", claims.UserUUID).First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "User not found")
	}
	if err != nil {
		return nil, log.Error("Failed to load user %s", err, claims.UserUUID)
	}

	return user, nil
}

// CurrentUser returns the user stored by Middleware, or nil.
func CurrentUser(c echo.Context) *models.User {
	if user, ok := c.Get(userContextKey).(*models.User); ok {
		return user
	}
	return nil
}

// SetCurrentUser stores user in the context.
func SetCurrentUser(c echo.Context, user *models.User) {
	c.Set(userContextKey, user)
}
