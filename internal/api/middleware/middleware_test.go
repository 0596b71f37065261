package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webeye/internal/models"
	"webeye/internal/testutil"
	"webeye/internal/utils"
)

const secret = "test-secret"

func ok(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func statusOf(err error) int {
	if he, isHTTP := err.(*echo.HTTPError); isHTTP {
		return he.Code
	}
	return http.StatusInternalServerError
}

func newContext(header, value string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestAuthMiddleware(t *testing.T) {
	db := testutil.SetupTestDB(t)
	user := &models.User{Email: "ann@example.com", Password: "x", Role: models.UserRoleMember}
	require.NoError(t, db.Create(user).Error)

	token, err := utils.GenerateAccessToken(user.UUID, secret, time.Hour)
	require.NoError(t, err)
	m := NewAuthMiddleware(secret, db)

	t.Run("bearer token", func(t *testing.T) {
		c, _ := newContext(echo.HeaderAuthorization, "Bearer "+token)
		require.NoError(t, m.Middleware()(ok)(c))
		require.NotNil(t, CurrentUser(c))
		assert.Equal(t, user.UUID, CurrentUser(c).UUID)
	})

	t.Run("bare token", func(t *testing.T) {
		c, _ := newContext(echo.HeaderAuthorization, token)
		assert.NoError(t, m.Middleware()(ok)(c))
	})

	t.Run("missing header", func(t *testing.T) {
		c, _ := newContext("", "")
		assert.Equal(t, http.StatusUnauthorized, statusOf(m.Middleware()(ok)(c)))
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := utils.GenerateAccessToken(user.UUID, "other", time.Hour)
		require.NoError(t, err)
		c, _ := newContext(echo.HeaderAuthorization, "Bearer "+other)
		assert.Equal(t, http.StatusUnauthorized, statusOf(m.Middleware()(ok)(c)))
	})

	t.Run("unknown user", func(t *testing.T) {
		ghost, err := utils.GenerateAccessToken("00000000-0000-0000-0000-000000000000", secret, time.Hour)
		require.NoError(t, err)
		c, _ := newContext(echo.HeaderAuthorization, ghost)
		assert.Equal(t, http.StatusUnauthorized, statusOf(m.Middleware()(ok)(c)))
	})
}

func TestRequireAdmin(t *testing.T) {
	c, _ := newContext("", "")
	assert.Equal(t, http.StatusUnauthorized, statusOf(RequireAdmin()(ok)(c)))

	SetCurrentUser(c, &models.User{Role: models.UserRoleMember})
	assert.Equal(t, http.StatusForbidden, statusOf(RequireAdmin()(ok)(c)))

	SetCurrentUser(c, &models.User{Role: models.UserRoleSuperAdmin})
	assert.NoError(t, RequireAdmin()(ok)(c))
}

func TestRequireBotSecret(t *testing.T) {
	c, _ := newContext(BotSecretHeader, "s3cret")
	assert.NoError(t, RequireBotSecret("s3cret")(ok)(c))

	c, _ = newContext(BotSecretHeader, "nope")
	assert.Equal(t, http.StatusUnauthorized, statusOf(RequireBotSecret("s3cret")(ok)(c)))

	c, _ = newContext("", "")
	assert.Equal(t, http.StatusUnauthorized, statusOf(RequireBotSecret("")(ok)(c)))
}

type countingLimiter struct {
	max   int
	calls int
}

func (l *countingLimiter) Allow(_ context.Context, _ string) (bool, error) {
	l.calls++
	return l.calls <= l.max, nil
}

func TestRateLimitPerUser(t *testing.T) {
	limiter := &countingLimiter{max: 1}
	mw := RateLimitPerUser(limiter, time.Hour)

	c, _ := newContext("", "")
	SetCurrentUser(c, &models.User{Base: models.Base{UUID: "u1"}})
	require.NoError(t, mw(ok)(c))

	c, rec := newContext("", "")
	SetCurrentUser(c, &models.User{Base: models.Base{UUID: "u1"}})
	assert.Equal(t, http.StatusTooManyRequests, statusOf(mw(ok)(c)))
	assert.Equal(t, "3600", rec.Header().Get("Retry-After"))

	c, _ = newContext("", "")
	SetCurrentUser(c, &models.User{Base: models.Base{UUID: "u1"}})
	assert.NoError(t, RateLimitPerUser(nil, time.Hour)(ok)(c))
}
