package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"webeye/internal/api/middleware"
	"webeye/internal/schemas"
	"webeye/internal/services"
	"webeye/internal/utils/logger"
)

type AuthHandler struct {
	users *services.UserService
	log   *logger.Logger
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{users: users, log: logger.New("AuthHandler")}
}

// Register creates a member account.
// @Summary Register a new user
// @Description Register a new user with email, password and name
// @Tags auth
// @Accept json
// @Produce json
// @Param request body schemas.UserCreate true "Registration details"
// @Success 201 {object} schemas.UserOut
// @Failure 400 {object} map[string]interface{} "Validation error or email exists"
// @Router /api/auth/users/ [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req schemas.UserCreate
	if err := bindBody(c, &req); err != nil {
		return err
	}

	user, err := h.users.Register(c.Request().Context(), req)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, schemas.NewUserOut(user))
}

// Login exchanges credentials for an access token. It accepts an OAuth2
// password form (username, password) or a JSON body (email, password).
// @Summary Login user
// @Description Authenticate user and return an access token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Accept json
// @Produce json
// @Param username formData string false "Email"
// @Param password formData string false "Password"
// @Success 200 {object} schemas.JWTToken
// @Failure 400 {object} map[string]interface{} "Incorrect email or password"
// @Router /api/auth/login/access-token [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req schemas.Credentials
	if err := bindBody(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	user, err := h.users.Authenticate(ctx, req)
	if err != nil {
		return serviceError(err)
	}

	token, err := h.users.IssueAccessToken(user)
	if err != nil {
		return serviceError(err)
	}

	h.log.Debug("Issued access token for %s", user.Email)
	return c.JSON(http.StatusOK, token)
}

// GetMe returns the current user.
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} schemas.UserOut
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /api/auth/users/me [get]
func (h *AuthHandler) GetMe(c echo.Context) error {
	return c.JSON(http.StatusOK, schemas.NewUserOut(middleware.CurrentUser(c)))
}

// GenerateBotToken issues a one-time token for linking a Telegram chat.
// @Summary Generate bot token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} schemas.BotTokenOut
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /api/auth/users/telegram/generate_token [get]
func (h *AuthHandler) GenerateBotToken(c echo.Context) error {
	token, err := h.users.GenerateBotToken(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, schemas.BotTokenOut{Token: token.Token, ExpiresAt: token.ExpiresAt})
}

// VerifyBotToken links the chat that sent a token to the token's user.
// Only the bot may call it.
// @Summary Verify bot token
// @Tags auth
// @Accept json
// @Produce json
// @Param X-Bot-Secret header string true "Shared bot secret"
// @Param request body schemas.BotTokenVerify true "Token and chat"
// @Success 200 {object} schemas.Msg
// @Failure 401 {object} map[string]interface{} "Invalid bot secret"
// @Failure 404 {object} map[string]interface{} "Unknown or expired token"
// @Router /api/auth/users/telegram/verify [post]
func (h *AuthHandler) VerifyBotToken(c echo.Context) error {
	var req schemas.BotTokenVerify
	if err := bindBody(c, &req); err != nil {
		return err
	}

	if _, err := h.users.LinkTelegram(c.Request().Context(), req.Token, req.ChatID); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, schemas.Msg{Msg: "Telegram account linked"})
}
