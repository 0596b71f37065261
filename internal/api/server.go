package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-advanced-admin/admin"
	admingorm "github.com/go-advanced-admin/orm-gorm"
	adminecho "github.com/go-advanced-admin/web-echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	authmw "webeye/internal/api/middleware"
	"webeye/internal/api/validator"
	"webeye/internal/config"
	"webeye/internal/models"
	"webeye/internal/utils"
	console "webeye/internal/utils/logger"
)

type Server struct {
	echo    *echo.Echo
	config  *config.Config
	db      *gorm.DB
	auth    *authmw.AuthMiddleware
	limiter authmw.Limiter
}

var log = console.New("API-Server")

// NewServer @title WebEye API
// @version 1.0
// @description Resources, nodes, status reports and subscriptions.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
//
// reportLimiter may be nil, which disables the per-user report limit.
func NewServer(cfg *config.Config, db *gorm.DB, reportLimiter authmw.Limiter) *Server {
	e := echo.New()
	e.HideBanner = true

	// Create custom validator
	e.Validator = validator.NewValidator()

	// Configure middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, echo.HeaderContentLength, authmw.BotSecretHeader},
	}))
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: 30 * time.Second,
	}))
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
	e.Use(middleware.BodyLimit("10M"))
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimit.RequestsPerSec))))

	// Custom error handler
	e.HTTPErrorHandler = customHTTPErrorHandler

	// Create server instance
	s := &Server{
		echo:    e,
		config:  cfg,
		db:      db,
		auth:    authmw.NewAuthMiddleware(cfg.Auth.SecretKey, db),
		limiter: reportLimiter,
	}

	if err := models.CreateSuperAdmin(db, cfg); err != nil {
		log.Warn("Failed to create super admin: %v", err)
	}

	s.setupAdminPanel()

	// Register routes
	s.registerRoutes()
	return s
}

// setupAdminPanel mounts the admin panel. Only admins holding a valid access
// token may use it.
func (s *Server) setupAdminPanel() {
	// Create a new GORM integrator
	gormIntegrator := admingorm.NewIntegrator(s.db)
	// Create a new Echo integrator
	echoIntegrator := adminecho.NewIntegrator(s.echo.Group(""))

	permissionChecker := func(
		request admin.PermissionRequest, ctx interface{},
	) (bool, error) {
		c, ok := ctx.(echo.Context)
		if !ok {
			return false, nil
		}
		return s.isAdminRequest(c), nil
	}

	// Create a new admin panel
	adminPanel, err := admin.NewPanel(
		gormIntegrator, echoIntegrator, permissionChecker, nil,
	)
	if err != nil {
		_ = log.Error("Failed to create admin panel", err)
		return
	}

	// Register the admin panel
	if _, err = adminPanel.RegisterApp("WebEye", "WebEye Admin Panel", nil); err != nil {
		_ = log.Error("Failed to register admin app", err)
	}
}

func (s *Server) isAdminRequest(c echo.Context) bool {
	token := utils.ExtractToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if token == "" {
		return false
	}
	user, err := s.auth.Authenticate(c.Request().Context(), token)
	if err != nil {
		return false
	}
	return user.Role.IsAdmin()
}

func (s *Server) Start() error {
	err := s.echo.Start(fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port))
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Health check endpoint
func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"version": "1.0.0",
		"time":    time.Now().Format(time.RFC3339),
	})
}

// Custom HTTP error handler
func customHTTPErrorHandler(err error, c echo.Context) {
	var (
		code    = http.StatusInternalServerError
		message interface{}
	)

	var he *echo.HTTPError
	var ve validator.ValidationErrors
	switch {
	case errors.As(err, &ve):
		code = http.StatusBadRequest
		message = ve.Format()
	case errors.As(err, &he):
		code = he.Code
		message = he.Message
	default:
		_ = log.Error("Unhandled error on %s %s", err, c.Request().Method, c.Request().URL.Path)
		message = http.StatusText(code)
	}

	if !c.Response().Committed {
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, map[string]interface{}{
				"error": message,
				"code":  code,
				"time":  time.Now().Format(time.RFC3339),
			})
		}
		if err != nil {
			c.Echo().Logger.Error(err)
		}
	}
}
