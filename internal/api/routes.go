package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "webeye/docs/swagger"
	"webeye/internal/api/registry"
	"webeye/internal/routes"
)

func (s *Server) registerRoutes() {
	s.echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "WebEye API")
	})
	// Health check
	// @Summary Health check
	// @Description Check if the server is running
	// @Produce json
	// @Success 200 {object} map[string]string "OK"
	// @Router /health [get]
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/swagger/*", echoSwagger.WrapHandler)

	api := s.echo.Group("/api")

	routes.SetupAuthRoutes(api, s.db, s.config, s.auth)

	registry.RegisterCRUDRoutes(api, s.db, s.config, registry.Options{
		Auth:          s.auth,
		ReportLimiter: s.limiter,
	})
}
