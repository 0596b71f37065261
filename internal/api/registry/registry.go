package registry

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"webeye/internal/api/middleware"
	"webeye/internal/config"
	"webeye/internal/handlers"
	"webeye/internal/services"
)

// Options carries what the domain routes need beyond the database.
type Options struct {
	Auth          *middleware.AuthMiddleware
	ReportLimiter middleware.Limiter
}

// route registers h on path with and without a trailing slash, so that
// "/api/resources/nodes" and "/api/resources/nodes/" resolve alike.
func route(g *echo.Group, method, path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	g.Add(method, path, h, m...)
	g.Add(method, path+"/", h, m...)
}

// collection registers h on the group root.
func collection(g *echo.Group, method string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	route(g, method, "", h, m...)
}

// RegisterCRUDRoutes registers the resource, report, review and
// subscription routes under g.
func RegisterCRUDRoutes(g *echo.Group, db *gorm.DB, cfg *config.Config, opts Options) {
	resourceService := services.NewResourceService(db)
	reportService := services.NewReportService(db)
	reviewService := services.NewReviewService(db)
	subscriptionService := services.NewSubscriptionService(db)
	checkService := services.NewCheckService(db)

	authenticated := opts.Auth.Middleware()
	admin := middleware.RequireAdmin()

	// Resources
	resourceHandler := handlers.NewResourceHandler(resourceService, reportService, reviewService)
	statsHandler := handlers.NewStatsHandler(checkService, cfg.Checks.ExportWindow)
	resourceGroup := g.Group("/resources")

	collection(resourceGroup, "GET", resourceHandler.List)
	collection(resourceGroup, "POST", resourceHandler.Create)
	route(resourceGroup, "GET", "/nodes", resourceHandler.ListAllNodes)
	route(resourceGroup, "POST", "/nodes", resourceHandler.CreateNode)
	resourceGroup.GET("/:uuid", resourceHandler.Get)
	resourceGroup.PATCH("/:uuid", resourceHandler.Update)
	resourceGroup.DELETE("/:uuid", resourceHandler.Delete, authenticated, admin)
	resourceGroup.GET("/:uuid/nodes", resourceHandler.ListNodes)
	resourceGroup.GET("/:uuid/reports", resourceHandler.ListReports)
	resourceGroup.GET("/:uuid/reviews", resourceHandler.ListReviews)
	resourceGroup.GET("/:uuid/stats/checks", statsHandler.Checks)
	resourceGroup.GET("/:uuid/stats/export", statsHandler.Export)

	// Reports
	reportHandler := handlers.NewReportHandler(reportService)
	reportGroup := g.Group("/reports", authenticated)

	collection(reportGroup, "POST", reportHandler.Create,
		middleware.RateLimitPerUser(opts.ReportLimiter, cfg.RateLimit.ReportWindow))
	collection(reportGroup, "GET", reportHandler.List, admin)
	reportGroup.GET("/:uuid", reportHandler.Get, admin)
	reportGroup.PATCH("/:uuid", reportHandler.Update, admin)
	reportGroup.DELETE("/:uuid", reportHandler.Delete, admin)

	// Reviews
	reviewHandler := handlers.NewReviewHandler(reviewService)
	reviewGroup := g.Group("/reviews", authenticated)
	collection(reviewGroup, "POST", reviewHandler.Create)

	// Subscriptions
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService)
	subscriptionGroup := g.Group("/subscriptions", authenticated)
	collection(subscriptionGroup, "POST", subscriptionHandler.Create)
	subscriptionGroup.PATCH("/:uuid", subscriptionHandler.Update)
}
