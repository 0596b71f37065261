package routes

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"webeye/internal/api/middleware"
	"webeye/internal/config"
	"webeye/internal/handlers"
	"webeye/internal/services"
)

func SetupAuthRoutes(api *echo.Group, db *gorm.DB, cfg *config.Config, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handlers.NewAuthHandler(services.NewUserService(db, cfg.Auth))
	subscriptionHandler := handlers.NewSubscriptionHandler(services.NewSubscriptionService(db))

	auth := api.Group("/auth")
	users := auth.Group("/users")

	// Public routes (no auth required)
	users.POST("", authHandler.Register)
	users.POST("/", authHandler.Register)
	auth.POST("/login/access-token", authHandler.Login)

	// Called by the bot
	users.POST("/telegram/verify", authHandler.VerifyBotToken, middleware.RequireBotSecret(cfg.Bot.Secret))

	// Protected routes (require authentication)
	protected := users.Group("", authMiddleware.Middleware())
	protected.GET("/me", authHandler.GetMe)
	protected.GET("/me/subscriptions", subscriptionHandler.ListMine)
	protected.GET("/telegram/generate_token", authHandler.GenerateBotToken)
}
