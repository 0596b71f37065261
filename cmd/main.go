package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"webeye/docs/swagger"
	"webeye/internal/api"
	authmw "webeye/internal/api/middleware"
	"webeye/internal/bot"
	"webeye/internal/config"
	"webeye/internal/db"
	"webeye/internal/events"
	"webeye/internal/handlers"
	"webeye/internal/services"
	"webeye/internal/tasks"
	"webeye/internal/tasks/rate"
	"webeye/internal/utils/logger"
)

// @title WebEye API
// @version 1.0
// @description Status monitoring of university web resources with user reports, reviews and Telegram notifications.
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @securityDefinitions.apikey BotSecret
// @in header
// @name X-Bot-Secret

func main() {
	console := logger.New("webeye")

	// check if .env file exists
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		console.Info("No .env file found, skipping environment variable loading")
	} else {
		console.Info("Loading environment variables from .env file")
		if err := godotenv.Load(); err != nil {
			log.Fatalf("Failed to load environment variables: %v", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.SetDebug(cfg.Server.Debug)
	if cfg.Auth.SecretGenerated {
		console.Warn("SECRET_KEY is not set, using a random key. Tokens will not survive a restart")
	}

	if err := db.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			console.Error("Failed to close database connection", err)
		}
	}()
	conn := db.GetDB()

	taskClient := tasks.NewTaskClient(cfg.Redis)
	defer taskClient.Close()

	// Rate limiters need Redis. Without it reports are not throttled and
	// the checks pipeline stays off.
	var (
		reportLimiter authmw.Limiter
		sweepLimiter  tasks.Limiter
	)
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
	redisErr := taskClient.Ping(pingCtx)
	pingCancel()
	if redisErr != nil {
		console.Warn("Redis unavailable, background checks and report limits disabled: %v", redisErr)
	} else {
		reportLimiter = rate.NewQueueRateLimiter(taskClient.RedisClient(), rate.QueueConfig{
			Name: "reports",
			RateLimit: rate.RateLimit{
				Window:  cfg.RateLimit.ReportWindow,
				MaxJobs: cfg.RateLimit.ReportsPerWindow,
			},
		})
		sweepLimiter = rate.NewQueueRateLimiter(taskClient.RedisClient(), rate.QueueConfig{
			Name: "checks",
			RateLimit: rate.RateLimit{
				Window:  time.Minute,
				MaxJobs: cfg.Checks.SweepPerMin,
			},
		})
	}

	if cfg.Storage.S3.Enabled() {
		s3Service, err := services.NewS3Service(context.Background(), cfg.Storage)
		if err != nil {
			console.Warn("S3 storage disabled: %v", err)
		} else {
			handlers.RegisterStorageHandler(s3Service)
		}
	}

	var notifier tasks.Notifier
	if cfg.Bot.Token != "" {
		telegram, err := bot.NewTelegram(cfg.Bot.Token, nil)
		if err != nil {
			console.Warn("Telegram notifications disabled: %v", err)
		} else {
			notifier = telegram
		}
	}

	var (
		taskServer    *tasks.Server
		taskScheduler *tasks.Scheduler
	)
	if redisErr == nil {
		subscriptions := services.NewSubscriptionService(conn)
		taskHandler := tasks.NewTaskHandler(tasks.HandlerDeps{
			Resources:   services.NewResourceService(conn),
			Checks:      services.NewCheckService(conn),
			Subscribers: subscriptions,
			Notifier:    notifier,
			Enqueuer:    taskClient.GetClient(),
			Limiter:     sweepLimiter,
			Timeout:     cfg.Checks.Timeout,
			Window:      time.Minute,
		})
		tasks.SubscribeStatusChanges(events.Default(), taskClient.GetClient())

		taskServer = tasks.NewServer(cfg.Redis, cfg.Worker.Concurrency, taskHandler, console)
		go func() {
			if err := taskServer.Start(context.Background()); err != nil {
				console.Error("Task server error", err)
			}
		}()

		taskScheduler = tasks.NewScheduler(cfg.Redis, cfg.Checks.Schedule, console)
		go func() {
			if err := taskScheduler.Start(); err != nil {
				console.Error("Task scheduler error", err)
			}
		}()
	}

	swagger.SwaggerInfo.Title = "WebEye API"
	swagger.SwaggerInfo.Description = "Status monitoring of university web resources"
	swagger.SwaggerInfo.Version = "1.0"
	swagger.SwaggerInfo.BasePath = "/"

	apiServer := api.NewServer(cfg, conn, reportLimiter)
	go func() {
		console.Success("API server starting on %s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := apiServer.Start(); err != nil {
			console.Error("API server error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the servers
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if taskScheduler != nil {
		taskScheduler.Stop()
	}
	if taskServer != nil {
		taskServer.Shutdown()
	}

	if err := apiServer.Shutdown(ctx); err != nil {
		console.Error("Failed to shutdown API server", err)
	}

	console.Info("Servers shutdown gracefully")
}
