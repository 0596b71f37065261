package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"webeye/internal/bot"
	"webeye/internal/config"
	"webeye/internal/utils/logger"
)

func main() {
	console := logger.New("webeye-bot")

	if _, err := os.Stat(".env"); err == nil {
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

	if cfg.Bot.Token == "" {
		log.Fatal("BOT_TOKEN is required")
	}
	if cfg.Bot.Secret == "" {
		console.Warn("BOT_SECRET is not set, the API will reject token verification")
	}

	dialog := bot.NewDialog(bot.NewAPIClient(cfg.Bot.APIBaseURL, cfg.Bot.Secret), cfg.Bot.RegistrationURL)
	telegram, err := bot.NewTelegram(cfg.Bot.Token, dialog)
	if err != nil {
		log.Fatalf("Failed to start bot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := telegram.Run(ctx); err != nil {
		log.Fatalf("Bot stopped: %v", err)
	}
	console.Info("Bot stopped")
}
