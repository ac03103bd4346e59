package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// The file logger needs the configuration, so report through the default logger.
		logrus.WithError(err).Fatal("Could not load application configuration")
	}

	log, closer := logger.New(cfg)
	defer closer.Close()
	mainLogger := logger.Component(log, "main")

	mainLogger.WithField("environment", cfg.Environment).
		WithField("chat_id", cfg.TelegramChatID).
		WithField("schedule", cfg.PollSchedule).
		Info("Configuration loaded")

	schedule, err := cfg.Schedule()
	if err != nil {
		mainLogger.WithError(err).Fatal("Invalid poll schedule")
	}

	// Initialize Telegram Bot
	bot, err := telegram.NewBot(cfg.TelegramToken, "", false, logger.Component(log, "telebot"))
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}
	notifier := app.NewNotifier(
		telegram.NewTelebotAdapter(bot, cfg.RatePerSec),
		cfg.TelegramChatID,
		logger.Component(log, "notifier"),
	)

	apiClient := practicum.NewClient(cfg.Endpoint, cfg.PracticumToken, cfg.HTTPTimeout, logger.Component(log, "practicum"))
	statusService := app.NewStatusService(apiClient, notifier, logger.Component(log, "status_service"))
	poller := scheduler.NewPollScheduler(statusService, schedule, logger.Component(log, "scheduler"))

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mainLogger.Info("Application setup complete. Polling is starting...")
	if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		mainLogger.WithError(err).Error("Polling stopped unexpectedly")
	}
	mainLogger.Info("Application shut down gracefully.")
}
