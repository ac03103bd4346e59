package config

import (
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"homework_status_bot/internal/domain/failure"
)

const (
	DefaultEndpoint     = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	DefaultPollSchedule = "@every 600s"
	DefaultHTTPTimeout  = 30 * time.Second
	DefaultLogFile      = "homework_bot.log"
	DefaultRatePerSec   = 1
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken string
	TelegramToken  string
	TelegramChatID int64

	Endpoint     string
	PollSchedule string
	HTTPTimeout  time.Duration
	RatePerSec   int

	LogLevel    string
	Environment string
	LogFile     string
}

// Load reads configuration from environment variables and .env file (if present).
// Missing secrets are reported together as a single configuration error.
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{
		PracticumToken: os.Getenv("PRACTICUM_TOKEN"),
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
	}
	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")

	var missing []string
	if cfg.PracticumToken == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if cfg.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if chatIDStr == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if len(missing) > 0 {
		return nil, failure.Newf(failure.KindConfig, "required environment variables are not set: %s", strings.Join(missing, ", "))
	}

	var err error
	cfg.TelegramChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, failure.Wrap(failure.KindConfig, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err))
	}

	cfg.Endpoint = os.Getenv("PRACTICUM_ENDPOINT")
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}

	cfg.PollSchedule = os.Getenv("POLL_SCHEDULE")
	if cfg.PollSchedule == "" {
		cfg.PollSchedule = DefaultPollSchedule
	}
	if _, err := cron.ParseStandard(cfg.PollSchedule); err != nil {
		return nil, failure.Wrap(failure.KindConfig, fmt.Errorf("invalid POLL_SCHEDULE %q: %w", cfg.PollSchedule, err))
	}

	cfg.HTTPTimeout = DefaultHTTPTimeout
	if s := os.Getenv("HTTP_TIMEOUT_SECONDS"); s != "" {
		secs, err := strconv.Atoi(s)
		if err != nil || secs <= 0 {
			return nil, failure.Newf(failure.KindConfig, "invalid HTTP_TIMEOUT_SECONDS %q", s)
		}
		cfg.HTTPTimeout = time.Duration(secs) * time.Second
	}

	cfg.RatePerSec = DefaultRatePerSec
	if s := os.Getenv("TELEGRAM_RATE_PER_SEC"); s != "" {
		rps, err := strconv.Atoi(s)
		if err != nil || rps <= 0 {
			return nil, failure.Newf(failure.KindConfig, "invalid TELEGRAM_RATE_PER_SEC %q", s)
		}
		cfg.RatePerSec = rps
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	cfg.LogFile = os.Getenv("LOG_FILE")
	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogFile
	}

	return cfg, nil
}

// Schedule returns the parsed poll schedule.
func (c *AppConfig) Schedule() (cron.Schedule, error) {
	return cron.ParseStandard(c.PollSchedule)
}
