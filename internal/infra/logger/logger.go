// internal/infra/logger/logger.go
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"homework_status_bot/internal/infra/config"
)

const (
	maxLogSizeMB   = 50
	maxLogBackups  = 5
	fileTimeFormat = "2006-01-02 15:04:05"
)

// New builds the application logger from configuration. Entries go to stdout
// and to a size-rotated log file; the returned closer releases the file.
func New(cfg *config.AppConfig) (*logrus.Logger, io.Closer) {
	rotator := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
	}
	return build(cfg, io.MultiWriter(os.Stdout, rotator)), rotator
}

func build(cfg *config.AppConfig, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	// Set Log Level
	level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		log.Warnf("Invalid log level '%s', defaulting to 'info'. Error: %v", cfg.LogLevel, err)
		log.SetLevel(logrus.InfoLevel)
	} else {
		log.SetLevel(level)
	}

	// Set Log Formatter
	env := strings.ToLower(cfg.Environment)
	if env == "production" || env == "staging" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00", // ISO8601
		})
	} else {
		// Colors would end up as escape codes in the log file.
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: fileTimeFormat,
			DisableColors:   true,
		})
	}

	log.Debugf("Log level set to: %s", log.GetLevel().String())
	log.Debugf("Log format set for environment: %s", cfg.Environment)
	return log
}

// Component returns an entry tagged with the component name.
func Component(log *logrus.Logger, name string) *logrus.Entry {
	return log.WithField("component", name)
}
