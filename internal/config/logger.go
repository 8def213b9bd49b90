package config

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

// Init configures the package logger. Level comes from LOG_LEVEL (default info).
func Init() {
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
}

// Logger exposes the shared logger for package main.
func Logger() *logrus.Logger {
	return logger
}

// WithContext returns a log entry scoped to the current request, carrying the
// chi request id when one is present.
func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(logger)
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		entry = entry.WithField("request_id", reqID)
	}
	return entry
}
